package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Vovchek-aks/SnakesEvolv/genome"
)

// BestRecord is the longest-lived genome seen so far.
type BestRecord struct {
	Score int           `json:"score"`
	Genes genome.Genome `json:"genes"`
}

// storeFile is the on-disk layout of the genome store.
type storeFile struct {
	NeedDel bool       `json:"need_del"`
	Best    BestRecord `json:"best"`
	History []int      `json:"history"`
}

// GenomeStore keeps the best genome and the life length of every snake
// that has died. Scores are steps survived.
type GenomeStore struct {
	path string
	data storeFile
}

// NewGenomeStore returns an empty in-memory store with no backing file.
func NewGenomeStore() *GenomeStore {
	s := &GenomeStore{}
	s.Reset()
	return s
}

// OpenGenomeStore loads the store at path. A missing file yields an empty
// store that will be created on Save. A file with need_del set is reset.
func OpenGenomeStore(path string) (*GenomeStore, error) {
	s := NewGenomeStore()
	s.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading genome store: %w", err)
	}

	if err := s.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("parsing genome store %s: %w", path, err)
	}
	return s, nil
}

// Reset clears the best record and history.
func (s *GenomeStore) Reset() {
	s.data = storeFile{
		Best:    BestRecord{Score: -1, Genes: genome.Genome{}},
		History: []int{},
	}
}

// Path returns the backing file, or "" for an in-memory store.
func (s *GenomeStore) Path() string {
	return s.path
}

// BestGenome returns a private copy of the best genome. ok is false when
// no genome has been recorded yet.
func (s *GenomeStore) BestGenome() (genome.Genome, bool) {
	if len(s.data.Best.Genes) == 0 {
		return nil, false
	}
	return s.data.Best.Genes.Clone(), true
}

// BestScore returns the best recorded life length, or -1 if none.
func (s *GenomeStore) BestScore() int {
	return s.data.Best.Score
}

// History returns the recorded life lengths in death order.
// Callers must not modify the slice.
func (s *GenomeStore) History() []int {
	return s.data.History
}

// RecordDeath appends lifeSteps to the history and replaces the best
// record when lifeSteps is at least the current best. Ties replace.
// Returns true if the best record changed.
func (s *GenomeStore) RecordDeath(lifeSteps int, g genome.Genome) bool {
	s.data.History = append(s.data.History, lifeSteps)
	if lifeSteps < s.data.Best.Score {
		return false
	}
	s.data.Best = BestRecord{Score: lifeSteps, Genes: g.Clone()}
	if s.data.Best.Genes == nil {
		s.data.Best.Genes = genome.Genome{}
	}
	return true
}

// MarshalJSON serializes the store in its file format.
func (s *GenomeStore) MarshalJSON() ([]byte, error) {
	return json.MarshalIndent(s.data, "", "  ")
}

// UnmarshalJSON replaces the store contents. need_del resets the store.
func (s *GenomeStore) UnmarshalJSON(data []byte) error {
	// A file without a best entry starts from the empty-store score.
	f := storeFile{Best: BestRecord{Score: -1}}
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f.NeedDel {
		s.Reset()
		return nil
	}
	if f.History == nil {
		f.History = []int{}
	}
	if f.Best.Genes == nil {
		f.Best.Genes = genome.Genome{}
	}
	s.data = f
	return nil
}

// Save writes the store to its backing file through a temp file and
// rename. It is a no-op for in-memory stores.
func (s *GenomeStore) Save() error {
	if s.path == "" {
		return nil
	}
	data, err := s.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling genome store: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating store directory: %w", err)
		}
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("writing genome store: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("renaming genome store: %w", err)
	}
	return nil
}
