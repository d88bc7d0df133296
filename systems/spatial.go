// Package systems implements the per-snake simulation rules: occupancy
// lookups, the movement/feeding state machine, splitting, and food placement.
package systems

import (
	"github.com/Vovchek-aks/SnakesEvolv/grid"
)

// SpatialIndex answers "what occupies this position" in O(1).
// It holds border, food and snake-body cells; Empty is never stored.
// It is maintained incrementally while snakes are stepped, so every lookup
// sees the moves already made earlier in the same tick.
type SpatialIndex struct {
	cells  map[grid.Position]grid.CellKind
	counts [grid.Empty]int
}

// NewSpatialIndex creates an index sized for roughly capacity cells.
func NewSpatialIndex(capacity int) *SpatialIndex {
	return &SpatialIndex{
		cells: make(map[grid.Position]grid.CellKind, capacity),
	}
}

// Clear removes all cells.
func (s *SpatialIndex) Clear() {
	clear(s.cells)
	s.counts = [grid.Empty]int{}
}

// Insert stores a cell. A later write to the same position replaces the
// earlier one.
func (s *SpatialIndex) Insert(pos grid.Position, kind grid.CellKind) {
	if kind >= grid.Empty {
		return
	}
	if prev, ok := s.cells[pos]; ok {
		s.counts[prev]--
	}
	s.cells[pos] = kind
	s.counts[kind]++
}

// Remove deletes whatever occupies pos and returns its kind.
func (s *SpatialIndex) Remove(pos grid.Position) (grid.CellKind, bool) {
	kind, ok := s.cells[pos]
	if !ok {
		return grid.Empty, false
	}
	delete(s.cells, pos)
	s.counts[kind]--
	return kind, true
}

// Lookup returns the kind at pos if it is one of kinds.
// A miss is reported as (Empty, false).
func (s *SpatialIndex) Lookup(pos grid.Position, kinds ...grid.CellKind) (grid.CellKind, bool) {
	kind, ok := s.cells[pos]
	if !ok {
		return grid.Empty, false
	}
	for _, k := range kinds {
		if k == kind {
			return kind, true
		}
	}
	return grid.Empty, false
}

// Has reports whether pos holds a cell of exactly kind.
func (s *SpatialIndex) Has(pos grid.Position, kind grid.CellKind) bool {
	k, ok := s.cells[pos]
	return ok && k == kind
}

// Occupied reports whether anything is stored at pos.
func (s *SpatialIndex) Occupied(pos grid.Position) bool {
	_, ok := s.cells[pos]
	return ok
}

// Count returns the number of stored cells of kind.
func (s *SpatialIndex) Count(kind grid.CellKind) int {
	if kind >= grid.Empty {
		return 0
	}
	return s.counts[kind]
}

// Len returns the total number of stored cells.
func (s *SpatialIndex) Len() int {
	return len(s.cells)
}

// AppendKind appends every position of the given kind to dst.
// Order is unspecified.
func (s *SpatialIndex) AppendKind(dst []grid.Position, kind grid.CellKind) []grid.Position {
	for pos, k := range s.cells {
		if k == kind {
			dst = append(dst, pos)
		}
	}
	return dst
}

// Cells appends every stored cell to dst. Order is unspecified.
func (s *SpatialIndex) Cells(dst []grid.Cell) []grid.Cell {
	for pos, k := range s.cells {
		dst = append(dst, grid.Cell{Pos: pos, Kind: k})
	}
	return dst
}
