package genome

import (
	"encoding/json"
	"fmt"

	"github.com/Vovchek-aks/SnakesEvolv/grid"
)

// Gene is the file representation of a sensor.
type Gene struct {
	Pos [2]int `json:"pos"`
	Val [4]int `json:"val"`
	Typ int    `json:"typ"`
}

// Encode converts a genome to its gene list.
func Encode(g Genome) []Gene {
	genes := make([]Gene, len(g))
	for i, s := range g {
		genes[i] = Gene{
			Pos: [2]int{s.Offset.X, s.Offset.Y},
			Val: [4]int(s.Weights),
			Typ: int(s.Kind),
		}
	}
	return genes
}

// Decode converts a gene list back into a genome. Out-of-range weights are
// clamped; an unknown cell type is an error.
func Decode(genes []Gene) (Genome, error) {
	g := make(Genome, len(genes))
	for i, gene := range genes {
		if gene.Typ < 0 || gene.Typ > int(grid.Empty) {
			return nil, fmt.Errorf("gene %d: unknown cell type %d", i, gene.Typ)
		}
		kind := grid.CellKind(gene.Typ)
		var w Weights
		for c, v := range gene.Val {
			w[c] = Clamp(v, WeightLimit)
		}
		g[i] = Sensor{
			Offset:  grid.Position{X: gene.Pos[0], Y: gene.Pos[1]},
			Weights: w,
			Kind:    kind,
		}
	}
	return g, nil
}

// MarshalJSON writes the genome as a gene list. A nil genome encodes as [].
func (g Genome) MarshalJSON() ([]byte, error) {
	return json.Marshal(Encode(g))
}

// UnmarshalJSON reads a gene list.
func (g *Genome) UnmarshalJSON(data []byte) error {
	var genes []Gene
	if err := json.Unmarshal(data, &genes); err != nil {
		return fmt.Errorf("parsing genes: %w", err)
	}
	decoded, err := Decode(genes)
	if err != nil {
		return err
	}
	*g = decoded
	return nil
}
