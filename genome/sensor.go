// Package genome holds the sensor genome that drives a snake: the sensor
// layout, the weighted direction vote, mutation, and the gene file codec.
package genome

import (
	"github.com/Vovchek-aks/SnakesEvolv/grid"
)

// WeightLimit bounds every weight component to [-WeightLimit, WeightLimit].
const WeightLimit = 64

// Weights holds one vote per direction, indexed by grid.Direction.
type Weights [grid.NumDirections]int

// Add accumulates o into w.
func (w *Weights) Add(o Weights) {
	for i := range w {
		w[i] += o[i]
	}
}

// Occupancy is the read side of the spatial index used for voting.
type Occupancy interface {
	Has(pos grid.Position, kind grid.CellKind) bool
}

// Sensor watches one cell relative to the head and votes when that cell
// holds its target kind.
type Sensor struct {
	Offset  grid.Position
	Weights Weights
	Kind    grid.CellKind
}

// Fires reports whether the sensor's target cell holds its kind.
func (s Sensor) Fires(head grid.Position, occ Occupancy) bool {
	return occ.Has(head.Add(s.Offset), s.Kind)
}

// Clamp limits v to [-limit, limit].
func Clamp(v, limit int) int {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
