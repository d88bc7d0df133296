// Package components defines the ECS components attached to snake entities.
package components

import (
	"github.com/Vovchek-aks/SnakesEvolv/genome"
	"github.com/Vovchek-aks/SnakesEvolv/grid"
)

// Body holds the snake's segments, head first.
type Body struct {
	Segments []grid.Position
}

// Head returns the first segment.
func (b *Body) Head() grid.Position {
	return b.Segments[0]
}

// Tail returns the last segment.
func (b *Body) Tail() grid.Position {
	return b.Segments[len(b.Segments)-1]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.Segments)
}

// Vitals tracks health and fitness.
type Vitals struct {
	Health    int
	LifeSteps int // Steps survived; carried over to split children
	Alive     bool
}

// Brain holds the snake's own genome. It is never shared with another snake.
type Brain struct {
	Genome genome.Genome
}

// Lineage records where a snake came from.
type Lineage struct {
	ID         uint32
	ParentID   uint32 // 0 for seeded snakes
	Generation int    // Splits since the seeded ancestor
	BirthTick  int32
	Mutated    bool // Genome was mutated at birth
}
