package systems

import (
	"math/rand"

	"github.com/Vovchek-aks/SnakesEvolv/grid"
)

// FeedingSystem keeps the field stocked with food.
type FeedingSystem struct {
	field  *Field
	target int
	rng    *rand.Rand
}

// NewFeedingSystem creates a feeding system that keeps target food cells
// on the field.
func NewFeedingSystem(field *Field, target int, rng *rand.Rand) *FeedingSystem {
	return &FeedingSystem{field: field, target: target, rng: rng}
}

// Target returns the food count the system maintains.
func (s *FeedingSystem) Target() int {
	return s.target
}

// Replenish places food at uniformly random free interior cells until the
// target count is reached. Occupied picks are retried. It stops early only
// when the interior is completely full. Returns the number placed.
func (s *FeedingSystem) Replenish(idx *SpatialIndex) int {
	placed := 0
	for idx.Count(grid.Food) < s.target {
		// Every stored non-border cell is interior: snakes die on the border.
		free := s.field.InteriorArea() - (idx.Len() - idx.Count(grid.Border))
		if free <= 0 {
			break
		}

		pos := grid.Position{
			X: 1 + s.rng.Intn(s.field.Width-2),
			Y: 1 + s.rng.Intn(s.field.Height-2),
		}
		if idx.Occupied(pos) {
			continue
		}
		idx.Insert(pos, grid.Food)
		placed++
	}
	return placed
}
