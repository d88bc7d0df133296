package game

import (
	"log/slog"

	"github.com/Vovchek-aks/SnakesEvolv/components"
	"github.com/Vovchek-aks/SnakesEvolv/genome"
	"github.com/Vovchek-aks/SnakesEvolv/grid"
)

// Seed spawns the configured layout of snakes. With a best genome in the
// store every snake gets its own copy, and every other snake of the layout
// is mutated; otherwise each snake gets a random genome. Layout slots that
// leave the interior or cover any occupied cell, food included, are skipped.
// Returns the number spawned.
func (p *Population) Seed() int {
	cfg := p.cfg

	var best genome.Genome
	haveBest := false
	if p.store != nil {
		best, haveBest = p.store.BestGenome()
		haveBest = haveBest && len(best) > 0
	}

	spawned := 0
	for row := 0; row < cfg.Seeding.Rows; row++ {
		for col := 0; col < cfg.Seeding.Columns; col++ {
			head := grid.Position{
				X: cfg.Seeding.OriginX + col*cfg.Seeding.SpacingX,
				Y: cfg.Seeding.OriginY + row*cfg.Seeding.SpacingY,
			}
			segments, ok := p.layoutBody(head, cfg.Snake.InitialLength)
			if !ok {
				continue
			}

			var g genome.Genome
			mutated := false
			if haveBest {
				g = best.Clone()
				if cfg.Seeding.MutateAlternate && (row+col)%2 == 1 {
					g.Mutate(p.rng, cfg.Derived.Mutation)
					mutated = true
				}
			} else {
				g = genome.Generate(p.rng, cfg.Genome.SensorRadius, cfg.Genome.InitialWeight)
			}

			p.spawn(segments, g, cfg.Derived.SpawnHealth, 0, components.Lineage{Mutated: mutated})
			spawned++
		}
	}

	slog.Debug("seeded population", "tick", p.tick, "snakes", spawned, "from_best", haveBest)
	return spawned
}

// layoutBody returns a body of length cells with its head at head and the
// rest extending downward. It fails when any cell is outside the interior or
// already occupied.
func (p *Population) layoutBody(head grid.Position, length int) ([]grid.Position, bool) {
	segments := make([]grid.Position, 0, length)
	pos := head
	for i := 0; i < length; i++ {
		if !p.field.Interior(pos) || p.index.Occupied(pos) {
			return nil, false
		}
		segments = append(segments, pos)
		pos = pos.Add(grid.Down.Offset())
	}
	return segments, true
}
