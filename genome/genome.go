package genome

import (
	"math/rand"

	"github.com/Vovchek-aks/SnakesEvolv/grid"
)

// SensorKinds are the cell kinds that get a sensor ring. Empty is never
// sensed by generated genomes.
var SensorKinds = []grid.CellKind{grid.Border, grid.SnakeBody, grid.Food}

// Genome is an ordered, fixed-length list of sensors.
// Only weights change after generation; the layout never does.
type Genome []Sensor

// RingSize returns the number of offsets in a square ring of the given
// radius, center excluded.
func RingSize(radius int) int {
	side := 2*radius + 1
	return side*side - 1
}

// Generate builds a random genome: one ring of offsets of the given radius
// per sensed kind, each with weights drawn uniformly from
// [-initialWeight, initialWeight].
func Generate(rng *rand.Rand, radius, initialWeight int) Genome {
	initialWeight = min(initialWeight, WeightLimit)
	g := make(Genome, 0, RingSize(radius)*len(SensorKinds))
	for _, kind := range SensorKinds {
		for y := -radius; y <= radius; y++ {
			for x := -radius; x <= radius; x++ {
				if x == 0 && y == 0 {
					continue
				}
				var w Weights
				for i := range w {
					w[i] = rng.Intn(2*initialWeight+1) - initialWeight
				}
				g = append(g, Sensor{
					Offset:  grid.Position{X: x, Y: y},
					Weights: w,
					Kind:    kind,
				})
			}
		}
	}
	return g
}

// Clone returns an independent copy. Sensors hold no references, so a
// slice copy is a deep copy.
func (g Genome) Clone() Genome {
	if g == nil {
		return nil
	}
	out := make(Genome, len(g))
	copy(out, g)
	return out
}

// Equal reports whether both genomes have the same sensors in the same order.
func (g Genome) Equal(o Genome) bool {
	if len(g) != len(o) {
		return false
	}
	for i := range g {
		if g[i] != o[i] {
			return false
		}
	}
	return true
}

// Vote sums the weights of every sensor that fires around head.
func (g Genome) Vote(head grid.Position, occ Occupancy) Weights {
	var sum Weights
	for i := range g {
		if g[i].Fires(head, occ) {
			sum.Add(g[i].Weights)
		}
	}
	return sum
}

// ChooseDirection picks the direction with the highest vote. Ties go to the
// earliest direction in Up, Right, Down, Left order, so a silent genome
// always moves Up.
func ChooseDirection(vote Weights) grid.Direction {
	best := grid.Up
	for _, d := range grid.Directions[1:] {
		if vote[d] > vote[best] {
			best = d
		}
	}
	return best
}

// Decide is Vote followed by ChooseDirection.
func (g Genome) Decide(head grid.Position, occ Occupancy) grid.Direction {
	return ChooseDirection(g.Vote(head, occ))
}
