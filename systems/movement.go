package systems

import (
	"github.com/Vovchek-aks/SnakesEvolv/components"
	"github.com/Vovchek-aks/SnakesEvolv/grid"
)

// DeathCause says why a step ended a snake's life.
type DeathCause uint8

const (
	Survived DeathCause = iota
	HitBorder
	HitSnake
	Starved
)

func (c DeathCause) String() string {
	switch c {
	case Survived:
		return "survived"
	case HitBorder:
		return "border"
	case HitSnake:
		return "snake"
	case Starved:
		return "starved"
	}
	return "unknown"
}

// Rules holds the lifecycle constants.
type Rules struct {
	HealthPerFood int // Health after eating or splitting
	MinLength     int // Starvation truncation below this kills
	SplitLength   int // Eating up to this length splits
}

// DefaultRules returns the standard constants: 40 health per food,
// death below 4 segments, split at 10.
func DefaultRules() Rules {
	return Rules{HealthPerFood: 40, MinLength: 4, SplitLength: 10}
}

// StepResult describes what a single step did.
type StepResult struct {
	Ate       bool
	Truncated bool            // Starvation removed the tail
	Cause     DeathCause      // Survived unless the snake died
	Child     []grid.Position // Segments split off this step, head first

	// ChildLifeSteps is the parent's LifeSteps at the moment of the split,
	// before this step is counted.
	ChildLifeSteps int
}

// Died reports whether the step killed the snake.
func (r StepResult) Died() bool {
	return r.Cause != Survived
}

// MovementSystem advances snakes one cell per tick.
type MovementSystem struct {
	rules Rules
}

// NewMovementSystem creates a movement system with the given rules.
func NewMovementSystem(rules Rules) *MovementSystem {
	return &MovementSystem{rules: rules}
}

// Rules returns the system's lifecycle constants.
func (m *MovementSystem) Rules() Rules {
	return m.rules
}

// Step moves the snake one cell in dir and applies feeding, collision,
// health decay and starvation. The index is updated in place so later
// snakes in the same tick see the result. A dead snake's cells are removed
// from the index before Step returns.
func (m *MovementSystem) Step(body *components.Body, vitals *components.Vitals, dir grid.Direction, idx *SpatialIndex) StepResult {
	var res StepResult

	next := body.Head().Add(dir.Offset())
	kind, hit := idx.Lookup(next, grid.OccupiedKinds...)

	switch {
	case hit && kind == grid.Food:
		idx.Remove(next)
		oldTail := body.Tail()
		shift(body, next)
		body.Segments = append(body.Segments, oldTail)
		idx.Insert(next, grid.SnakeBody)

		vitals.Health = m.rules.HealthPerFood
		res.Ate = true

		if body.Len() >= m.rules.SplitLength {
			res.Child = Split(body)
			res.ChildLifeSteps = vitals.LifeSteps
			vitals.Health = m.rules.HealthPerFood
		}

	case hit:
		res.Cause = HitSnake
		if kind == grid.Border {
			res.Cause = HitBorder
		}
		m.kill(body, vitals, idx)
		return res

	default:
		oldTail := body.Tail()
		shift(body, next)
		idx.Remove(oldTail)
		idx.Insert(next, grid.SnakeBody)
	}

	vitals.Health--
	if vitals.Health <= 0 {
		vitals.Health = m.rules.HealthPerFood
		idx.Remove(body.Tail())
		body.Segments = body.Segments[:body.Len()-1]
		res.Truncated = true

		if body.Len() < m.rules.MinLength {
			res.Cause = Starved
			m.kill(body, vitals, idx)
			return res
		}
	}

	vitals.LifeSteps++
	return res
}

// kill marks the snake dead and discards its cells.
func (m *MovementSystem) kill(body *components.Body, vitals *components.Vitals, idx *SpatialIndex) {
	vitals.Alive = false
	for _, seg := range body.Segments {
		idx.Remove(seg)
	}
}

// shift moves every segment into its predecessor's place and puts the head
// at next. Length is unchanged.
func shift(body *components.Body, next grid.Position) {
	segs := body.Segments
	for i := len(segs) - 1; i > 0; i-- {
		segs[i] = segs[i-1]
	}
	segs[0] = next
}
