package telemetry

import "github.com/Vovchek-aks/SnakesEvolv/systems"

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	births      int
	mutations   int
	borderHits  int
	snakeHits   int
	starvations int
	foodEaten   int
	reseeds     int
	lifeSteps   []int
}

// NewCollector creates a new stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowDurationTicks: int32(windowTicks),
		lifeSteps:           make([]int, 0, 256),
	}
}

// RecordBirth records a split child. mutated is true if its genome changed.
func (c *Collector) RecordBirth(mutated bool) {
	c.births++
	if mutated {
		c.mutations++
	}
}

// RecordDeath records a death and the snake's life length.
func (c *Collector) RecordDeath(cause systems.DeathCause, lifeSteps int) {
	switch cause {
	case systems.HitBorder:
		c.borderHits++
	case systems.HitSnake:
		c.snakeHits++
	case systems.Starved:
		c.starvations++
	default:
		return
	}
	c.lifeSteps = append(c.lifeSteps, lifeSteps)
}

// RecordFoodEaten records a food cell consumed.
func (c *Collector) RecordFoodEaten() {
	c.foodEaten++
}

// RecordReseed records a population reseed.
func (c *Collector) RecordReseed() {
	c.reseeds++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// PopulationState is the end-of-window snapshot supplied by the caller.
type PopulationState struct {
	Snakes        int
	Food          int
	Segments      int
	BestScore     int
	MaxGeneration int
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, state PopulationState) WindowStats {
	life := SummarizeInts(c.lifeSteps)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Snakes:    state.Snakes,
		Food:      state.Food,
		Segments:  state.Segments,
		BestScore: state.BestScore,

		Births:      c.births,
		Mutations:   c.mutations,
		Deaths:      life.Count,
		BorderHits:  c.borderHits,
		SnakeHits:   c.snakeHits,
		Starvations: c.starvations,
		FoodEaten:   c.foodEaten,
		Reseeds:     c.reseeds,

		LifeMean: life.Mean,
		LifeStd:  life.Std,
		LifeP50:  life.P50,
		LifeP90:  life.P90,
		LifeMax:  life.Max,

		MaxGeneration: state.MaxGeneration,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.births = 0
	c.mutations = 0
	c.borderHits = 0
	c.snakeHits = 0
	c.starvations = 0
	c.foodEaten = 0
	c.reseeds = 0
	c.lifeSteps = c.lifeSteps[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
