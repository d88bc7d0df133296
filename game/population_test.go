package game

import (
	"math/rand"
	"testing"

	"github.com/Vovchek-aks/SnakesEvolv/components"
	"github.com/Vovchek-aks/SnakesEvolv/config"
	"github.com/Vovchek-aks/SnakesEvolv/genome"
	"github.com/Vovchek-aks/SnakesEvolv/grid"
	"github.com/Vovchek-aks/SnakesEvolv/systems"
	"github.com/Vovchek-aks/SnakesEvolv/telemetry"
)

// emptyConfig returns a w x h field with no seeding, no food and no mutation.
func emptyConfig(w, h int) *config.Config {
	cfg := config.Default()
	cfg.Grid.Width, cfg.Grid.Height = w, h
	cfg.Seeding.Rows = 0
	cfg.Food.PerWidth = 0
	cfg.Mutation.Chance = 0
	cfg.ComputeDerived()
	return cfg
}

// goUp never fires, so the vote is all zero and the snake moves Up.
func goUp() genome.Genome {
	return genome.Genome{{Offset: grid.Position{X: 0, Y: -100}, Weights: genome.Weights{1, 2, 3, 4}, Kind: grid.Food}}
}

// goRight always fires on the snake's own head.
func goRight() genome.Genome {
	return genome.Genome{{Offset: grid.Position{}, Weights: genome.Weights{0, 10, 0, 0}, Kind: grid.SnakeBody}}
}

// column returns length cells starting at head and extending in dir.
func column(head grid.Position, dir grid.Direction, length int) []grid.Position {
	segs := make([]grid.Position, length)
	for i := range segs {
		segs[i] = head
		head = head.Add(dir.Offset())
	}
	return segs
}

func snakeState(t *testing.T, p *Population, id uint32) (*components.Body, *components.Vitals, bool) {
	t.Helper()
	for _, e := range p.order {
		body, vitals, _, lin := p.snakeMapper.Get(e)
		if lin.ID == id {
			return body, vitals, true
		}
	}
	return nil, nil, false
}

func TestBorderDeathRecordedInStore(t *testing.T) {
	cfg := emptyConfig(12, 12)
	store := telemetry.NewGenomeStore()
	p := NewPopulation(cfg, rand.New(rand.NewSource(1)), store)

	g := goUp()
	p.spawn(column(grid.Position{X: 5, Y: 5}, grid.Down, 4), g.Clone(), 80, 0, components.Lineage{})

	for i := 0; i < 4; i++ {
		if r := p.Tick(); len(r.Deaths) != 0 {
			t.Fatalf("tick %d: unexpected death", r.Tick)
		}
	}

	r := p.Tick()
	if len(r.Deaths) != 1 {
		t.Fatalf("got %d deaths on tick 5, want 1", len(r.Deaths))
	}
	d := r.Deaths[0]
	if d.Cause != systems.HitBorder || d.Record.LifeSteps != 4 || !d.Record.NewBest {
		t.Errorf("death = %+v", d)
	}

	if h := store.History(); len(h) != 1 || h[0] != 4 {
		t.Errorf("history = %v, want [4]", h)
	}
	if store.BestScore() != 4 {
		t.Errorf("best score = %d", store.BestScore())
	}
	best, ok := store.BestGenome()
	if !ok || !best.Equal(g) {
		t.Errorf("best genome = %v, want %v", best, g)
	}

	if p.Snakes() != 0 || p.Segments() != 0 {
		t.Errorf("dead snake left behind: snakes=%d segments=%d", p.Snakes(), p.Segments())
	}
}

func TestTwoSnakesRaceForFood(t *testing.T) {
	cfg := emptyConfig(12, 12)
	p := NewPopulation(cfg, rand.New(rand.NewSource(1)), nil)

	food := grid.Position{X: 5, Y: 5}
	p.index.Insert(food, grid.Food)

	// A approaches from below, B from the left. A is spawned first.
	a := p.spawn(column(grid.Position{X: 5, Y: 6}, grid.Down, 4), goUp(), 80, 0, components.Lineage{})
	b := p.spawn(column(grid.Position{X: 4, Y: 5}, grid.Left, 4), goRight(), 80, 0, components.Lineage{})

	r := p.Tick()

	if r.Eaten != 1 {
		t.Errorf("eaten = %d, want 1", r.Eaten)
	}
	if p.Food() != 0 {
		t.Errorf("food left = %d", p.Food())
	}

	body, vitals, ok := snakeState(t, p, a)
	if !ok {
		t.Fatal("A should be alive")
	}
	if body.Len() != 5 || body.Head() != food || vitals.Health != cfg.Snake.HealthPerFood-1 {
		t.Errorf("A: len=%d head=%v health=%d", body.Len(), body.Head(), vitals.Health)
	}

	// B finds A's head where the food was.
	if len(r.Deaths) != 1 || r.Deaths[0].Record.ID != b || r.Deaths[0].Cause != systems.HitSnake {
		t.Errorf("deaths = %+v, want B hit snake", r.Deaths)
	}
	if _, _, ok := snakeState(t, p, b); ok {
		t.Error("B should be removed")
	}
}

func TestEatingGrowsSnake(t *testing.T) {
	cfg := emptyConfig(12, 12)
	p := NewPopulation(cfg, rand.New(rand.NewSource(1)), nil)

	p.index.Insert(grid.Position{X: 5, Y: 4}, grid.Food)
	id := p.spawn(column(grid.Position{X: 5, Y: 5}, grid.Down, 4), goUp(), 10, 0, components.Lineage{})

	r := p.Tick()
	body, vitals, ok := snakeState(t, p, id)
	if !ok {
		t.Fatal("snake died")
	}
	if r.Eaten != 1 || body.Len() != 5 || vitals.Health != cfg.Snake.HealthPerFood-1 {
		t.Errorf("eaten=%d len=%d health=%d", r.Eaten, body.Len(), vitals.Health)
	}
	if p.Food() != 0 || p.Segments() != 5 {
		t.Errorf("index: food=%d segments=%d", p.Food(), p.Segments())
	}
}

func TestChildSteppedInSameTick(t *testing.T) {
	cfg := emptyConfig(12, 16)
	store := telemetry.NewGenomeStore()
	p := NewPopulation(cfg, rand.New(rand.NewSource(1)), store)

	p.index.Insert(grid.Position{X: 5, Y: 3}, grid.Food)
	parent := p.spawn(column(grid.Position{X: 5, Y: 4}, grid.Down, 9), goUp(), 80, 7, components.Lineage{})

	r := p.Tick()

	if len(r.Births) != 1 {
		t.Fatalf("births = %d, want 1", len(r.Births))
	}
	child := r.Births[0]
	if child.ParentID != parent || child.Mutated {
		t.Errorf("birth = %+v", child)
	}

	// The child's head is the parent's old tail and it faces its own body,
	// so moving Up in the same tick kills it. It inherits the parent's 7
	// steps from before the split and never completes a step of its own.
	if len(r.Deaths) != 1 || r.Deaths[0].Record.ID != child.ID || r.Deaths[0].Cause != systems.HitSnake {
		t.Fatalf("deaths = %+v, want child hit snake", r.Deaths)
	}
	rec := r.Deaths[0].Record
	if rec.ParentID != parent || rec.Generation != 1 || rec.LifeSteps != 7 || rec.Length != 5 {
		t.Errorf("child record = %+v", rec)
	}

	body, vitals, ok := snakeState(t, p, parent)
	if !ok {
		t.Fatal("parent died")
	}
	if body.Len() != 5 || body.Head() != (grid.Position{X: 5, Y: 3}) || vitals.LifeSteps != 8 {
		t.Errorf("parent: len=%d head=%v life=%d", body.Len(), body.Head(), vitals.LifeSteps)
	}
	if p.Segments() != 5 || p.MaxGeneration() != 1 {
		t.Errorf("segments=%d maxGeneration=%d", p.Segments(), p.MaxGeneration())
	}
	if h := store.History(); len(h) != 1 || h[0] != 7 {
		t.Errorf("history = %v", h)
	}
}

func TestChildGenomeIsIndependent(t *testing.T) {
	cfg := emptyConfig(12, 16)
	cfg.Mutation.Chance = 1
	cfg.ComputeDerived()
	p := NewPopulation(cfg, rand.New(rand.NewSource(3)), nil)

	p.index.Insert(grid.Position{X: 5, Y: 3}, grid.Food)
	g := goUp()
	parent := p.spawn(column(grid.Position{X: 5, Y: 4}, grid.Down, 9), g.Clone(), 80, 0, components.Lineage{})

	r := p.Tick()
	if len(r.Births) != 1 || !r.Births[0].Mutated {
		t.Fatalf("births = %+v, want one mutated child", r.Births)
	}

	for _, e := range p.order {
		_, _, brain, lin := p.snakeMapper.Get(e)
		if lin.ID == parent && !brain.Genome.Equal(g) {
			t.Error("mutating the child changed the parent genome")
		}
	}
}

func TestSeedFromBestGenome(t *testing.T) {
	cfg := config.Default()
	cfg.Seeding.Columns, cfg.Seeding.Rows = 3, 2
	cfg.Food.PerWidth = 0
	cfg.ComputeDerived()

	rng := rand.New(rand.NewSource(7))
	best := genome.Generate(rng, cfg.Genome.SensorRadius, cfg.Genome.InitialWeight)
	store := telemetry.NewGenomeStore()
	store.RecordDeath(100, best)

	p := NewPopulation(cfg, rng, store)
	if p.Snakes() != 6 {
		t.Fatalf("seeded %d snakes, want 6", p.Snakes())
	}
	if p.Segments() != 6*cfg.Snake.InitialLength {
		t.Errorf("segments = %d", p.Segments())
	}

	mutated := 0
	for i, e := range p.order {
		body, vitals, brain, lin := p.snakeMapper.Get(e)
		if vitals.Health != cfg.Derived.SpawnHealth || body.Len() != cfg.Snake.InitialLength {
			t.Errorf("snake %d: health=%d len=%d", i, vitals.Health, body.Len())
		}
		if body.Segments[1] != body.Head().Add(grid.Down.Offset()) {
			t.Errorf("snake %d body should extend down from the head", i)
		}

		row, col := i/3, i%3
		if want := (row+col)%2 == 1; lin.Mutated != want {
			t.Errorf("snake %d (row %d col %d): mutated = %v, want %v", i, row, col, lin.Mutated, want)
		}
		if lin.Mutated {
			mutated++
		} else if !brain.Genome.Equal(best) {
			t.Errorf("unmutated snake %d should carry the best genome", i)
		}
		if len(brain.Genome) != len(best) {
			t.Errorf("snake %d genome length %d", i, len(brain.Genome))
		}
	}
	if mutated != 3 {
		t.Errorf("mutated = %d, want 3", mutated)
	}

	// Every snake owns its genome.
	_, _, first, _ := p.snakeMapper.Get(p.order[0])
	first.Genome[0].Weights[0] = 99
	if best[0].Weights[0] == 99 {
		t.Error("seeded genome aliases the store's genome")
	}
}

func TestSeedWithoutStoreUsesRandomGenomes(t *testing.T) {
	cfg := config.Default()
	cfg.Seeding.Columns, cfg.Seeding.Rows = 2, 1
	cfg.ComputeDerived()

	p := NewPopulation(cfg, rand.New(rand.NewSource(5)), nil)
	if p.Snakes() != 2 {
		t.Fatalf("snakes = %d", p.Snakes())
	}
	want := 3 * genome.RingSize(cfg.Genome.SensorRadius)
	for _, e := range p.order {
		_, _, brain, lin := p.snakeMapper.Get(e)
		if len(brain.Genome) != want || lin.Mutated {
			t.Errorf("genome length %d mutated %v", len(brain.Genome), lin.Mutated)
		}
	}
	if p.Food() != cfg.Derived.TargetFood {
		t.Errorf("food = %d, want %d", p.Food(), cfg.Derived.TargetFood)
	}
}

func TestSeedSkipsSlotsOutsideField(t *testing.T) {
	cfg := emptyConfig(10, 10)
	cfg.Seeding = config.SeedingConfig{Columns: 3, Rows: 1, OriginX: 2, OriginY: 2, SpacingX: 4}
	cfg.Snake.InitialLength = 4

	p := NewPopulation(cfg, rand.New(rand.NewSource(1)), nil)
	// x = 2, 6 fit; x = 10 is past the border.
	if p.Snakes() != 2 {
		t.Errorf("snakes = %d, want 2", p.Snakes())
	}
}

func TestReseedSkipsSlotOverFood(t *testing.T) {
	cfg := emptyConfig(16, 16)
	p := NewPopulation(cfg, rand.New(rand.NewSource(1)), nil)

	// Slot 0 covers (3,5)-(3,8), slot 1 covers (8,5)-(8,8).
	cfg.Seeding = config.SeedingConfig{Columns: 2, Rows: 1, OriginX: 3, OriginY: 5, SpacingX: 5}
	food := grid.Position{X: 8, Y: 7}
	p.index.Insert(food, grid.Food)

	r := p.Tick()
	if !r.Reseeded {
		t.Fatal("empty population should reseed")
	}
	if got := p.Snakes() + len(r.Deaths); got != 1 {
		t.Errorf("snakes + deaths = %d, want 1", got)
	}
	if r.Eaten != 0 || p.Food() != 1 || !p.index.Has(food, grid.Food) {
		t.Errorf("eaten=%d food=%d, want the food left in place", r.Eaten, p.Food())
	}
	if p.index.Has(grid.Position{X: 8, Y: 5}, grid.SnakeBody) {
		t.Error("snake seeded over food")
	}
}

func TestEmptyPopulationReseeds(t *testing.T) {
	cfg := emptyConfig(20, 20)
	p := NewPopulation(cfg, rand.New(rand.NewSource(1)), nil)
	if p.Snakes() != 0 {
		t.Fatalf("snakes = %d", p.Snakes())
	}

	cfg.Seeding = config.SeedingConfig{Columns: 2, Rows: 1, OriginX: 5, OriginY: 5, SpacingX: 5}
	r := p.Tick()
	if !r.Reseeded {
		t.Error("empty population should reseed")
	}
	if got := p.Snakes() + len(r.Deaths); got != 2 {
		t.Errorf("snakes + deaths = %d, want 2", got)
	}

	r = p.Tick()
	if p.Snakes() > 0 && r.Reseeded {
		t.Error("reseeded while snakes were alive")
	}
}

func TestFoodReplenishedEachTick(t *testing.T) {
	cfg := emptyConfig(20, 20)
	cfg.Food.PerWidth = 1
	cfg.ComputeDerived()
	p := NewPopulation(cfg, rand.New(rand.NewSource(1)), nil)

	if p.Food() != 20 {
		t.Fatalf("initial food = %d", p.Food())
	}
	for i, pos := range p.index.AppendKind(nil, grid.Food) {
		if i == 3 {
			break
		}
		p.index.Remove(pos)
	}
	r := p.Tick()
	if p.Food() != 20 || r.FoodPlaced == 0 {
		t.Errorf("food = %d placed = %d", p.Food(), r.FoodPlaced)
	}
}

func TestCellsCoverIndex(t *testing.T) {
	cfg := emptyConfig(12, 12)
	cfg.Food.PerWidth = 1
	cfg.ComputeDerived()
	p := NewPopulation(cfg, rand.New(rand.NewSource(1)), nil)
	p.spawn(column(grid.Position{X: 5, Y: 5}, grid.Down, 4), goUp(), 80, 0, components.Lineage{})

	counts := map[grid.CellKind]int{}
	for _, c := range p.Cells() {
		counts[c.Kind]++
	}
	if counts[grid.Border] != len(p.Field().Borders()) || counts[grid.SnakeBody] != 4 || counts[grid.Food] != p.Food() {
		t.Errorf("cell counts = %v", counts)
	}
}
