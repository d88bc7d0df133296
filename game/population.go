package game

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/Vovchek-aks/SnakesEvolv/components"
	"github.com/Vovchek-aks/SnakesEvolv/config"
	"github.com/Vovchek-aks/SnakesEvolv/genome"
	"github.com/Vovchek-aks/SnakesEvolv/grid"
	"github.com/Vovchek-aks/SnakesEvolv/systems"
	"github.com/Vovchek-aks/SnakesEvolv/telemetry"
)

// GenomeSource supplies the genome a new population is seeded from.
type GenomeSource interface {
	BestGenome() (genome.Genome, bool)
}

// DeathRecorder receives the fitness and genome of every snake that dies.
// It reports whether the death set a new best.
type DeathRecorder interface {
	RecordDeath(lifeSteps int, g genome.Genome) bool
}

// Store is the persistence collaborator. *telemetry.GenomeStore satisfies it.
type Store interface {
	GenomeSource
	DeathRecorder
}

// Birth describes a child split off during a tick.
type Birth struct {
	ID       uint32
	ParentID uint32
	Mutated  bool
}

// Death describes a snake removed during a tick.
type Death struct {
	Cause  systems.DeathCause
	Record telemetry.DeathRecord
}

// TickReport summarizes what a single tick did.
type TickReport struct {
	Tick       int32
	Reseeded   bool
	Eaten      int
	FoodPlaced int
	Births     []Birth
	Deaths     []Death
}

// Population owns the snakes, the field and the spatial index. Snakes are
// ark entities stepped in creation order.
type Population struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand
	store Store // nil runs without persistence

	snakeMapper *ecs.Map4[components.Body, components.Vitals, components.Brain, components.Lineage]
	order       []ecs.Entity

	index    *systems.SpatialIndex
	field    *systems.Field
	feeding  *systems.FeedingSystem
	movement *systems.MovementSystem

	tick          int32
	nextID        uint32
	maxGeneration int
}

// NewPopulation builds the field, seeds the first population and stocks food.
// store may be nil.
func NewPopulation(cfg *config.Config, rng *rand.Rand, store Store) *Population {
	world := ecs.NewWorld()

	p := &Population{
		cfg:         cfg,
		world:       world,
		rng:         rng,
		store:       store,
		snakeMapper: ecs.NewMap4[components.Body, components.Vitals, components.Brain, components.Lineage](world),
		index:       systems.NewSpatialIndex(cfg.Grid.Width * cfg.Grid.Height),
		field:       systems.NewField(cfg.Grid.Width, cfg.Grid.Height),
		movement: systems.NewMovementSystem(systems.Rules{
			HealthPerFood: cfg.Snake.HealthPerFood,
			MinLength:     cfg.Snake.MinLength,
			SplitLength:   cfg.Snake.SplitLength,
		}),
		nextID: 1,
	}
	p.feeding = systems.NewFeedingSystem(p.field, cfg.Derived.TargetFood, rng)

	p.field.Stamp(p.index)
	p.Seed()
	p.feeding.Replenish(p.index)

	return p
}

// Tick advances the simulation by one step: every live snake moves in
// order, dead snakes are removed and reported, then food is topped up.
// An empty population is reseeded before anything moves.
func (p *Population) Tick() TickReport {
	p.tick++
	report := TickReport{Tick: p.tick}

	if len(p.order) == 0 {
		p.Seed()
		report.Reseeded = true
	}

	// Children are appended to order and stepped later in the same tick.
	for i := 0; i < len(p.order); i++ {
		entity := p.order[i]
		body, vitals, brain, lin := p.snakeMapper.Get(entity)

		dir := brain.Genome.Decide(body.Head(), p.index)
		res := p.movement.Step(body, vitals, dir, p.index)
		if res.Ate {
			report.Eaten++
		}

		if res.Died() {
			report.Deaths = append(report.Deaths, Death{
				Cause:  res.Cause,
				Record: p.recordDeath(body, vitals, brain, lin, res.Cause),
			})
			p.world.RemoveEntity(entity)
			p.order = append(p.order[:i], p.order[i+1:]...)
			i--
			continue
		}

		if res.Child != nil {
			// Copies only: spawning may move component storage.
			parent := *lin
			g := brain.Genome.Clone()
			report.Births = append(report.Births, p.spawnChild(res.Child, g, res.ChildLifeSteps, parent))
		}
	}

	report.FoodPlaced = p.feeding.Replenish(p.index)
	return report
}

// recordDeath reports a dead snake to the store and builds its death record.
func (p *Population) recordDeath(body *components.Body, vitals *components.Vitals, brain *components.Brain, lin *components.Lineage, cause systems.DeathCause) telemetry.DeathRecord {
	rec := telemetry.NewDeathRecord(p.tick, lin, vitals, body.Len(), cause)
	if p.store != nil {
		rec.NewBest = p.store.RecordDeath(vitals.LifeSteps, brain.Genome)
	}
	return rec
}

// spawnChild creates the entity for segments split off a parent. The child
// owns g, which is mutated with the configured chance.
func (p *Population) spawnChild(segments []grid.Position, g genome.Genome, lifeSteps int, parent components.Lineage) Birth {
	mutated := false
	if p.rng.Float64() < p.cfg.Mutation.Chance {
		g.Mutate(p.rng, p.cfg.Derived.Mutation)
		mutated = true
	}

	lin := components.Lineage{
		ParentID:   parent.ID,
		Generation: parent.Generation + 1,
		Mutated:    mutated,
	}
	id := p.spawn(segments, g, p.cfg.Snake.HealthPerFood, lifeSteps, lin)

	return Birth{ID: id, ParentID: parent.ID, Mutated: mutated}
}

// spawn adds a live snake entity at the end of the processing order and
// writes its segments into the index. lin.ID and lin.BirthTick are assigned
// here; the new ID is returned.
func (p *Population) spawn(segments []grid.Position, g genome.Genome, health, lifeSteps int, lin components.Lineage) uint32 {
	lin.ID = p.nextID
	lin.BirthTick = p.tick
	p.nextID++
	if lin.Generation > p.maxGeneration {
		p.maxGeneration = lin.Generation
	}

	body := components.Body{Segments: segments}
	vitals := components.Vitals{Health: health, LifeSteps: lifeSteps, Alive: true}
	brain := components.Brain{Genome: g}

	for _, seg := range segments {
		p.index.Insert(seg, grid.SnakeBody)
	}

	entity := p.snakeMapper.NewEntity(&body, &vitals, &brain, &lin)
	p.order = append(p.order, entity)
	return lin.ID
}

// Cells returns every stored cell: border, food and all snake segments.
func (p *Population) Cells() []grid.Cell {
	return p.index.Cells(make([]grid.Cell, 0, p.index.Len()))
}

// Snakes returns the number of live snakes.
func (p *Population) Snakes() int {
	return len(p.order)
}

// Food returns the number of food cells on the field.
func (p *Population) Food() int {
	return p.index.Count(grid.Food)
}

// Segments returns the number of snake-body cells on the field.
func (p *Population) Segments() int {
	return p.index.Count(grid.SnakeBody)
}

// CurrentTick returns the number of ticks run so far.
func (p *Population) CurrentTick() int32 {
	return p.tick
}

// MaxGeneration returns the deepest generation spawned so far.
func (p *Population) MaxGeneration() int {
	return p.maxGeneration
}

// Index exposes the spatial index for drawers and tests.
func (p *Population) Index() *systems.SpatialIndex {
	return p.index
}

// Field returns the field geometry.
func (p *Population) Field() *systems.Field {
	return p.field
}

// LongestLife returns the highest LifeSteps among live snakes.
func (p *Population) LongestLife() int {
	best := 0
	for _, e := range p.order {
		_, vitals, _, _ := p.snakeMapper.Get(e)
		best = max(best, vitals.LifeSteps)
	}
	return best
}
