// Package game runs the snake population and connects it to persistence,
// telemetry and the front-ends.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/Vovchek-aks/SnakesEvolv/config"
	"github.com/Vovchek-aks/SnakesEvolv/grid"
	"github.com/Vovchek-aks/SnakesEvolv/renderer"
	"github.com/Vovchek-aks/SnakesEvolv/telemetry"
	"github.com/Vovchek-aks/SnakesEvolv/ui"
)

// Options configures game creation.
type Options struct {
	Config         *config.Config // nil = config.Cfg()
	Seed           int64          // RNG seed (0 = time-based)
	Headless       bool           // Skip raylib resources
	StorePath      string         // Genome store file (empty = in-memory only)
	OutputDir      string         // Directory for CSV output (empty = disabled)
	LogStats       bool           // Log window stats via slog
	StepsPerUpdate int            // Ticks per Update call (0 = 1)
}

// Game holds the population and everything that observes it.
type Game struct {
	cfg *config.Config
	rng *rand.Rand
	pop *Population

	store         *telemetry.GenomeStore
	collector     *telemetry.Collector
	bookmarks     *telemetry.BookmarkDetector
	outputManager *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)
	logStats      bool

	// Rendering (nil when headless)
	gridRenderer *renderer.GridRenderer
	hud          *ui.HUD

	perf *PerfStats

	paused          bool
	stepsPerUpdate  int
	deaths          int
	deathsSinceSave int
}

// NewGameWithOptions creates a game. It opens the genome store and the
// output directory, then seeds the first population.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store := telemetry.NewGenomeStore()
	if opts.StorePath != "" {
		var err error
		store, err = telemetry.OpenGenomeStore(opts.StorePath)
		if err != nil {
			return nil, err
		}
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g := &Game{
		cfg:            cfg,
		rng:            rand.New(rand.NewSource(seed)),
		store:          store,
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		bookmarks:      telemetry.NewBookmarkDetector(10),
		outputManager:  om,
		logStats:       opts.LogStats,
		perf:           NewPerfStats(),
		stepsPerUpdate: max(opts.StepsPerUpdate, 1),
	}
	g.pop = NewPopulation(cfg, g.rng, store)

	if !opts.Headless {
		g.gridRenderer = renderer.NewGridRenderer(cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.CellSize)
		fieldW, _ := g.gridRenderer.PixelSize()
		g.hud = ui.NewHUD(fieldW, int32(cfg.Screen.HUDWidth), cfg.Derived.WindowH)
	}

	slog.Info("simulation_start",
		"seed", seed,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"snakes", g.pop.Snakes(),
		"store", opts.StorePath,
		"best_score", store.BestScore(),
		"history", len(store.History()),
	)

	return g, nil
}

// SetStatsCallback registers a function called with every flushed window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Update handles input and runs stepsPerUpdate ticks unless paused.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}
	g.UpdateHeadless()
}

// UpdateHeadless runs stepsPerUpdate ticks with no input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// simulationStep runs a single tick and feeds its report to telemetry and
// the store.
func (g *Game) simulationStep() {
	start := time.Now()
	report := g.pop.Tick()
	g.perf.RecordTick(time.Since(start))

	g.handleReport(report)
	g.flushTelemetry()
}

// handleReport records births, deaths and reseeds.
func (g *Game) handleReport(report TickReport) {
	if report.Reseeded {
		g.collector.RecordReseed()
		slog.Info("reseed", "tick", report.Tick, "snakes", g.pop.Snakes(), "best_score", g.store.BestScore())
	}

	for i := 0; i < report.Eaten; i++ {
		g.collector.RecordFoodEaten()
	}
	for _, b := range report.Births {
		g.collector.RecordBirth(b.Mutated)
	}

	for _, d := range report.Deaths {
		g.collector.RecordDeath(d.Cause, d.Record.LifeSteps)
		g.deaths++
		g.deathsSinceSave++

		if d.Record.NewBest {
			slog.Info("new_best", "tick", report.Tick, "score", d.Record.LifeSteps, "id", d.Record.ID, "generation", d.Record.Generation)
		}
		if g.outputManager != nil {
			if err := g.outputManager.WriteDeath(d.Record); err != nil {
				slog.Error("failed to write death", "error", err)
			}
		}
	}

	if every := g.cfg.Store.SaveEvery; every > 0 && g.deathsSinceSave >= every {
		g.saveStore()
	}
}

// saveStore writes the genome store to disk. Failures are logged and the
// simulation keeps running.
func (g *Game) saveStore() {
	g.deathsSinceSave = 0
	if g.store.Path() == "" {
		return
	}
	if err := g.store.Save(); err != nil {
		slog.Error("failed to save genome store", "path", g.store.Path(), "error", err)
		return
	}
	slog.Debug("store_saved", "path", g.store.Path(), "best_score", g.store.BestScore(), "history", len(g.store.History()))
}

// Unload saves the store and releases resources.
func (g *Game) Unload() {
	g.saveStore()
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.pop.CurrentTick()
}

// Population exposes the simulated population.
func (g *Game) Population() *Population {
	return g.pop
}

// Store returns the genome store.
func (g *Game) Store() *telemetry.GenomeStore {
	return g.store
}

// Cells returns every cell for drawing.
func (g *Game) Cells() []grid.Cell {
	return g.pop.Cells()
}

// StepsPerUpdate returns the ticks run per update.
func (g *Game) StepsPerUpdate() int {
	return g.stepsPerUpdate
}

// SetStepsPerUpdate sets the ticks run per update, clamped to [1, ui.MaxStepsPerUpdate].
func (g *Game) SetStepsPerUpdate(n int) {
	g.stepsPerUpdate = min(max(n, 1), ui.MaxStepsPerUpdate)
}

// StatusLine returns a one-line summary for text front-ends.
func (g *Game) StatusLine() string {
	return fmt.Sprintf("tick %d  snakes %d  food %d  best %d  deaths %d  x%d",
		g.pop.CurrentTick(), g.pop.Snakes(), g.pop.Food(), g.store.BestScore(), g.deaths, g.stepsPerUpdate)
}
