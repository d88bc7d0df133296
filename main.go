package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Vovchek-aks/SnakesEvolv/config"
	"github.com/Vovchek-aks/SnakesEvolv/game"
	"github.com/Vovchek-aks/SnakesEvolv/tui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	terminal := flag.Bool("tui", false, "Draw in the terminal instead of a window")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	storePath := flag.String("store", "", "Genome store file (empty = use config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging). The terminal view
	// owns stdout, so logs go to stderr there.
	logOut := os.Stdout
	if *terminal {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(logOut, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *statsWindow > 0 {
		cfg.Telemetry.StatsWindow = *statsWindow
	}
	if *storePath != "" {
		cfg.Store.Path = *storePath
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Config:         cfg,
		Seed:           rngSeed,
		Headless:       *headless || *terminal,
		StorePath:      cfg.Store.Path,
		OutputDir:      *outputDir,
		LogStats:       *logStats,
		StepsPerUpdate: *stepsPerUpdate,
	}

	switch {
	case *headless:
		runHeadless(opts, *maxTicks)
	case *terminal:
		runTerminal(opts, cfg, *maxTicks)
	default:
		runWindow(opts, cfg, *maxTicks)
	}
}

func newGame(opts game.Options) *game.Game {
	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to start simulation", "error", err)
		os.Exit(1)
	}
	return g
}

// runHeadless is a pure CPU simulation; raylib is never initialized.
func runHeadless(opts game.Options, maxTicks int) {
	g := newGame(opts)
	defer g.Unload()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
		"steps_per_update", opts.StepsPerUpdate,
	)

	for {
		g.UpdateHeadless()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			return
		}
	}
}

func runTerminal(opts game.Options, cfg *config.Config, maxTicks int) {
	g := newGame(opts)
	defer g.Unload()

	term, err := tui.NewTerminal()
	if err != nil {
		slog.Error("failed to open terminal", "error", err)
		return
	}
	defer term.Close()

	term.Run(g, cfg.Screen.TargetFPS, maxTicks)
}

func runWindow(opts game.Options, cfg *config.Config, maxTicks int) {
	rl.InitWindow(cfg.Derived.WindowW, cfg.Derived.WindowH, "Snakes Evolution")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := newGame(opts)
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
}
