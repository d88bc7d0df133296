// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Vovchek-aks/SnakesEvolv/genome"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Snake     SnakeConfig     `yaml:"snake"`
	Genome    GenomeConfig    `yaml:"genome"`
	Mutation  MutationConfig  `yaml:"mutation"`
	Food      FoodConfig      `yaml:"food"`
	Seeding   SeedingConfig   `yaml:"seeding"`
	Store     StoreConfig     `yaml:"store"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	TargetFPS int `yaml:"target_fps"`
	HUDWidth  int `yaml:"hud_width"` // Side panel width in pixels
}

// GridConfig holds field dimensions. The outermost ring of cells is border.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"` // Pixels per cell in window mode
}

// SnakeConfig holds lifecycle constants.
type SnakeConfig struct {
	HealthPerFood int `yaml:"health_per_food"` // Health after eating or splitting
	SpawnHealth   int `yaml:"spawn_health"`    // Health of seeded snakes (0 = 2 * health_per_food)
	MinLength     int `yaml:"min_length"`      // Starvation below this length kills
	SplitLength   int `yaml:"split_length"`    // Growing to this length splits the snake
	InitialLength int `yaml:"initial_length"`  // Segments of a seeded snake
}

// GenomeConfig holds sensor layout parameters.
type GenomeConfig struct {
	SensorRadius  int `yaml:"sensor_radius"`  // Ring radius around the head
	InitialWeight int `yaml:"initial_weight"` // Random weights drawn from [-w, w]
}

// MutationConfig holds mutation parameters.
type MutationConfig struct {
	Chance           float64 `yaml:"chance"`            // Probability a split child mutates
	MinPerturbations int     `yaml:"min_perturbations"` // Per mutation event
	MaxPerturbations int     `yaml:"max_perturbations"`
	MaxDelta         int     `yaml:"max_delta"` // Per perturbation, uniform in [-d, d]
}

// FoodConfig holds food replenishment parameters.
type FoodConfig struct {
	PerWidth int `yaml:"per_width"` // Target food count = per_width * grid width
}

// SeedingConfig describes the layout used when the population is reseeded.
type SeedingConfig struct {
	Columns         int  `yaml:"columns"`
	Rows            int  `yaml:"rows"`
	OriginX         int  `yaml:"origin_x"` // Head of the first snake
	OriginY         int  `yaml:"origin_y"`
	SpacingX        int  `yaml:"spacing_x"`
	SpacingY        int  `yaml:"spacing_y"`
	MutateAlternate bool `yaml:"mutate_alternate"` // Mutate every other snake of the layout
}

// StoreConfig holds genome store settings.
type StoreConfig struct {
	Path      string `yaml:"path"`       // Empty disables persistence
	SaveEvery int    `yaml:"save_every"` // Deaths between autosaves (0 = only on exit)
}

// TelemetryConfig holds telemetry settings.
type TelemetryConfig struct {
	StatsWindow   int `yaml:"stats_window"`   // Ticks per stats window
	HistoryWindow int `yaml:"history_window"` // History entries per bucket
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	TargetFood  int
	SpawnHealth int
	Mutation    genome.MutationParams
	WindowW     int32
	WindowH     int32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults. Panics if they do not parse.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.ComputeDerived()

	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Grid.Width < 3 || c.Grid.Height < 3:
		return fmt.Errorf("grid must be at least 3x3, got %dx%d", c.Grid.Width, c.Grid.Height)
	case c.Snake.HealthPerFood <= 0:
		return fmt.Errorf("snake.health_per_food must be positive")
	case c.Snake.MinLength < 1:
		return fmt.Errorf("snake.min_length must be at least 1")
	case c.Snake.SplitLength < 2:
		return fmt.Errorf("snake.split_length must be at least 2")
	case c.Snake.InitialLength < 1:
		return fmt.Errorf("snake.initial_length must be at least 1")
	case c.Genome.SensorRadius < 1:
		return fmt.Errorf("genome.sensor_radius must be at least 1")
	case c.Mutation.MaxPerturbations < c.Mutation.MinPerturbations:
		return fmt.Errorf("mutation.max_perturbations below min_perturbations")
	}
	return nil
}

// ComputeDerived calculates values derived from loaded config.
// Call it again after changing fields in code.
func (c *Config) ComputeDerived() {
	c.Derived.TargetFood = c.Food.PerWidth * c.Grid.Width

	c.Derived.SpawnHealth = c.Snake.SpawnHealth
	if c.Derived.SpawnHealth == 0 {
		c.Derived.SpawnHealth = 2 * c.Snake.HealthPerFood
	}

	c.Derived.Mutation = genome.MutationParams{
		MinPerturbations: c.Mutation.MinPerturbations,
		MaxPerturbations: c.Mutation.MaxPerturbations,
		MaxDelta:         c.Mutation.MaxDelta,
	}

	c.Derived.WindowW = int32(c.Grid.Width*c.Grid.CellSize + c.Screen.HUDWidth)
	c.Derived.WindowH = int32(c.Grid.Height * c.Grid.CellSize)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
