package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a sample of life lengths.
type Summary struct {
	Count int
	Mean  float64
	Std   float64
	P50   float64
	P90   float64
	Max   float64
}

// Summarize computes count, mean, sample standard deviation, empirical
// median and 90th percentile, and maximum. An empty sample is all zeros.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s := Summary{
		Count: n,
		Mean:  stat.Mean(sorted, nil),
		P50:   stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:   stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Max:   floats.Max(sorted),
	}
	if n > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}

// SummarizeInts is Summarize over integer samples.
func SummarizeInts(values []int) Summary {
	f := make([]float64, len(values))
	for i, v := range values {
		f[i] = float64(v)
	}
	return Summarize(f)
}

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`

	// State at window end
	Snakes    int `csv:"snakes"`
	Food      int `csv:"food"`
	Segments  int `csv:"segments"`
	BestScore int `csv:"best_score"`

	// Events during window
	Births      int `csv:"births"`
	Mutations   int `csv:"mutations"`
	Deaths      int `csv:"deaths"`
	BorderHits  int `csv:"border_hits"`
	SnakeHits   int `csv:"snake_hits"`
	Starvations int `csv:"starvations"`
	FoodEaten   int `csv:"food_eaten"`
	Reseeds     int `csv:"reseeds"`

	// Life lengths of snakes that died during the window
	LifeMean float64 `csv:"life_mean"`
	LifeStd  float64 `csv:"life_std"`
	LifeP50  float64 `csv:"life_p50"`
	LifeP90  float64 `csv:"life_p90"`
	LifeMax  float64 `csv:"life_max"`

	// Generation depth of the living population
	MaxGeneration int `csv:"max_generation"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Int("snakes", s.Snakes),
		slog.Int("food", s.Food),
		slog.Int("segments", s.Segments),
		slog.Int("best_score", s.BestScore),
		slog.Int("births", s.Births),
		slog.Int("mutations", s.Mutations),
		slog.Int("deaths", s.Deaths),
		slog.Int("border_hits", s.BorderHits),
		slog.Int("snake_hits", s.SnakeHits),
		slog.Int("starvations", s.Starvations),
		slog.Int("food_eaten", s.FoodEaten),
		slog.Int("reseeds", s.Reseeds),
		slog.Float64("life_mean", s.LifeMean),
		slog.Float64("life_std", s.LifeStd),
		slog.Float64("life_p50", s.LifeP50),
		slog.Float64("life_p90", s.LifeP90),
		slog.Float64("life_max", s.LifeMax),
		slog.Int("max_generation", s.MaxGeneration),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
