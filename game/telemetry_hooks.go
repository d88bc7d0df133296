package game

import (
	"log/slog"

	"github.com/Vovchek-aks/SnakesEvolv/telemetry"
)

// flushTelemetry emits window stats and bookmarks when the current window
// is complete.
func (g *Game) flushTelemetry() {
	tick := g.pop.CurrentTick()
	if !g.collector.ShouldFlush(tick) {
		return
	}

	stats := g.collector.Flush(tick, telemetry.PopulationState{
		Snakes:        g.pop.Snakes(),
		Food:          g.pop.Food(),
		Segments:      g.pop.Segments(),
		BestScore:     g.store.BestScore(),
		MaxGeneration: g.pop.MaxGeneration(),
	})

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		slog.Info("perf", "tick_avg", g.perf.TickAvg().String(), "draw_avg", g.perf.DrawAvg().String())
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteWindow(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
	}

	for _, bm := range g.bookmarks.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if g.outputManager != nil {
			if err := g.outputManager.WriteBookmark(bm); err != nil {
				slog.Error("failed to write bookmark", "error", err)
			}
		}
	}
}
