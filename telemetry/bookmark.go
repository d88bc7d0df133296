package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFitnessBreakthrough BookmarkType = "fitness_breakthrough"
	BookmarkNewRecord           BookmarkType = "new_record"
	BookmarkPopulationCrash     BookmarkType = "population_crash"
	BookmarkExtinction          BookmarkType = "extinction"
	BookmarkStablePopulation    BookmarkType = "stable_population"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting moments in the simulation.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking
	recentPeak         int // peak snake count since the last crash
	bestScore          int // best score seen in any window
	stableWindowsCount int // consecutive windows with a steady snake count
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 5 {
		historySize = 5 // minimum for stable population detection
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
		bestScore:   -1,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkExtinction(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	if bd.historyFull || bd.historyIdx > 0 {
		// Fitness breakthrough: mean life length > 2x rolling average
		if b := bd.checkFitnessBreakthrough(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}

		if b := bd.checkNewRecord(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}

		// Population crash: dropped >50% from recent peak
		if b := bd.checkPopulationCrash(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}

		if b := bd.checkStablePopulation(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	bd.addToHistory(stats)

	if stats.Snakes > bd.recentPeak {
		bd.recentPeak = stats.Snakes
	}
	if stats.BestScore > bd.bestScore {
		bd.bestScore = stats.BestScore
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

// getHistory returns the stored windows in chronological order.
func (bd *BookmarkDetector) getHistory() []WindowStats {
	if !bd.historyFull {
		return bd.history[:bd.historyIdx]
	}
	out := make([]WindowStats, 0, bd.historySize)
	out = append(out, bd.history[bd.historyIdx:]...)
	return append(out, bd.history[:bd.historyIdx]...)
}

func (bd *BookmarkDetector) checkExtinction(stats WindowStats) *Bookmark {
	if stats.Reseeds == 0 {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkExtinction,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Population died out and was reseeded %d time(s)", stats.Reseeds),
	}
}

func (bd *BookmarkDetector) checkFitnessBreakthrough(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 || stats.Deaths < 3 {
		return nil
	}

	var total float64
	var n int
	for _, h := range history {
		if h.Deaths > 0 {
			total += h.LifeMean
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := total / float64(n)
	if avg == 0 {
		return nil
	}

	if stats.LifeMean > avg*2.0 {
		return &Bookmark{
			Type:        BookmarkFitnessBreakthrough,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Mean life %.1f is %.1fx average (%.1f)", stats.LifeMean, stats.LifeMean/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkNewRecord(stats WindowStats) *Bookmark {
	if bd.bestScore < 0 || stats.BestScore <= bd.bestScore {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkNewRecord,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Best score rose from %d to %d", bd.bestScore, stats.BestScore),
	}
}

func (bd *BookmarkDetector) checkPopulationCrash(stats WindowStats) *Bookmark {
	if bd.recentPeak == 0 {
		return nil
	}

	dropPercent := 1.0 - float64(stats.Snakes)/float64(bd.recentPeak)
	if dropPercent > 0.50 && stats.Snakes < bd.recentPeak-10 {
		// Reset peak after crash
		oldPeak := bd.recentPeak
		bd.recentPeak = stats.Snakes

		return &Bookmark{
			Type:        BookmarkPopulationCrash,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Snakes crashed %.0f%% from peak %d to %d", dropPercent*100, oldPeak, stats.Snakes),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkStablePopulation(stats WindowStats) *Bookmark {
	if stats.Snakes < 10 {
		bd.stableWindowsCount = 0
		return nil
	}

	history := bd.getHistory()
	if len(history) < 4 {
		return nil
	}

	recent := history[len(history)-4:]
	var sum float64
	for _, h := range recent {
		sum += float64(h.Snakes)
	}
	mean := sum / 4

	var variance float64
	for _, h := range recent {
		d := float64(h.Snakes) - mean
		variance += d * d
	}
	variance /= 4

	if mean > 0 && variance/(mean*mean) < 0.04 { // CV^2 < 0.04 means CV < 0.2
		bd.stableWindowsCount++
	} else {
		bd.stableWindowsCount = 0
	}

	if bd.stableWindowsCount == 5 { // trigger exactly once at 5 windows
		return &Bookmark{
			Type:        BookmarkStablePopulation,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Steady population around %.0f snakes over 5+ windows", mean),
		}
	}
	return nil
}
