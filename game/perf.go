package game

import "time"

// perfWindow is the number of samples averaged per phase.
const perfWindow = 120

// phaseTimer keeps the last perfWindow durations and their running sum.
type phaseTimer struct {
	ring [perfWindow]time.Duration
	next int
	n    int
	sum  time.Duration
}

func (t *phaseTimer) add(d time.Duration) {
	if t.n == perfWindow {
		t.sum -= t.ring[t.next]
	} else {
		t.n++
	}
	t.ring[t.next] = d
	t.sum += d
	t.next = (t.next + 1) % perfWindow
}

func (t *phaseTimer) avg() time.Duration {
	if t.n == 0 {
		return 0
	}
	return t.sum / time.Duration(t.n)
}

// PerfStats averages how long simulation ticks and frame draws take.
type PerfStats struct {
	tick phaseTimer
	draw phaseTimer
}

// NewPerfStats creates an empty tracker.
func NewPerfStats() *PerfStats {
	return &PerfStats{}
}

// RecordTick adds the duration of one simulation tick.
func (p *PerfStats) RecordTick(d time.Duration) { p.tick.add(d) }

// RecordDraw adds the duration of one frame draw.
func (p *PerfStats) RecordDraw(d time.Duration) { p.draw.add(d) }

// TickAvg returns the mean tick duration over the recent window.
func (p *PerfStats) TickAvg() time.Duration { return p.tick.avg() }

// DrawAvg returns the mean draw duration over the recent window.
func (p *PerfStats) DrawAvg() time.Duration { return p.draw.avg() }
