// Package tui draws the simulation in a terminal with tcell.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Vovchek-aks/SnakesEvolv/grid"
)

// Simulation is what the terminal front-end drives.
type Simulation interface {
	UpdateHeadless()
	Cells() []grid.Cell
	Tick() int32
	StatusLine() string
	StepsPerUpdate() int
	SetStepsPerUpdate(n int)
}

var kindRunes = map[grid.CellKind]rune{
	grid.Border:    '█',
	grid.SnakeBody: 'o',
	grid.Food:      '*',
}

var kindStyles = map[grid.CellKind]tcell.Style{
	grid.Border:    tcell.StyleDefault.Foreground(tcell.ColorGray),
	grid.SnakeBody: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	grid.Food:      tcell.StyleDefault.Foreground(tcell.ColorRed),
}

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)

// Terminal renders cells one character per cell with a status line below.
type Terminal struct {
	screen tcell.Screen
	paused bool
}

// NewTerminal initializes the real terminal screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an already initialized screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	screen.HideCursor()
	return &Terminal{screen: screen}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Draw renders the cells and the status line. Cells outside the screen are
// clipped.
func (t *Terminal) Draw(cells []grid.Cell, status string) {
	t.screen.Clear()
	w, h := t.screen.Size()

	fieldBottom := 0
	for _, c := range cells {
		fieldBottom = max(fieldBottom, c.Pos.Y+1)
		if c.Pos.X < 0 || c.Pos.Y < 0 || c.Pos.X >= w || c.Pos.Y >= h {
			continue
		}
		r, ok := kindRunes[c.Kind]
		if !ok {
			r = '?'
		}
		t.screen.SetContent(c.Pos.X, c.Pos.Y, r, nil, kindStyles[c.Kind])
	}

	if t.paused {
		status += "  [paused]"
	}
	t.drawText(0, min(fieldBottom, h-1), status)
	t.screen.Show()
}

func (t *Terminal) drawText(x, y int, s string) {
	w, _ := t.screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		t.screen.SetContent(x, y, r, nil, statusStyle)
		x++
	}
}

// Run steps and draws sim at fps frames per second until the user quits or
// maxTicks is reached (0 = unlimited).
func (t *Terminal) Run(sim Simulation, fps, maxTicks int) {
	if fps <= 0 {
		fps = 10
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev, sim) {
				return
			}

		case <-ticker.C:
			if !t.paused {
				sim.UpdateHeadless()
			}
			t.Draw(sim.Cells(), sim.StatusLine())

			if maxTicks > 0 && int(sim.Tick()) >= maxTicks {
				return
			}
		}
	}
}

// handleEvent applies a key press. It returns false when the user quits.
func (t *Terminal) handleEvent(ev tcell.Event, sim Simulation) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			t.paused = !t.paused
		case '+', '.':
			sim.SetStepsPerUpdate(sim.StepsPerUpdate() + 1)
		case '-', ',':
			sim.SetStepsPerUpdate(sim.StepsPerUpdate() - 1)
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}
