package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Vovchek-aks/SnakesEvolv/grid"
)

func newTestTerminal(t *testing.T, w, h int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(w, h)
	term := NewTerminalWithScreen(screen)
	t.Cleanup(term.Close)
	return term, screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestDrawCells(t *testing.T) {
	term, screen := newTestTerminal(t, 20, 10)

	cells := []grid.Cell{
		{Pos: grid.Position{X: 0, Y: 0}, Kind: grid.Border},
		{Pos: grid.Position{X: 3, Y: 2}, Kind: grid.SnakeBody},
		{Pos: grid.Position{X: 5, Y: 4}, Kind: grid.Food},
		{Pos: grid.Position{X: 50, Y: 50}, Kind: grid.Food}, // clipped
	}
	term.Draw(cells, "tick 1")

	if r := runeAt(screen, 0, 0); r != '█' {
		t.Errorf("border rune = %q", r)
	}
	if r := runeAt(screen, 3, 2); r != 'o' {
		t.Errorf("snake rune = %q", r)
	}
	if r := runeAt(screen, 5, 4); r != '*' {
		t.Errorf("food rune = %q", r)
	}
}

func TestStatusLineClampsToScreen(t *testing.T) {
	term, screen := newTestTerminal(t, 20, 4)

	cells := []grid.Cell{{Pos: grid.Position{X: 0, Y: 8}, Kind: grid.Border}}
	term.Draw(cells, "hello")

	if r := runeAt(screen, 0, 3); r != 'h' {
		t.Errorf("status should be on the last row, got %q", r)
	}
}

type fakeSim struct {
	steps int
}

func (f *fakeSim) UpdateHeadless() {}
func (f *fakeSim) Cells() []grid.Cell { return nil }
func (f *fakeSim) Tick() int32 { return 0 }
func (f *fakeSim) StatusLine() string { return "" }
func (f *fakeSim) StepsPerUpdate() int { return f.steps }
func (f *fakeSim) SetStepsPerUpdate(n int) { f.steps = n }

func TestHandleEvent(t *testing.T) {
	term, _ := newTestTerminal(t, 10, 10)
	sim := &fakeSim{steps: 2}

	if !term.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), sim) || !term.paused {
		t.Error("space should pause")
	}
	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), sim)
	if sim.steps != 3 {
		t.Errorf("steps = %d after +", sim.steps)
	}
	if term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), sim) {
		t.Error("q should quit")
	}
	if term.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), sim) {
		t.Error("escape should quit")
	}
}
