// Package renderer draws the simulation field with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Vovchek-aks/SnakesEvolv/grid"
)

// Palette maps cell kinds to colors.
type Palette struct {
	Background rl.Color
	Lines      rl.Color
	Border     rl.Color
	Snake      rl.Color
	Food       rl.Color
	Unknown    rl.Color
}

// DefaultPalette returns the standard dark palette.
func DefaultPalette() Palette {
	return Palette{
		Background: rl.Color{R: 18, G: 20, B: 24, A: 255},
		Lines:      rl.Color{R: 34, G: 38, B: 44, A: 255},
		Border:     rl.Color{R: 120, G: 120, B: 130, A: 255},
		Snake:      rl.Color{R: 90, G: 200, B: 90, A: 255},
		Food:       rl.Color{R: 220, G: 80, B: 70, A: 255},
		Unknown:    rl.Magenta,
	}
}

// Color returns the fill color for a cell kind.
func (p Palette) Color(kind grid.CellKind) rl.Color {
	switch kind {
	case grid.Border:
		return p.Border
	case grid.SnakeBody:
		return p.Snake
	case grid.Food:
		return p.Food
	}
	return p.Unknown
}

// GridRenderer draws cells as filled squares on a line grid.
type GridRenderer struct {
	Palette   Palette
	ShowLines bool

	width    int32 // cells
	height   int32
	cellSize int32 // pixels
}

// NewGridRenderer creates a renderer for a width x height field.
func NewGridRenderer(width, height, cellSize int) *GridRenderer {
	return &GridRenderer{
		Palette:   DefaultPalette(),
		ShowLines: true,
		width:     int32(width),
		height:    int32(height),
		cellSize:  int32(cellSize),
	}
}

// PixelSize returns the drawn field size in pixels.
func (r *GridRenderer) PixelSize() (int32, int32) {
	return r.width * r.cellSize, r.height * r.cellSize
}

// Draw renders the background, grid lines and every cell.
func (r *GridRenderer) Draw(cells []grid.Cell) {
	w, h := r.PixelSize()
	rl.DrawRectangle(0, 0, w, h, r.Palette.Background)

	if r.ShowLines {
		for x := int32(1); x < r.width; x++ {
			rl.DrawRectangle(x*r.cellSize, 0, 1, h, r.Palette.Lines)
		}
		for y := int32(1); y < r.height; y++ {
			rl.DrawRectangle(0, y*r.cellSize, w, 1, r.Palette.Lines)
		}
	}

	for _, c := range cells {
		rl.DrawRectangle(
			int32(c.Pos.X)*r.cellSize,
			int32(c.Pos.Y)*r.cellSize,
			r.cellSize,
			r.cellSize,
			r.Palette.Color(c.Kind),
		)
	}
}

// CellAt converts a pixel position to a cell position. ok is false outside
// the field.
func (r *GridRenderer) CellAt(px, py float32) (grid.Position, bool) {
	if px < 0 || py < 0 {
		return grid.Position{}, false
	}
	pos := grid.Position{X: int(px) / int(r.cellSize), Y: int(py) / int(r.cellSize)}
	if pos.X >= int(r.width) || pos.Y >= int(r.height) {
		return grid.Position{}, false
	}
	return pos, true
}
