package systems

import (
	"github.com/Vovchek-aks/SnakesEvolv/grid"
)

// Field is the walled rectangle snakes live in. The outermost ring of
// cells is border; everything inside is interior.
type Field struct {
	Width, Height int
	borders       []grid.Position
}

// NewField builds the border ring for a width x height field.
func NewField(width, height int) *Field {
	f := &Field{Width: width, Height: height}
	f.borders = make([]grid.Position, 0, 2*width+2*height)
	for x := 0; x < width; x++ {
		f.borders = append(f.borders, grid.Position{X: x, Y: 0}, grid.Position{X: x, Y: height - 1})
	}
	for y := 1; y < height-1; y++ {
		f.borders = append(f.borders, grid.Position{X: 0, Y: y}, grid.Position{X: width - 1, Y: y})
	}
	return f
}

// Borders returns the border positions. Callers must not modify the slice.
func (f *Field) Borders() []grid.Position {
	return f.borders
}

// InteriorArea returns the number of non-border cells.
func (f *Field) InteriorArea() int {
	return max(f.Width-2, 0) * max(f.Height-2, 0)
}

// Interior reports whether pos lies strictly inside the border.
func (f *Field) Interior(pos grid.Position) bool {
	return pos.X > 0 && pos.X < f.Width-1 && pos.Y > 0 && pos.Y < f.Height-1
}

// Stamp inserts the border ring into the index.
func (f *Field) Stamp(idx *SpatialIndex) {
	for _, pos := range f.borders {
		idx.Insert(pos, grid.Border)
	}
}
