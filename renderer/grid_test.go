package renderer

import (
	"testing"

	"github.com/Vovchek-aks/SnakesEvolv/grid"
)

func TestCellAt(t *testing.T) {
	r := NewGridRenderer(10, 5, 8)

	tests := []struct {
		name   string
		px, py float32
		want   grid.Position
		ok     bool
	}{
		{"origin", 0, 0, grid.Position{X: 0, Y: 0}, true},
		{"inside cell", 17, 9, grid.Position{X: 2, Y: 1}, true},
		{"last cell", 79, 39, grid.Position{X: 9, Y: 4}, true},
		{"right of field", 80, 0, grid.Position{}, false},
		{"below field", 0, 40, grid.Position{}, false},
		{"negative", -1, 3, grid.Position{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := r.CellAt(tc.px, tc.py)
			if ok != tc.ok || got != tc.want {
				t.Errorf("CellAt(%v, %v) = %v, %v; want %v, %v", tc.px, tc.py, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestPaletteCoversKinds(t *testing.T) {
	p := DefaultPalette()
	for _, kind := range grid.OccupiedKinds {
		if p.Color(kind) == p.Unknown {
			t.Errorf("kind %v has no color", kind)
		}
	}
	if p.Color(grid.Empty) != p.Unknown {
		t.Error("empty cells are never drawn and should map to the fallback color")
	}
}
