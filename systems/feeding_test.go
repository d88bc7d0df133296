package systems

import (
	"math/rand"
	"testing"

	"github.com/Vovchek-aks/SnakesEvolv/grid"
)

func TestFieldBorders(t *testing.T) {
	f := NewField(6, 4)

	seen := make(map[grid.Position]bool)
	for _, p := range f.Borders() {
		if seen[p] {
			t.Errorf("duplicate border %v", p)
		}
		seen[p] = true
		if f.Interior(p) {
			t.Errorf("border %v reported as interior", p)
		}
	}
	if want := 2*6 + 2*(4-2); len(seen) != want {
		t.Errorf("border count = %d, want %d", len(seen), want)
	}
	if f.InteriorArea() != 8 {
		t.Errorf("interior area = %d, want 8", f.InteriorArea())
	}
}

func TestReplenishReachesTarget(t *testing.T) {
	field := NewField(20, 20)
	idx := NewSpatialIndex(512)
	field.Stamp(idx)
	idx.Insert(grid.Position{X: 5, Y: 5}, grid.SnakeBody)

	fs := NewFeedingSystem(field, 40, rand.New(rand.NewSource(1)))
	placed := fs.Replenish(idx)

	if placed != 40 || idx.Count(grid.Food) != 40 {
		t.Fatalf("placed %d, food count %d, want 40", placed, idx.Count(grid.Food))
	}
	if !idx.Has(grid.Position{X: 5, Y: 5}, grid.SnakeBody) {
		t.Error("food overwrote a snake cell")
	}
	for _, p := range idx.AppendKind(nil, grid.Food) {
		if !field.Interior(p) {
			t.Errorf("food placed on border at %v", p)
		}
	}

	if fs.Replenish(idx) != 0 {
		t.Error("second replenish should place nothing")
	}
}

func TestReplenishTopsUpAfterEating(t *testing.T) {
	field := NewField(12, 12)
	idx := NewSpatialIndex(256)
	field.Stamp(idx)
	fs := NewFeedingSystem(field, 10, rand.New(rand.NewSource(2)))
	fs.Replenish(idx)

	eaten := idx.AppendKind(nil, grid.Food)[:3]
	for _, p := range eaten {
		idx.Remove(p)
	}

	if placed := fs.Replenish(idx); placed != 3 {
		t.Errorf("placed %d, want 3", placed)
	}
}

func TestReplenishFullField(t *testing.T) {
	field := NewField(4, 4)
	idx := NewSpatialIndex(16)
	field.Stamp(idx)

	fs := NewFeedingSystem(field, 100, rand.New(rand.NewSource(3)))
	if placed := fs.Replenish(idx); placed != field.InteriorArea() {
		t.Errorf("placed %d, want %d", placed, field.InteriorArea())
	}
}
