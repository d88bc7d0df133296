package grid

import "fmt"

// CellKind classifies what occupies a position.
// The numeric values are part of the genome file format.
type CellKind uint8

const (
	Border CellKind = iota
	SnakeBody
	Food
	// Empty is the absence of a cell. It is never stored in an Index.
	Empty
)

// OccupiedKinds are the kinds a moving head can run into.
var OccupiedKinds = []CellKind{Border, SnakeBody, Food}

// Valid reports whether k is one of the defined kinds.
func (k CellKind) Valid() bool {
	return k <= Empty
}

func (k CellKind) String() string {
	switch k {
	case Border:
		return "border"
	case SnakeBody:
		return "snake"
	case Food:
		return "food"
	case Empty:
		return "empty"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Cell is an occupied position, as handed to drawers.
type Cell struct {
	Pos  Position
	Kind CellKind
}
