// Package grid provides the integer cell model shared by the simulation:
// positions, movement directions and cell kinds.
package grid

import "fmt"

// Position is a cell coordinate. Y grows downward, matching screen space.
type Position struct {
	X, Y int
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a movement direction. The numeric order is also the
// tie-break priority used when choosing a move.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// NumDirections is the length of a vote vector.
const NumDirections = 4

// Directions lists all directions in priority order.
var Directions = [NumDirections]Direction{Up, Right, Down, Left}

var directionOffsets = [NumDirections]Position{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

// Offset returns the unit step for d.
func (d Direction) Offset() Position {
	return directionOffsets[d]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}
