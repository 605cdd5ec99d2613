package eater

import "fmt"

// Position is a grid coordinate.
type Position struct {
	X, Y int
}

// Add returns the position one step away in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four orthogonal unit steps.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// searchOrder is the default neighbour expansion order used by the pathfinder.
var searchOrder = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Delta returns the (dx, dy) step for the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// directionBetween returns the direction of a single orthogonal step from a to b.
func directionBetween(a, b Position) (Direction, bool) {
	for _, d := range searchOrder {
		if a.Add(d) == b {
			return d, true
		}
	}
	return 0, false
}
