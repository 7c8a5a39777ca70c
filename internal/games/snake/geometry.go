package snake

import "fmt"

// Size is the dimension of the field in cells.
type Size struct {
	Width  int
	Height int
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Contains reports whether (x, y) lies inside the field.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// Location is a cell coordinate. X grows to the right, Y grows downward.
type Location struct {
	X int
	Y int
}

// String returns a string representation of the location.
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// Direction is one of the four movement directions.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

func (d Direction) valid() bool {
	return d >= DirLeft && d <= DirDown
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		panic(fmt.Sprintf("snake: invalid direction %d", int(d)))
	}
}

// Next returns the neighbour of loc one step in direction d.
// The field is a torus: stepping off an edge re-enters from the opposite edge.
func (d Direction) Next(loc Location, size Size) Location {
	switch d {
	case DirLeft:
		return Location{X: (loc.X + size.Width - 1) % size.Width, Y: loc.Y}
	case DirRight:
		return Location{X: (loc.X + 1) % size.Width, Y: loc.Y}
	case DirUp:
		return Location{X: loc.X, Y: (loc.Y + size.Height - 1) % size.Height}
	case DirDown:
		return Location{X: loc.X, Y: (loc.Y + 1) % size.Height}
	default:
		panic(fmt.Sprintf("snake: invalid direction %d", int(d)))
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}
