package snake

import (
	"fmt"
	"strings"
)

// CellKind identifies what occupies a cell.
type CellKind uint8

const (
	KindEmpty CellKind = iota
	KindSnake
	KindFood
	KindBlock
)

func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSnake:
		return "snake"
	case KindFood:
		return "food"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Cell is the content of one field cell.
// Dir is only meaningful for snake cells: it points from this segment
// to the next segment toward the head.
type Cell struct {
	Kind CellKind
	Dir  Direction
}

// EmptyCell returns an unoccupied cell.
func EmptyCell() Cell { return Cell{Kind: KindEmpty} }

// SnakeCell returns a snake segment moving in direction d.
func SnakeCell(d Direction) Cell { return Cell{Kind: KindSnake, Dir: d} }

// FoodCell returns a food cell.
func FoodCell() Cell { return Cell{Kind: KindFood} }

// BlockCell returns an impassable cell.
func BlockCell() Cell { return Cell{Kind: KindBlock} }

// IsSnake reports whether the cell holds a snake segment.
func (c Cell) IsSnake() bool { return c.Kind == KindSnake }

// Field is a fixed-size grid of cells.
// Cells are stored in row-major order: index = y*width + x.
type Field struct {
	size  Size
	cells []Cell
}

// NewField creates a field of the given size with every cell empty.
func NewField(size Size) *Field {
	return &Field{
		size:  size,
		cells: make([]Cell, size.Area()),
	}
}

// Size returns the field dimensions.
func (f *Field) Size() Size {
	return f.size
}

// index converts a coordinate to a flat array index.
// Coordinates outside the field are a caller bug.
func (f *Field) index(x, y int) int {
	if !f.size.Contains(x, y) {
		panic(fmt.Sprintf("snake: cell (%d,%d) outside %dx%d field", x, y, f.size.Width, f.size.Height))
	}
	return y*f.size.Width + x
}

// Get returns the cell at (x, y).
func (f *Field) Get(x, y int) Cell {
	return f.cells[f.index(x, y)]
}

// Set replaces the cell at (x, y).
func (f *Field) Set(x, y int, cell Cell) {
	f.cells[f.index(x, y)] = cell
}

// GetAt returns the cell at loc.
func (f *Field) GetAt(loc Location) Cell {
	return f.Get(loc.X, loc.Y)
}

// SetAt replaces the cell at loc.
func (f *Field) SetAt(loc Location, cell Cell) {
	f.Set(loc.X, loc.Y, cell)
}

// Reset empties every cell.
func (f *Field) Reset() {
	for i := range f.cells {
		f.cells[i] = EmptyCell()
	}
}

// Count returns the number of cells of the given kind.
func (f *Field) Count(kind CellKind) int {
	n := 0
	for _, c := range f.cells {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Locations returns every location holding the given kind, in row-major order.
func (f *Field) Locations(kind CellKind) []Location {
	var locs []Location
	for i, c := range f.cells {
		if c.Kind == kind {
			locs = append(locs, Location{X: i % f.size.Width, Y: i / f.size.Width})
		}
	}
	return locs
}

// String dumps the field one row per line: '.' empty, '#' block, '*' food,
// and '<', '>', '^', 'v' for snake segments.
func (f *Field) String() string {
	var sb strings.Builder
	sb.Grow(f.size.Area() + f.size.Height)

	for y := 0; y < f.size.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < f.size.Width; x++ {
			sb.WriteByte(cellByte(f.Get(x, y)))
		}
	}
	return sb.String()
}

func cellByte(c Cell) byte {
	switch c.Kind {
	case KindBlock:
		return '#'
	case KindFood:
		return '*'
	case KindSnake:
		switch c.Dir {
		case DirLeft:
			return '<'
		case DirRight:
			return '>'
		case DirUp:
			return '^'
		default:
			return 'v'
		}
	default:
		return '.'
	}
}
