package snake

import "fmt"

// BorderChances holds the probabilities used when generating border blocks.
type BorderChances struct {
	None  float64 // skip borders entirely
	Sides float64 // left and right columns
	Edges float64 // top and bottom rows
}

// DefaultBorderChances returns the stock border odds.
func DefaultBorderChances() BorderChances {
	return BorderChances{
		None:  0.2,
		Sides: 0.5,
		Edges: 0.5,
	}
}

// Validate checks that every chance is a probability.
func (b BorderChances) Validate() error {
	for _, c := range []struct {
		name string
		p    float64
	}{
		{"none", b.None},
		{"sides", b.Sides},
		{"edges", b.Edges},
	} {
		if c.p < 0 || c.p > 1 {
			return fmt.Errorf("snake: border chance %s=%v outside [0,1]", c.name, c.p)
		}
	}
	return nil
}

// chance returns true with probability p.
func (g *Game) chance(p float64) bool {
	return g.rng.Float64() < p
}

// GenerateBlocks places border blocks at random.
// The "none" draw returns early; otherwise the sides and edges draws are
// independent of each other.
func (g *Game) GenerateBlocks() {
	if g.chance(g.borders.None) {
		return
	}

	size := g.field.Size()

	if g.chance(g.borders.Sides) {
		for y := 0; y < size.Height; y++ {
			g.field.Set(0, y, BlockCell())
			g.field.Set(size.Width-1, y, BlockCell())
		}
	}

	if g.chance(g.borders.Edges) {
		for x := 0; x < size.Width; x++ {
			g.field.Set(x, 0, BlockCell())
			g.field.Set(x, size.Height-1, BlockCell())
		}
	}
}

// GenerateSnake places a two-cell snake heading right in the middle of the field.
func (g *Game) GenerateSnake() {
	size := g.field.Size()
	row := size.Height / 2
	headCol := size.Width / 2
	tailCol := headCol - 1

	g.field.Set(headCol, row, SnakeCell(DirRight))
	g.field.Set(tailCol, row, SnakeCell(DirRight))

	g.snake = Snake{
		Head: Location{X: headCol, Y: row},
		Tail: Location{X: tailCol, Y: row},
	}
}

// GenerateFood puts food on a random empty cell and reports whether it could.
//
// A random index in [0, area) is drawn, then empty cells are counted in
// row-major order, wrapping around the field, until the index is used up.
// A field with no empty cell gets no food.
func (g *Game) GenerateFood() bool {
	empty := g.field.Count(KindEmpty)
	if empty == 0 {
		return false
	}

	remaining := g.rng.Intn(g.field.Size().Area()) % empty
	size := g.field.Size()
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			if g.field.Get(x, y).Kind != KindEmpty {
				continue
			}
			if remaining == 0 {
				g.field.Set(x, y, FoodCell())
				return true
			}
			remaining--
		}
	}

	panic("snake: empty cell count changed during food placement")
}
