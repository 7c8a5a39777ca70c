// Package snake implements the simulation of a snake on a toroidal field.
//
// The package is pure logic: it has no terminal, timing or logging
// dependencies. A driver prepares a level, then calls HandleNextStep on a
// fixed cadence and reads Field, SnakeHead and Score back for rendering.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrIllegalMove is returned by HandleNextStep when the head would enter
	// a block or a snake segment other than the vacating tail.
	ErrIllegalMove = errors.New("snake: illegal move")

	// ErrInvalidSize is returned when the field cannot hold a starting snake.
	ErrInvalidSize = errors.New("snake: invalid field size")

	// ErrNilRand is returned when no random source is supplied.
	ErrNilRand = errors.New("snake: nil random source")
)

// Game owns the field, the snake, the score and the random source.
type Game struct {
	field   *Field
	snake   Snake
	score   int
	rng     *rand.Rand
	borders BorderChances
}

// New creates a game with the default border odds.
// The field is empty until PrepareLevel is called.
func New(width, height int, rng *rand.Rand) (*Game, error) {
	return NewWithBorders(width, height, rng, DefaultBorderChances())
}

// NewWithBorders creates a game with custom border odds.
func NewWithBorders(width, height int, rng *rand.Rand, borders BorderChances) (*Game, error) {
	if width < 2 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d (need at least 2x1)", ErrInvalidSize, width, height)
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	if err := borders.Validate(); err != nil {
		return nil, err
	}

	return &Game{
		field:   NewField(Size{Width: width, Height: height}),
		rng:     rng,
		borders: borders,
	}, nil
}

// Field returns the field for read-only use.
func (g *Game) Field() *Field {
	return g.field
}

// Size returns the field dimensions.
func (g *Game) Size() Size {
	return g.field.Size()
}

// SnakeHead returns the current head location.
func (g *Game) SnakeHead() Location {
	return g.snake.Head
}

// SnakeTail returns the current tail location.
func (g *Game) SnakeTail() Location {
	return g.snake.Tail
}

// HeadDirection returns the direction the snake will move on the next step.
func (g *Game) HeadDirection() Direction {
	return g.snake.HeadDirection(g.field)
}

// Score returns the number of food cells eaten since the level was prepared.
func (g *Game) Score() int {
	return g.score
}

// PrepareLevel clears the field and generates blocks, the snake and food.
// The score starts over at zero.
func (g *Game) PrepareLevel() {
	g.field.Reset()
	g.GenerateBlocks()
	g.GenerateSnake()
	g.GenerateFood()
	g.score = 0
}

// HandleNextStep advances the snake by one cell.
// A requested direction equal or opposite to the current one is ignored.
// On an illegal move the game is left exactly as it was and the returned
// error wraps ErrIllegalMove.
func (g *Game) HandleNextStep(requested Direction) error {
	if !requested.valid() {
		panic(fmt.Sprintf("snake: invalid direction %d", int(requested)))
	}
	previous := g.snake.HeadDirection(g.field)
	g.turn(requested, previous)

	headDir := g.snake.HeadDirection(g.field)
	next := headDir.Next(g.snake.Head, g.field.Size())

	target := g.field.GetAt(next)
	if !g.isNextLocationAllowed(next, target) {
		g.field.SetAt(g.snake.Head, SnakeCell(previous))
		return fmt.Errorf("%w: %s cell at %v", ErrIllegalMove, target.Kind, next)
	}

	if target.Kind == KindFood {
		g.score++
		g.grow(next, headDir)
		g.GenerateFood()
	} else {
		g.move(next, headDir)
	}

	return nil
}

// turn stores the requested direction in the head cell unless it is the
// current direction or would reverse the snake into itself.
func (g *Game) turn(requested, current Direction) {
	if requested != current && requested != current.Opposite() {
		g.field.SetAt(g.snake.Head, SnakeCell(requested))
	}
}

// isNextLocationAllowed checks whether the head may enter loc.
// The tail cell is allowed because the tail leaves it on the same step.
func (g *Game) isNextLocationAllowed(loc Location, cell Cell) bool {
	switch cell.Kind {
	case KindEmpty, KindFood:
		return true
	case KindSnake:
		return loc == g.snake.Tail
	default:
		return false
	}
}

// move shifts the snake without growing: the tail cell is freed first so the
// head may take it over.
func (g *Game) move(next Location, headDir Direction) {
	size := g.field.Size()
	tailNext := g.snake.TailDirection(g.field).Next(g.snake.Tail, size)

	g.field.SetAt(g.snake.Tail, EmptyCell())
	g.field.SetAt(next, SnakeCell(headDir))

	g.snake.Head = next
	g.snake.Tail = tailNext
}

// grow extends the head onto next and leaves the tail in place.
func (g *Game) grow(next Location, headDir Direction) {
	g.field.SetAt(next, SnakeCell(headDir))
	g.snake.Head = next
}
