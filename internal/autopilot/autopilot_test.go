package autopilot

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/torus-snake/internal/games/snake"
)

func newPilot(t *testing.T, w, h int, borders snake.BorderChances) *Pilot {
	t.Helper()
	g, err := snake.NewWithBorders(w, h, rand.New(rand.NewSource(7)), borders)
	require.NoError(t, err)
	return New(g, nil)
}

// moveFood replaces the level's food with a single item at loc.
func moveFood(p *Pilot, loc snake.Location) {
	f := p.game.Field()
	for _, old := range f.Locations(snake.KindFood) {
		f.SetAt(old, snake.EmptyCell())
	}
	f.SetAt(loc, snake.FoodCell())
}

func TestChooseHeadsForFood(t *testing.T) {
	p := newPilot(t, 10, 10, snake.BorderChances{None: 1})

	moveFood(p, snake.Location{X: 5, Y: 2})
	assert.Equal(t, snake.DirUp, p.Choose())

	moveFood(p, snake.Location{X: 5, Y: 8})
	assert.Equal(t, snake.DirDown, p.Choose())

	moveFood(p, snake.Location{X: 8, Y: 5})
	assert.Equal(t, snake.DirRight, p.Choose())
}

func TestChooseAvoidsBlocks(t *testing.T) {
	p := newPilot(t, 10, 10, snake.BorderChances{None: 1})
	moveFood(p, snake.Location{X: 8, Y: 5})
	p.game.Field().Set(6, 5, snake.BlockCell())

	d := p.Choose()
	assert.Contains(t, []snake.Direction{snake.DirUp, snake.DirDown}, d)
}

func TestChooseKeepsHeadingWhenTrapped(t *testing.T) {
	p := newPilot(t, 10, 10, snake.BorderChances{None: 1})
	f := p.game.Field()
	f.Set(6, 5, snake.BlockCell())
	f.Set(5, 4, snake.BlockCell())
	f.Set(5, 6, snake.BlockCell())

	assert.Equal(t, snake.DirRight, p.Choose())

	restarted, err := p.Step()
	require.NoError(t, err)
	assert.True(t, restarted)
	assert.Equal(t, 2, p.Stats().Levels)
	assert.Equal(t, 0, p.game.Score())
}

func TestRunCollectsStats(t *testing.T) {
	p := newPilot(t, 12, 9, snake.BorderChances{None: 1})

	stats, err := p.Run(context.Background(), 500)
	require.NoError(t, err)

	assert.Equal(t, 500, stats.Steps)
	assert.GreaterOrEqual(t, stats.Levels, 1)
	assert.Positive(t, stats.Eaten)
	assert.Positive(t, stats.Best)
	assert.LessOrEqual(t, stats.Best, stats.Eaten)
}

func TestRunKeepsInvariantsWithBorders(t *testing.T) {
	p := newPilot(t, 16, 10, snake.DefaultBorderChances())

	for i := 0; i < 2000; i++ {
		_, err := p.Step()
		require.NoError(t, err)

		snap := p.game.Snapshot()
		require.Equal(t, snap.Score+2, snap.SnakeLen, "step %d", i)
		require.Len(t, snap.Food, 1, "step %d", i)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	p := newPilot(t, 10, 10, snake.BorderChances{None: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := p.Run(ctx, 100)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, stats.Steps)
	assert.Equal(t, 1, stats.Levels)
}

func TestWrapDist(t *testing.T) {
	tests := []struct {
		a, b, n, expected int
	}{
		{0, 0, 10, 0},
		{1, 4, 10, 3},
		{9, 1, 10, 2},
		{0, 5, 10, 5},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, wrapDist(tc.a, tc.b, tc.n), "%d->%d mod %d", tc.a, tc.b, tc.n)
	}
}
