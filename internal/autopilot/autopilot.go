// Package autopilot drives a snake game without a terminal.
// It is used by the simulate command and for soak testing the game rules.
package autopilot

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/torus-snake/internal/games/snake"
)

// Stats summarizes a simulation run.
type Stats struct {
	Steps  int
	Levels int
	Eaten  int
	Best   int
}

// Pilot steers a snake toward the nearest food, preferring cells it may enter.
type Pilot struct {
	game   *snake.Game
	logger *log.Logger
	stats  Stats
}

// New creates a pilot and prepares the first level.
func New(game *snake.Game, logger *log.Logger) *Pilot {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Pilot{game: game, logger: logger}
	p.restart()
	return p
}

// Stats returns the counters collected so far.
func (p *Pilot) Stats() Stats {
	return p.stats
}

func (p *Pilot) restart() {
	p.game.PrepareLevel()
	p.stats.Levels++
	p.logger.Debug("level prepared", "level", p.stats.Levels, "blocks", p.game.Field().Count(snake.KindBlock))
}

// Choose picks the next direction. Turning back is never considered since the
// game ignores it. When every candidate is blocked the current heading is kept.
func (p *Pilot) Choose() snake.Direction {
	current := p.game.HeadDirection()
	head := p.game.SnakeHead()
	size := p.game.Size()
	food := p.game.Field().Locations(snake.KindFood)

	best, bestDist := current, -1
	for _, d := range snake.Directions {
		if d == current.Opposite() {
			continue
		}
		next := d.Next(head, size)
		if !p.enterable(next) {
			continue
		}
		dist := nearest(next, food, size)
		if bestDist < 0 || dist < bestDist || (dist == bestDist && d == current) {
			best, bestDist = d, dist
		}
	}
	return best
}

// enterable mirrors the game's move rule: free cells, food and the tail.
func (p *Pilot) enterable(loc snake.Location) bool {
	switch p.game.Field().GetAt(loc).Kind {
	case snake.KindEmpty, snake.KindFood:
		return true
	case snake.KindSnake:
		return loc == p.game.SnakeTail()
	default:
		return false
	}
}

// Step advances the game once. It reports whether the level was restarted
// after an illegal move.
func (p *Pilot) Step() (bool, error) {
	before := p.game.Score()
	err := p.game.HandleNextStep(p.Choose())
	p.stats.Steps++

	switch {
	case errors.Is(err, snake.ErrIllegalMove):
		p.logger.Debug("illegal move, restarting level", "err", err, "score", before)
		p.restart()
		return true, nil
	case err != nil:
		return false, err
	}

	if score := p.game.Score(); score > before {
		p.stats.Eaten++
		p.stats.Best = max(p.stats.Best, score)
	}
	return false, nil
}

// Run performs up to steps moves, stopping early if ctx is cancelled.
func (p *Pilot) Run(ctx context.Context, steps int) (Stats, error) {
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return p.stats, err
		}
		if _, err := p.Step(); err != nil {
			return p.stats, err
		}
	}
	p.logger.Info("simulation finished",
		"steps", p.stats.Steps,
		"levels", p.stats.Levels,
		"eaten", p.stats.Eaten,
		"best", p.stats.Best,
	)
	return p.stats, nil
}

// nearest returns the wrap-around Manhattan distance from loc to the closest
// target, or 0 when there are no targets.
func nearest(loc snake.Location, targets []snake.Location, size snake.Size) int {
	best := -1
	for _, t := range targets {
		d := wrapDist(loc.X, t.X, size.Width) + wrapDist(loc.Y, t.Y, size.Height)
		if best < 0 || d < best {
			best = d
		}
	}
	return max(best, 0)
}

func wrapDist(a, b, n int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	return min(d, n-d)
}
