package snake

// Snapshot captures the observable game state for determinism testing and reporting.
type Snapshot struct {
	Score    int
	Head     Location
	Tail     Location
	Dir      Direction
	SnakeLen int
	Food     []Location
	Blocks   int
}

// Snapshot returns the current game snapshot.
// It must only be called after PrepareLevel.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Score:    g.score,
		Head:     g.snake.Head,
		Tail:     g.snake.Tail,
		Dir:      g.snake.HeadDirection(g.field),
		SnakeLen: g.snake.Len(g.field),
		Food:     g.field.Locations(KindFood),
		Blocks:   g.field.Count(KindBlock),
	}
}
