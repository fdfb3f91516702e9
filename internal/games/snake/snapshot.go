package snake

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Phase        string
	Score        int
	SnakeLen     int
	HeadX        int
	HeadY        int
	Dir          Direction
	FoodX        int
	FoodY        int
	MoveInterval int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}

	return Snapshot{
		Tick:         g.tick,
		Phase:        g.machine.Phase().String(),
		Score:        g.score,
		SnakeLen:     len(g.snake),
		HeadX:        headX,
		HeadY:        headY,
		Dir:          g.direction,
		FoodX:        g.food.X,
		FoodY:        g.food.Y,
		MoveInterval: g.moveInterval(),
	}
}
