// Package snake implements classic Snake on an open walled board.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-collection/internal/config"
	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
	"github.com/vovakirdan/arcade-collection/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y int
}

// Game implements the Snake game.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	runs       int64
	machine    *engine.Machine

	tick       uint64
	score      int
	highScore  int
	moveTicker int // Counts ticks until next move

	// Snake state
	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move
	growing   bool      // If true, don't remove tail on next move
	food      Point
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Description returns the launcher blurb.
func (g *Game) Description() string {
	return "Eat, grow, and never bite yourself"
}

// Reset loads configuration and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	cfg, err := config.LoadSnake(runtime.ConfigPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	config.ApplyNamedPreset(&cfg.Difficulty, runtime.Difficulty)
	cfg.Grid.Width = max(cfg.Grid.Width, 8)
	cfg.Grid.Height = max(cfg.Grid.Height, 6)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.highScore = runtime.HighScore
	g.runs = 0
	g.restart()
	g.machine = engine.NewMachine(engine.Menu)
}

// restart rebuilds the board, snake and score.
func (g *Game) restart() {
	g.rng = rand.New(rand.NewSource(g.runtime.Seed + g.runs))
	g.runs++
	g.tick = 0
	g.score = 0
	g.moveTicker = 0
	g.initSnake()
	g.spawnFood()
}

// initSnake places the snake left of center, heading right.
func (g *Game) initSnake() {
	length := max(g.cfg.Gameplay.InitialLength, 1)
	startX := max(g.cfg.Grid.Width/4, length)
	startY := g.cfg.Grid.Height / 2

	g.snake = make([]Point, 0, length)
	for i := 0; i < length; i++ {
		g.snake = append(g.snake, Point{X: startX - i, Y: startY})
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.growing = false
}

// spawnFood places food at a random cell not covered by the snake.
func (g *Game) spawnFood() {
	var emptyCells []Point
	for y := 0; y < g.cfg.Grid.Height; y++ {
		for x := 0; x < g.cfg.Grid.Width; x++ {
			p := Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		// Board full
		g.food = Point{X: -1, Y: -1}
		return
	}

	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// moveInterval is the number of ticks between moves at the current score.
func (g *Game) moveInterval() int {
	gp := g.cfg.Gameplay
	return g.difficulty.Interval(gp.MoveInterval, gp.MinMoveInterval, gp.MoveInterval-gp.MinMoveInterval, g.score, int(g.tick))
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	switch g.machine.Phase() {
	case engine.Menu:
		if input.Any(core.ActionConfirm, core.ActionJump) {
			g.machine.Start()
		}
		return core.StepResult{State: g.State()}
	case engine.Paused:
		if input.Has(core.ActionPause) {
			g.machine.TogglePause()
		}
		return core.StepResult{State: g.State()}
	case engine.GameOver:
		if input.Any(core.ActionRestart, core.ActionConfirm) {
			g.restart()
			g.machine.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.machine.TogglePause()
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// Process direction input (buffer for next move)
	g.processInput(input)

	var events []core.Event
	g.moveTicker++
	if g.moveTicker >= g.moveInterval() {
		g.moveTicker = 0
		events = g.moveSnake()
	}

	return core.StepResult{State: g.State(), Events: events}
}

// processInput handles direction changes.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	// Prevent instant reversal
	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

// isOpposite checks if two directions are opposite.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// moveSnake moves the snake one cell in the current direction.
func (g *Game) moveSnake() []core.Event {
	if len(g.snake) == 0 {
		return nil
	}

	// Apply buffered direction
	g.direction = g.nextDir

	head := g.snake[0]
	var newHead Point
	switch g.direction {
	case DirUp:
		newHead = Point{X: head.X, Y: head.Y - 1}
	case DirDown:
		newHead = Point{X: head.X, Y: head.Y + 1}
	case DirLeft:
		newHead = Point{X: head.X - 1, Y: head.Y}
	case DirRight:
		newHead = Point{X: head.X + 1, Y: head.Y}
	}

	// Check wall collision
	if newHead.X < 0 || newHead.X >= g.cfg.Grid.Width ||
		newHead.Y < 0 || newHead.Y >= g.cfg.Grid.Height {
		return g.crash()
	}

	// Check self collision (excluding tail if not growing, since it will move)
	checkLen := len(g.snake)
	if !g.growing && checkLen > 0 {
		checkLen-- // Tail will be removed
	}
	for i := range checkLen {
		if g.snake[i] == newHead {
			return g.crash()
		}
	}

	// Move snake: add new head
	g.snake = append([]Point{newHead}, g.snake...)

	var events []core.Event
	if newHead == g.food {
		g.score += g.cfg.Gameplay.FoodPoints
		g.growing = true // Don't remove tail this move
		g.spawnFood()
		events = append(events, core.EventPickup)
	}

	// Remove tail unless growing
	if g.growing {
		g.growing = false
	} else if len(g.snake) > 1 {
		g.snake = g.snake[:len(g.snake)-1]
	}
	return events
}

func (g *Game) crash() []core.Event {
	g.machine.End()
	g.highScore = max(g.highScore, g.score)
	return []core.Event{core.EventCrash}
}

// Scene describes the board with one world unit per cell.
func (g *Game) Scene() engine.Scene {
	s := engine.Scene{
		Width:  float64(g.cfg.Grid.Width),
		Height: float64(g.cfg.Grid.Height),
	}

	if g.food.X >= 0 {
		s.Add(engine.TileView{Col: g.food.X, Row: g.food.Y, Glyph: '*', Color: core.ColorBrightRed})
	}
	for i, seg := range g.snake {
		glyph, color := 'o', core.ColorGreen
		if i == 0 {
			glyph, color = 'O', core.ColorBrightGreen
		}
		s.Add(engine.TileView{Col: seg.X, Row: seg.Y, Glyph: glyph, Color: color})
	}

	s.HUD = []string{fmt.Sprintf("Snake  Score: %d  HI: %d  Length: %d",
		g.score, max(g.highScore, g.score), len(g.snake))}
	s.Overlay = engine.PhaseOverlay(g.machine.Phase(), g.Title(), g.score, g.highScore,
		"Arrows/WASD steer, P pause")
	return s
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.machine.Phase()
	return core.GameState{
		Score:     g.score,
		HighScore: max(g.highScore, g.score),
		InMenu:    phase == engine.Menu,
		GameOver:  phase == engine.GameOver,
		Paused:    phase == engine.Paused,
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
