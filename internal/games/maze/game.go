// Package maze implements Maze Explorer: walk from the top-left corner to
// the exit of a generated maze, faster and in fewer steps for more points.
package maze

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-collection/internal/config"
	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
	"github.com/vovakirdan/arcade-collection/internal/registry"
)

// Key repeat for held directions, in frames.
const (
	repeatDelay = 12
	repeatRate  = 5
)

// Game implements the Maze Explorer game logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.MazeConfig
	rng     *rand.Rand
	runs    int64
	machine *engine.Machine

	grid    *Grid
	player  Cell
	exit    Cell
	level   int
	moves   int
	elapsed float64 // Seconds spent in the current maze
	held    Cell    // Direction held on the previous tick
	repeat  float64 // Frames until a held direction steps again
	score   int     // Sum over cleared mazes
	last    int     // Points from the most recent maze

	highScore int
}

// New creates a new Maze Explorer game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "maze"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Maze Explorer"
}

// Description returns the launcher blurb.
func (g *Game) Description() string {
	return "Find the exit before the clock eats your score"
}

// Reset loads configuration and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	cfg, err := config.LoadMaze(runtime.ConfigPath)
	if err != nil {
		cfg = config.DefaultMazeConfig()
	}
	cfg.Width, cfg.Height = odd(cfg.Width), odd(cfg.Height)
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.highScore = runtime.HighScore
	g.runs = 0
	g.score = 0
	g.level = 0
	g.nextMaze()
	g.machine = engine.NewMachine(engine.Menu)
}

// nextMaze generates a fresh maze and puts the player at the start.
func (g *Game) nextMaze() {
	g.level++
	g.grid = Generate(g.cfg.Width, g.cfg.Height, g.cfg.ExtraPaths, g.rng)
	g.player = Cell{1, 1}
	g.exit = Cell{g.grid.W - 2, g.grid.H - 2}
	g.moves = 0
	g.elapsed = 0
	g.last = 0
	g.held = Cell{}
}

// restart begins a new session from the first maze.
func (g *Game) restart() {
	g.runs++
	g.rng = rand.New(rand.NewSource(g.runtime.Seed + g.runs))
	g.score = 0
	g.level = 0
	g.nextMaze()
}

// cleared reports whether the player stands on the exit.
func (g *Game) cleared() bool {
	return g.player == g.exit
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.machine.Phase() {
	case engine.Menu:
		if in.Any(core.ActionConfirm, core.ActionJump) {
			g.machine.Start()
		}
		return core.StepResult{State: g.State()}
	case engine.Paused:
		if in.Has(core.ActionPause) {
			g.machine.TogglePause()
		}
		return core.StepResult{State: g.State()}
	case engine.GameOver:
		switch {
		case in.Has(core.ActionRestart):
			g.restart()
			g.machine.Restart()
		case in.Any(core.ActionConfirm, core.ActionJump):
			// Game over here means cleared: the next maze keeps the
			// running score. Only Restart zeroes it.
			g.nextMaze()
			g.machine.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.machine.TogglePause()
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.DeltaSeconds()
	g.elapsed += dt

	d, ok := g.direction(in, engine.Frames(dt))
	if !ok {
		return core.StepResult{State: g.State()}
	}

	next := Cell{g.player.X + d.X, g.player.Y + d.Y}
	if g.grid.Wall(next) {
		return core.StepResult{State: g.State()}
	}
	g.player = next
	g.moves++

	if !g.cleared() {
		return core.StepResult{State: g.State()}
	}
	g.last = g.mazeScore()
	g.score += g.last
	g.highScore = max(g.highScore, g.score)
	g.machine.End()
	return core.StepResult{State: g.State(), Events: []core.Event{core.EventPoint}}
}

// direction turns held keys into single steps: a new direction moves at
// once, holding it repeats after a short delay.
func (g *Game) direction(in core.InputFrame, frames float64) (Cell, bool) {
	var d Cell
	switch {
	case in.Has(core.ActionUp):
		d = Cell{0, -1}
	case in.Has(core.ActionDown):
		d = Cell{0, 1}
	case in.Has(core.ActionLeft):
		d = Cell{-1, 0}
	case in.Has(core.ActionRight):
		d = Cell{1, 0}
	}

	if d == (Cell{}) {
		g.held = d
		return d, false
	}
	if d != g.held {
		g.held = d
		g.repeat = repeatDelay
		return d, true
	}
	g.repeat -= frames
	if g.repeat > 0 {
		return d, false
	}
	g.repeat = repeatRate
	return d, true
}

// mazeScore is MaxScore less one point per tenth of a second and per move.
func (g *Game) mazeScore() int {
	return max(0, g.cfg.MaxScore-int(g.elapsed*10)-g.moves)
}

// Scene describes the maze with one world unit per cell.
func (g *Game) Scene() engine.Scene {
	s := engine.Scene{
		Width:  float64(g.grid.W),
		Height: float64(g.grid.H),
	}

	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			if g.grid.Wall(Cell{x, y}) {
				s.Add(engine.TileView{Col: x, Row: y, Glyph: '█', Color: core.ColorGreen})
			}
		}
	}
	s.Add(engine.TileView{Col: g.exit.X, Row: g.exit.Y, Glyph: 'E', Color: core.ColorBrightYellow})
	s.Add(engine.TileView{Col: g.player.X, Row: g.player.Y, Glyph: '@', Color: core.ColorBrightCyan})

	s.HUD = []string{fmt.Sprintf("Maze %d  Score: %d  HI: %d  Moves: %d  Time: %.1fs",
		g.level, g.score, max(g.highScore, g.score), g.moves, g.elapsed)}

	switch g.machine.Phase() {
	case engine.GameOver:
		s.Overlay = []string{
			"MAZE CLEARED", "",
			fmt.Sprintf("+%d points in %d moves", g.last, g.moves),
			fmt.Sprintf("Score: %d  Best: %d", g.score, max(g.highScore, g.score)),
			"Enter for the next maze, R to start over",
		}
	default:
		s.Overlay = engine.PhaseOverlay(g.machine.Phase(), g.Title(), g.score, g.highScore,
			"Arrows/WASD walk to the E")
	}
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

func init() {
	registry.Register("maze", func() registry.Game {
		return New()
	})
}
