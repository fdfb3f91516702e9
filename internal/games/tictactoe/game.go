// Package tictactoe implements Tic-Tac-Toe against a simple CPU that takes
// a win, blocks a loss, or plays at random.
package tictactoe

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
	"github.com/vovakirdan/arcade-collection/internal/registry"
)

// cpuDelay is how long the CPU "thinks", in frames.
const cpuDelay = 30

// Game implements the Tic-Tac-Toe game logic.
type Game struct {
	runtime core.RuntimeConfig
	rng     *rand.Rand
	machine *engine.Machine

	board   Board
	cursor  int
	turn    Mark
	cpuWait float64
	winner  Mark // Empty after a tie
	prev    core.InputFrame

	playerWins int
	cpuWins    int
	ties       int
	highScore  int
}

// New creates a new Tic-Tac-Toe game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tictactoe"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Description returns the launcher blurb.
func (g *Game) Description() string {
	return "Three in a row against the CPU"
}

// Reset clears the tally and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.highScore = runtime.HighScore
	g.playerWins, g.cpuWins, g.ties = 0, 0, 0
	g.prev = core.InputFrame{}
	g.newRound()
	g.machine = engine.NewMachine(engine.Menu)
}

// newRound clears the board; the player always opens.
func (g *Game) newRound() {
	g.board = Board{}
	g.cursor = 4
	g.turn = X
	g.cpuWait = 0
	g.winner = Empty
}

// pressed reports actions that went down this tick.
func (g *Game) pressed(in core.InputFrame, a core.Action) bool {
	return in.Has(a) && !g.prev.Has(a)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	defer func() { g.prev = in.Clone() }()

	switch g.machine.Phase() {
	case engine.Menu:
		if g.pressed(in, core.ActionConfirm) || g.pressed(in, core.ActionJump) {
			g.machine.Start()
		}
		return core.StepResult{State: g.State()}
	case engine.Paused:
		if g.pressed(in, core.ActionPause) {
			g.machine.TogglePause()
		}
		return core.StepResult{State: g.State()}
	case engine.GameOver:
		if g.pressed(in, core.ActionConfirm) || g.pressed(in, core.ActionRestart) || g.pressed(in, core.ActionJump) {
			g.newRound()
			g.machine.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	if g.pressed(in, core.ActionPause) {
		g.machine.TogglePause()
		return core.StepResult{State: g.State()}
	}

	if g.turn == O {
		g.cpuWait -= engine.Frames(g.runtime.DeltaSeconds())
		if g.cpuWait > 0 {
			return core.StepResult{State: g.State()}
		}
		if i, ok := g.board.CPUMove(g.rng); ok {
			return g.place(i, O)
		}
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)
	if (g.pressed(in, core.ActionConfirm) || g.pressed(in, core.ActionJump)) && g.board[g.cursor] == Empty {
		return g.place(g.cursor, X)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor/3, g.cursor%3
	switch {
	case g.pressed(in, core.ActionUp):
		row = max(row-1, 0)
	case g.pressed(in, core.ActionDown):
		row = min(row+1, 2)
	case g.pressed(in, core.ActionLeft):
		col = max(col-1, 0)
	case g.pressed(in, core.ActionRight):
		col = min(col+1, 2)
	}
	g.cursor = row*3 + col
}

// place puts m on square i and settles the round if it is over.
func (g *Game) place(i int, m Mark) core.StepResult {
	g.board[i] = m
	events := []core.Event{core.EventPickup}

	switch {
	case g.board.Winner() == m:
		g.winner = m
		if m == X {
			g.playerWins++
			g.highScore = max(g.highScore, g.playerWins)
			events = append(events, core.EventPoint)
		} else {
			g.cpuWins++
			events = append(events, core.EventCrash)
		}
		g.machine.End()
	case g.board.Full():
		g.ties++
		g.machine.End()
	case m == X:
		g.turn = O
		g.cpuWait = cpuDelay
	default:
		g.turn = X
	}
	return core.StepResult{State: g.State(), Events: events}
}

// Scene draws the board on a 5x5 tile grid: marks on even tiles, rules
// on odd ones.
func (g *Game) Scene() engine.Scene {
	s := engine.Scene{Width: 5, Height: 5}

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			switch {
			case r%2 == 1 && c%2 == 1:
				s.Add(engine.TileView{Col: c, Row: r, Glyph: '┼', Color: core.ColorGray})
			case r%2 == 1:
				s.Add(engine.TileView{Col: c, Row: r, Glyph: '─', Color: core.ColorGray})
			case c%2 == 1:
				s.Add(engine.TileView{Col: c, Row: r, Glyph: '│', Color: core.ColorGray})
			}
		}
	}

	playing := g.machine.Phase() == engine.Playing && g.turn == X
	for i, m := range g.board {
		col, row := (i%3)*2, (i/3)*2
		glyph, color := ' ', core.ColorDefault
		switch m {
		case X:
			glyph, color = 'X', core.ColorBrightRed
		case O:
			glyph, color = 'O', core.ColorBrightBlue
		}
		if playing && i == g.cursor {
			if m == Empty {
				glyph = '·'
			}
			color = core.ColorBrightYellow
		}
		if glyph != ' ' {
			s.Add(engine.TileView{Col: col, Row: row, Glyph: glyph, Color: color})
		}
	}

	turn := "Your move"
	if g.turn == O {
		turn = "CPU thinking..."
	}
	s.HUD = []string{fmt.Sprintf("You (X): %d  CPU (O): %d  Ties: %d  %s",
		g.playerWins, g.cpuWins, g.ties, turn)}

	switch g.machine.Phase() {
	case engine.GameOver:
		verdict := "It's a tie!"
		switch g.winner {
		case X:
			verdict = "You win!"
		case O:
			verdict = "CPU wins"
		}
		s.Overlay = []string{verdict, "", "Enter for the next round, B for menu"}
	default:
		s.Overlay = engine.PhaseOverlay(g.machine.Phase(), g.Title(), g.playerWins, g.highScore,
			"Arrows move, Enter/Space place")
	}
	return s
}

// State returns the current game state. The score is the player's wins.
func (g *Game) State() core.GameState {
	phase := g.machine.Phase()
	return core.GameState{
		Score:     g.playerWins,
		HighScore: max(g.highScore, g.playerWins),
		InMenu:    phase == engine.Menu,
		GameOver:  phase == engine.GameOver,
		Paused:    phase == engine.Paused,
	}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
}
