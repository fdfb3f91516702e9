package tictactoe

import (
	"testing"

	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
)

func newPlaying(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, TickRate: 60})
	g.Step(core.InputOf(core.ActionConfirm))
	g.Step(core.NewInputFrame())
	if g.machine.Phase() != engine.Playing {
		t.Fatalf("phase = %v, want playing", g.machine.Phase())
	}
	return g
}

// tap presses and releases an action.
func tap(g *Game, a core.Action) core.StepResult {
	res := g.Step(core.InputOf(a))
	g.Step(core.NewInputFrame())
	return res
}

func TestCursorMovesOncePerPress(t *testing.T) {
	g := newPlaying(t)
	if g.cursor != 4 {
		t.Fatalf("cursor = %d, want center", g.cursor)
	}

	right := core.InputOf(core.ActionRight)
	g.Step(right)
	g.Step(right)
	g.Step(right)
	if g.cursor != 5 {
		t.Errorf("held key moved cursor to %d, want 5", g.cursor)
	}

	g.Step(core.NewInputFrame())
	g.Step(right)
	if g.cursor != 5 {
		t.Errorf("cursor should stop at the edge, got %d", g.cursor)
	}

	tap(g, core.ActionUp)
	tap(g, core.ActionUp)
	if g.cursor != 2 {
		t.Errorf("cursor = %d, want 2", g.cursor)
	}
}

func TestCPURespondsAfterDelay(t *testing.T) {
	g := newPlaying(t)
	res := tap(g, core.ActionConfirm)
	if g.board[4] != X || g.turn != O {
		t.Fatalf("board = %v turn = %v", g.board, g.turn)
	}
	if len(res.Events) == 0 || res.Events[0] != core.EventPickup {
		t.Errorf("events = %v, want pickup", res.Events)
	}

	// tap already spent one frame of the delay.
	for i := 1; i < cpuDelay-1; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.turn != O {
		t.Fatal("CPU moved before its delay")
	}
	g.Step(core.NewInputFrame())
	if g.turn != X {
		t.Fatal("CPU should have moved")
	}

	var marks int
	for _, m := range g.board {
		if m != Empty {
			marks++
		}
	}
	if marks != 2 {
		t.Errorf("board has %d marks, want 2", marks)
	}
}

func TestOccupiedSquareIgnored(t *testing.T) {
	g := newPlaying(t)
	g.board[4] = O
	tap(g, core.ActionConfirm)
	if g.board[4] != O || g.turn != X {
		t.Error("placing on an occupied square should do nothing")
	}
}

func TestPlayerWinCounts(t *testing.T) {
	g := newPlaying(t)
	g.board = board("XX.OO....")
	g.cursor = 2

	res := tap(g, core.ActionConfirm)
	if !res.State.GameOver || g.winner != X {
		t.Fatalf("expected a player win, state = %+v", res.State)
	}
	if res.State.Score != 1 || g.playerWins != 1 || g.cpuWins != 0 {
		t.Errorf("tally = %d/%d, score %d", g.playerWins, g.cpuWins, res.State.Score)
	}

	tap(g, core.ActionConfirm)
	if g.machine.Phase() != engine.Playing || g.board != (Board{}) {
		t.Error("confirm should start a fresh round")
	}
	if g.playerWins != 1 {
		t.Error("tally should survive rounds")
	}
}

func TestCPUWin(t *testing.T) {
	g := newPlaying(t)
	g.board = board("X..OO.X..")
	g.turn = O
	g.cpuWait = 0

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || g.winner != O || g.cpuWins != 1 {
		t.Fatalf("expected a CPU win, board = %v", g.board)
	}
	if res.State.Score != 0 {
		t.Errorf("score = %d, want 0", res.State.Score)
	}
}

func TestTie(t *testing.T) {
	g := newPlaying(t)
	g.board = board("XOXXOOOX.")
	g.cursor = 8

	res := tap(g, core.ActionConfirm)
	if !res.State.GameOver || g.winner != Empty || g.ties != 1 {
		t.Errorf("expected a tie, winner=%v ties=%d", g.winner, g.ties)
	}
}

func TestSceneShowsMarks(t *testing.T) {
	g := newPlaying(t)
	g.board = board("X.......O")

	var xs, oes int
	for _, e := range g.Scene().Entities {
		tv, ok := e.(engine.TileView)
		if !ok {
			continue
		}
		switch tv.Glyph {
		case 'X':
			xs++
			if tv.Col != 0 || tv.Row != 0 {
				t.Errorf("X drawn at %d,%d", tv.Col, tv.Row)
			}
		case 'O':
			oes++
			if tv.Col != 4 || tv.Row != 4 {
				t.Errorf("O drawn at %d,%d", tv.Col, tv.Row)
			}
		}
	}
	if xs != 1 || oes != 1 {
		t.Errorf("scene has %d X and %d O", xs, oes)
	}
}
