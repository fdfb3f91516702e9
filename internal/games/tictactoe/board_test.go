package tictactoe

import (
	"math/rand"
	"testing"
)

func board(s string) Board {
	var b Board
	for i, r := range s {
		switch r {
		case 'X':
			b[i] = X
		case 'O':
			b[i] = O
		}
	}
	return b
}

func TestWinner(t *testing.T) {
	tests := []struct {
		board string
		want  Mark
	}{
		{"XXX......", X},
		{"...OOO...", O},
		{"X..X..X..", X},
		{"..O.O.O..", O},
		{"X...X...X", X},
		{"XOXOXOOXO", Empty},
		{".........", Empty},
	}

	for _, tt := range tests {
		b := board(tt.board)
		if got := b.Winner(); got != tt.want {
			t.Errorf("Winner(%q) = %v, want %v", tt.board, got, tt.want)
		}
	}
}

func TestCPUPrefersWinOverBlock(t *testing.T) {
	// O can win at 5; X threatens at 2.
	b := board("XX.OO....")
	i, ok := b.CPUMove(rand.New(rand.NewSource(1)))
	if !ok || i != 5 {
		t.Errorf("CPUMove = %d, want winning square 5", i)
	}
}

func TestCPUBlocks(t *testing.T) {
	b := board("XX..O....")
	i, ok := b.CPUMove(rand.New(rand.NewSource(1)))
	if !ok || i != 2 {
		t.Errorf("CPUMove = %d, want block at 2", i)
	}
}

func TestCPURandomMoveIsFree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 50; n++ {
		b := board("X...O....")
		i, ok := b.CPUMove(rng)
		if !ok || b[i] != Empty {
			t.Fatalf("CPUMove = %d on occupied or invalid square", i)
		}
	}
}

func TestCPUOnFullBoard(t *testing.T) {
	b := board("XOXOXOOXO")
	if _, ok := b.CPUMove(rand.New(rand.NewSource(1))); ok {
		t.Error("no move should exist on a full board")
	}
	if !b.Full() {
		t.Error("board should be full")
	}
}
