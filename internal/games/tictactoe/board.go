package tictactoe

import "math/rand"

// Mark is the content of one square.
type Mark int

const (
	Empty Mark = iota
	X          // Player
	O          // CPU
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Board is a 3x3 grid in row-major order.
type Board [9]Mark

// lines lists the rows, columns and diagonals.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Winner returns the mark owning a full line, or Empty.
func (b *Board) Winner() Mark {
	for _, l := range lines {
		if m := b[l[0]]; m != Empty && m == b[l[1]] && m == b[l[2]] {
			return m
		}
	}
	return Empty
}

// Full reports whether no square is empty.
func (b *Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// WinningMove returns the first empty square that completes a line for m.
func (b *Board) WinningMove(m Mark) (int, bool) {
	for i := range b {
		if b[i] != Empty {
			continue
		}
		b[i] = m
		won := b.Winner() == m
		b[i] = Empty
		if won {
			return i, true
		}
	}
	return -1, false
}

// CPUMove picks the CPU's square: win if possible, else block the
// player, else any empty square at random.
func (b *Board) CPUMove(rng *rand.Rand) (int, bool) {
	if i, ok := b.WinningMove(O); ok {
		return i, true
	}
	if i, ok := b.WinningMove(X); ok {
		return i, true
	}
	var free []int
	for i, m := range b {
		if m == Empty {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return -1, false
	}
	return free[rng.Intn(len(free))], true
}
