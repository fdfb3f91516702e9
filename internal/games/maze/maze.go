package maze

import "math/rand"

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Grid is a rectangular maze. True cells are walls.
type Grid struct {
	W, H  int
	walls []bool
}

func newGrid(w, h int) *Grid {
	g := &Grid{W: w, H: h, walls: make([]bool, w*h)}
	for i := range g.walls {
		g.walls[i] = true
	}
	return g
}

// Wall reports whether c is a wall. Cells outside the grid are walls.
func (g *Grid) Wall(c Cell) bool {
	if c.X < 0 || c.Y < 0 || c.X >= g.W || c.Y >= g.H {
		return true
	}
	return g.walls[c.Y*g.W+c.X]
}

func (g *Grid) open(c Cell) {
	g.walls[c.Y*g.W+c.X] = false
}

// odd rounds n up to an odd number of at least 5.
func odd(n int) int {
	n = max(n, 5)
	if n%2 == 0 {
		n++
	}
	return n
}

var carveDirs = []Cell{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}

// Generate carves a perfect maze by depth-first backtracking from (1,1),
// then knocks out a share of the remaining inner walls to create loops.
// Start (1,1) and exit (w-2,h-2) are always open.
func Generate(w, h int, extra float64, rng *rand.Rand) *Grid {
	w, h = odd(w), odd(h)
	g := newGrid(w, h)

	start := Cell{1, 1}
	g.open(start)
	stack := []Cell{start}
	dirs := make([]Cell, len(carveDirs))
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		copy(dirs, carveDirs)
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

		advanced := false
		for _, d := range dirs {
			next := Cell{cur.X + d.X, cur.Y + d.Y}
			if next.X <= 0 || next.Y <= 0 || next.X >= w-1 || next.Y >= h-1 || !g.Wall(next) {
				continue
			}
			g.open(Cell{cur.X + d.X/2, cur.Y + d.Y/2})
			g.open(next)
			stack = append(stack, next)
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	if extra > 0 {
		for y := 1; y < h-1; y++ {
			for x := 1; x < w-1; x++ {
				c := Cell{x, y}
				if g.Wall(c) && separates(g, c) && rng.Float64() < extra {
					g.open(c)
				}
			}
		}
	}

	g.open(Cell{w - 2, h - 2})
	return g
}

// separates reports whether a wall sits between two open cells in a line.
func separates(g *Grid, c Cell) bool {
	horizontal := !g.Wall(Cell{c.X - 1, c.Y}) && !g.Wall(Cell{c.X + 1, c.Y})
	vertical := !g.Wall(Cell{c.X, c.Y - 1}) && !g.Wall(Cell{c.X, c.Y + 1})
	return horizontal != vertical
}

// Reachable reports whether to can be reached from from through open cells.
func (g *Grid) Reachable(from, to Cell) bool {
	if g.Wall(from) || g.Wall(to) {
		return false
	}
	seen := make([]bool, len(g.walls))
	queue := []Cell{from}
	seen[from.Y*g.W+from.X] = true
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == to {
			return true
		}
		for _, d := range []Cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			n := Cell{c.X + d.X, c.Y + d.Y}
			if g.Wall(n) || seen[n.Y*g.W+n.X] {
				continue
			}
			seen[n.Y*g.W+n.X] = true
			queue = append(queue, n)
		}
	}
	return false
}
