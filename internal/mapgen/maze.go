package mapgen

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Layout selects how Generate places obstacles.
type Layout int

const (
	// Scatter blocks each cell independently with probability Obstacles.
	Scatter Layout = iota
	// Maze carves corridors with a randomized depth-first backtracker.
	Maze
)

var layoutNames = [...]string{Scatter: "scatter", Maze: "maze"}

// String returns the configuration spelling of l.
func (l Layout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return fmt.Sprintf("Layout(%d)", int(l))
	}
	return layoutNames[l]
}

// ParseLayout resolves "scatter" (or "") and "maze".
func ParseLayout(s string) (Layout, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return Scatter, nil
	}
	for i, name := range layoutNames {
		if key == name {
			return Layout(i), nil
		}
	}
	return Scatter, fmt.Errorf("%w: layout %q (want scatter or maze)", ErrParams, s)
}

// roomSteps are the moves between rooms: rooms sit on even coordinates and
// the odd cell between two rooms is the wall that gets carved.
var roomSteps = [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

// carveMaze turns a fully blocked g into a perfect maze rooted at (0,0).
//
// The walk keeps an explicit stack instead of recursing: peek the top room,
// pick a random unvisited room two cells away, open it and the wall between,
// push it; pop when no unvisited room is adjacent. Every room ends up
// connected to every other by exactly one corridor.
//
// Complexity: O(W×H) time and memory.
func carveMaze(g *grid.Grid, rng *rand.Rand) {
	visited := make([]bool, g.CellCount())
	open := func(p grid.Pos) {
		g.SetBlocked(p, false)
		visited[g.Index(p)] = true
	}

	root := grid.Pos{}
	open(root)
	stack := []grid.Pos{root}
	var candidates []grid.Pos
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range roomSteps {
			next := cur.Add(d[0], d[1])
			if g.InBounds(next) && !visited[g.Index(next)] {
				candidates = append(candidates, next)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.IntN(len(candidates))]
		open(grid.Pos{X: (cur.X + next.X) / 2, Y: (cur.Y + next.Y) / 2})
		open(next)
		stack = append(stack, next)
	}
}

// braid knocks out walls that separate two open cells in a straight line,
// each with probability chance, adding loops to a perfect maze.
func braid(g *grid.Grid, rng *rand.Rand, chance float64) {
	if chance <= 0 {
		return
	}
	for i := 0; i < g.CellCount(); i++ {
		p := g.PosAt(i)
		if !g.IsBlocked(p) {
			continue
		}
		horizontal := g.IsWalkable(p.Add(-1, 0)) && g.IsWalkable(p.Add(1, 0))
		vertical := g.IsWalkable(p.Add(0, -1)) && g.IsWalkable(p.Add(0, 1))
		if (horizontal || vertical) && rng.Float64() < chance {
			g.SetBlocked(p, false)
		}
	}
}
