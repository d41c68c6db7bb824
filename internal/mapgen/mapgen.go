// Package mapgen generates random grids from a seed.
package mapgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrParams is returned when generation parameters are out of range.
var ErrParams = errors.New("mapgen: invalid parameters")

// Params controls Generate.
type Params struct {
	Width, Height int
	Layout        Layout

	// Obstacles is the chance in [0,1] that a cell is blocked (Scatter).
	Obstacles float64

	// Loops is the chance in [0,1] that a wall between two corridors is
	// removed (Maze).
	Loops float64

	// Weighted draws every open cell's cost uniformly from [MinCost, MaxCost];
	// otherwise every cell costs 1.
	Weighted         bool
	MinCost, MaxCost int

	Seed int64

	// Keep lists cells that are never blocked and keep cost 1,
	// typically the start and goal.
	Keep []grid.Pos

	// Connect opens the fewest blocked cells needed to join Keep[0] and
	// Keep[1]. Opened cells cost 1.
	Connect bool
}

// Generate builds a grid from p. The same Params always yield the same grid.
//
// Scatter visits cells in row-major order: each cell not in Keep is blocked
// with probability Obstacles, otherwise it may get a random cost.
// Maze carves a perfect maze from (0,0) over even coordinates, braids it by
// Loops, then draws costs for open cells. Keep cells are opened last; a keep
// cell on a pillar (odd x and y) also opens its left neighbour, which always
// borders a room.
func Generate(p Params) (*grid.Grid, error) {
	if p.Obstacles < 0 || p.Obstacles > 1 {
		return nil, fmt.Errorf("%w: obstacle chance %.2f outside [0,1]", ErrParams, p.Obstacles)
	}
	if p.Loops < 0 || p.Loops > 1 {
		return nil, fmt.Errorf("%w: loop chance %.2f outside [0,1]", ErrParams, p.Loops)
	}
	if p.Weighted && (p.MinCost < 1 || p.MaxCost < p.MinCost) {
		return nil, fmt.Errorf("%w: cost range [%d,%d]", ErrParams, p.MinCost, p.MaxCost)
	}
	g, err := grid.New(p.Width, p.Height, 1)
	if err != nil {
		return nil, err
	}

	keep := make(map[grid.Pos]bool, len(p.Keep))
	for _, k := range p.Keep {
		keep[k] = true
	}

	rng := rand.New(rand.NewPCG(uint64(p.Seed), uint64(p.Seed)>>32|1))
	switch p.Layout {
	case Scatter:
		scatter(g, rng, p, keep)
	case Maze:
		maze(g, rng, p, keep)
	default:
		return nil, fmt.Errorf("%w: %v", ErrParams, p.Layout)
	}
	if p.Connect && len(p.Keep) >= 2 {
		if err := connect(g, p.Keep[0], p.Keep[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// connect opens the cells grid.Bridge picks between a and b.
func connect(g *grid.Grid, a, b grid.Pos) error {
	cells, err := g.Bridge(a, b)
	if err != nil {
		return fmt.Errorf("%w: connect: %w", ErrParams, err)
	}
	for _, p := range cells {
		g.SetBlocked(p, false)
	}
	return nil
}

// scatter blocks or prices every cell not in keep.
func scatter(g *grid.Grid, rng *rand.Rand, p Params, keep map[grid.Pos]bool) {
	span := p.MaxCost - p.MinCost + 1
	for i := 0; i < g.CellCount(); i++ {
		pos := g.PosAt(i)
		if keep[pos] {
			continue
		}
		switch {
		case rng.Float64() < p.Obstacles:
			g.SetBlocked(pos, true)
		case p.Weighted:
			g.SetCost(pos, p.MinCost+rng.IntN(span))
		}
	}
}

// maze carves corridors, prices them and opens the keep cells.
func maze(g *grid.Grid, rng *rand.Rand, p Params, keep map[grid.Pos]bool) {
	for i := 0; i < g.CellCount(); i++ {
		g.SetBlocked(g.PosAt(i), true)
	}
	carveMaze(g, rng)
	braid(g, rng, p.Loops)

	if p.Weighted {
		span := p.MaxCost - p.MinCost + 1
		for i := 0; i < g.CellCount(); i++ {
			pos := g.PosAt(i)
			if g.IsWalkable(pos) && !keep[pos] {
				g.SetCost(pos, p.MinCost+rng.IntN(span))
			}
		}
	}
	for pos := range keep {
		g.SetBlocked(pos, false)
		if pos.X%2 == 1 && pos.Y%2 == 1 {
			g.SetBlocked(pos.Add(-1, 0), false)
		}
	}
}

// Seed returns seed unchanged unless it is zero, in which case a
// time-derived non-zero seed is returned.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	s := time.Now().UnixNano() & 0x7fffffff
	if s == 0 {
		s = 1
	}
	return s
}
