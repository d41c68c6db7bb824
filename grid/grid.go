// Package grid provides a blocked/weighted rectangular grid that search
// algorithms treat as an implicit 4-connected graph.
package grid

import (
	"fmt"
	"iter"
	"slices"
)

// Grid is a W×H cell space. Each cell has a blocked flag and a cost ≥ 1.
// Grid is not safe for concurrent mutation; concurrent readers are fine
// as long as nobody calls SetBlocked or SetCost meanwhile.
type Grid struct {
	width, height int
	blocked       []bool
	cost          []int
}

// New constructs an open grid whose cells all cost defaultCost.
// Returns ErrInvalidSize if width ≤ 0 or height ≤ 0,
// ErrInvalidCost if defaultCost < 1.
// Complexity: O(W×H) time and memory.
func New(width, height, defaultCost int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidSize, width, height)
	}
	if defaultCost < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCost, defaultCost)
	}
	n := width * height
	cost := make([]int, n)
	for i := range cost {
		cost[i] = defaultCost
	}

	return &Grid{
		width:   width,
		height:  height,
		blocked: make([]bool, n),
		cost:    cost,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// CellCount returns Width×Height.
func (g *Grid) CellCount() int { return len(g.blocked) }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Index maps p to its row-major index: p.Y*Width + p.X.
// The result is meaningless for out-of-bounds positions.
func (g *Grid) Index(p Pos) int {
	return p.Y*g.width + p.X
}

// PosAt converts a row-major index back to a Pos.
func (g *Grid) PosAt(idx int) Pos {
	return Pos{X: idx % g.width, Y: idx / g.width}
}

// IsBlocked reports whether p is in bounds and marked as an obstacle.
func (g *Grid) IsBlocked(p Pos) bool {
	return g.InBounds(p) && g.blocked[g.Index(p)]
}

// IsWalkable reports whether p is in bounds and not blocked.
func (g *Grid) IsWalkable(p Pos) bool {
	return g.InBounds(p) && !g.blocked[g.Index(p)]
}

// Cost returns the cost of entering p, or 0 when p is out of bounds.
func (g *Grid) Cost(p Pos) int {
	if !g.InBounds(p) {
		return 0
	}
	return g.cost[g.Index(p)]
}

// SetBlocked marks or clears the obstacle flag of p.
// Out-of-bounds positions are ignored.
func (g *Grid) SetBlocked(p Pos, blocked bool) {
	if !g.InBounds(p) {
		return
	}
	g.blocked[g.Index(p)] = blocked
}

// SetCost sets the cost of entering p, clamped to at least 1.
// Out-of-bounds positions are ignored.
func (g *Grid) SetCost(p Pos, cost int) {
	if !g.InBounds(p) {
		return
	}
	g.cost[g.Index(p)] = max(1, cost)
}

// Neighbors yields the walkable cells adjacent to p in the fixed order
// right, left, down, up. Blocked and out-of-bounds cells are never yielded.
// Nothing is yielded when p itself is out of bounds.
func (g *Grid) Neighbors(p Pos) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		if !g.InBounds(p) {
			return
		}
		for _, d := range neighborOffsets {
			next := p.Add(d[0], d[1])
			if !g.IsWalkable(next) {
				continue
			}
			if !yield(next) {
				return
			}
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:   g.width,
		height:  g.height,
		blocked: slices.Clone(g.blocked),
		cost:    slices.Clone(g.cost),
	}
}

// String renders the grid with Parse's glyphs: '#' blocked, '.' cost 1,
// '1'..'9' for higher costs ('9' also stands for anything above 9).
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			buf = append(buf, g.glyph(Pos{X: x, Y: y}))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// glyph returns the map character for an in-bounds cell.
func (g *Grid) glyph(p Pos) byte {
	i := g.Index(p)
	switch c := g.cost[i]; {
	case g.blocked[i]:
		return GlyphBlocked
	case c == 1:
		return GlyphOpen
	case c > 9:
		return '9'
	default:
		return byte('0' + c)
	}
}
