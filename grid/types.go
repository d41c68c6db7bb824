// Package grid defines the coordinate type and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrInvalidSize indicates a non-positive width or height.
	ErrInvalidSize = errors.New("grid: width and height must be positive")
	// ErrInvalidCost indicates a default cell cost below 1.
	ErrInvalidCost = errors.New("grid: default cost must be >= 1")
	// ErrEmptyGrid indicates input rows are missing or empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadGlyph indicates an unknown character in a textual map.
	ErrBadGlyph = errors.New("grid: unknown map glyph")
	// ErrBadPos indicates a coordinate string that is not "x,y".
	ErrBadPos = errors.New("grid: position must look like x,y")
	// ErrNotWalkable indicates a cell that is blocked or out of bounds
	// where a walkable one is required.
	ErrNotWalkable = errors.New("grid: cell is not walkable")
)

// Glyphs understood by Parse and produced by String.
const (
	GlyphBlocked = '#'
	GlyphOpen    = '.'
)

// Pos is a cell coordinate. It is comparable and may be used as a map key.
// A Pos carries no validity of its own: use Grid.InBounds to check it.
type Pos struct {
	X, Y int
}

// String renders p as "(x,y)".
func (p Pos) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// Add returns p shifted by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Adjacent reports whether p and q differ by exactly one unit step
// on exactly one axis.
func (p Pos) Adjacent(q Pos) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx+dy*dy == 1
}

// ParsePos parses "x,y" (optionally wrapped in parentheses) into a Pos.
func ParsePos(s string) (Pos, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Pos{}, fmt.Errorf("%w: %q", ErrBadPos, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Pos{}, fmt.Errorf("%w: %q: %v", ErrBadPos, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Pos{}, fmt.Errorf("%w: %q: %v", ErrBadPos, s, err)
	}

	return Pos{X: x, Y: y}, nil
}

// neighborOffsets lists the 4-connected moves in traversal order:
// right, left, down, up.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
