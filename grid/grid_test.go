package grid_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// New and bounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects degenerate sizes and costs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		w, h, cost int
		err        error
	}{
		{"ZeroWidth", 0, 3, 1, grid.ErrInvalidSize},
		{"NegativeHeight", 3, -1, 1, grid.ErrInvalidSize},
		{"ZeroCost", 3, 3, 0, grid.ErrInvalidCost},
		{"NegativeCost", 3, 3, -4, grid.ErrInvalidCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.w, tc.h, tc.cost)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d,%d) error = %v; want %v", tc.w, tc.h, tc.cost, err, tc.err)
			}
			if g != nil {
				t.Errorf("New(%d,%d,%d) returned non-nil grid on error", tc.w, tc.h, tc.cost)
			}
		})
	}
}

// TestNew_Defaults checks dimensions, default cost and open cells.
func TestNew_Defaults(t *testing.T) {
	g, err := grid.New(4, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 12, g.CellCount())
	for i := 0; i < g.CellCount(); i++ {
		p := g.PosAt(i)
		assert.Equal(t, 2, g.Cost(p), "cost at %v", p)
		assert.True(t, g.IsWalkable(p), "walkable at %v", p)
		assert.False(t, g.IsBlocked(p), "blocked at %v", p)
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3, 2, 1)
	require.NoError(t, err)

	for _, p := range []grid.Pos{{0, 0}, {2, 1}, {1, 1}} {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	for _, p := range []grid.Pos{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
		if g.IsWalkable(p) || g.IsBlocked(p) {
			t.Errorf("out-of-bounds %v reported walkable or blocked", p)
		}
		if c := g.Cost(p); c != 0 {
			t.Errorf("Cost(%v)=%d; want 0", p, c)
		}
	}
}

// TestIndexRoundTrip verifies Index = y*W + x and PosAt inverts it.
func TestIndexRoundTrip(t *testing.T) {
	g, err := grid.New(5, 4, 1)
	require.NoError(t, err)

	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			p := grid.Pos{X: x, Y: y}
			idx := g.Index(p)
			assert.Equal(t, y*5+x, idx)
			assert.Equal(t, p, g.PosAt(idx))
		}
	}
}

//----------------------------------------------------------------------------//
// Mutator Tests
//----------------------------------------------------------------------------//

// TestSetBlockedAndCost covers clamping and silent out-of-bounds no-ops.
func TestSetBlockedAndCost(t *testing.T) {
	g, err := grid.New(3, 3, 1)
	require.NoError(t, err)
	before := g.String()

	g.SetBlocked(grid.Pos{X: 5, Y: 5}, true)
	g.SetCost(grid.Pos{X: -1, Y: 0}, 7)
	assert.Equal(t, before, g.String(), "out-of-bounds mutation changed the grid")

	g.SetBlocked(grid.Pos{X: 1, Y: 1}, true)
	assert.True(t, g.IsBlocked(grid.Pos{X: 1, Y: 1}))
	assert.False(t, g.IsWalkable(grid.Pos{X: 1, Y: 1}))
	g.SetBlocked(grid.Pos{X: 1, Y: 1}, false)
	assert.True(t, g.IsWalkable(grid.Pos{X: 1, Y: 1}))

	g.SetCost(grid.Pos{X: 2, Y: 0}, 0)
	assert.Equal(t, 1, g.Cost(grid.Pos{X: 2, Y: 0}), "cost must clamp to 1")
	g.SetCost(grid.Pos{X: 2, Y: 0}, -3)
	assert.Equal(t, 1, g.Cost(grid.Pos{X: 2, Y: 0}))
	g.SetCost(grid.Pos{X: 2, Y: 0}, 6)
	assert.Equal(t, 6, g.Cost(grid.Pos{X: 2, Y: 0}))
}

// TestClone ensures clones do not share state.
func TestClone(t *testing.T) {
	g, err := grid.Parse("..#", "3..")
	require.NoError(t, err)
	c := g.Clone()
	c.SetBlocked(grid.Pos{X: 0, Y: 0}, true)
	c.SetCost(grid.Pos{X: 1, Y: 1}, 9)

	assert.True(t, g.IsWalkable(grid.Pos{X: 0, Y: 0}))
	assert.Equal(t, 1, g.Cost(grid.Pos{X: 1, Y: 1}))
	assert.Equal(t, "..#\n3..\n", g.String())
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order checks the fixed right, left, down, up order.
func TestNeighbors_Order(t *testing.T) {
	g, err := grid.New(3, 3, 1)
	require.NoError(t, err)

	got := slices.Collect(g.Neighbors(grid.Pos{X: 1, Y: 1}))
	want := []grid.Pos{{2, 1}, {0, 1}, {1, 2}, {1, 0}}
	assert.Equal(t, want, got)
}

// TestNeighbors_Filtering checks that blocked and out-of-bounds cells are skipped.
func TestNeighbors_Filtering(t *testing.T) {
	g, err := grid.Parse(
		".#.",
		"...",
	)
	require.NoError(t, err)

	// corner: right is blocked, left/up out of bounds
	assert.Equal(t, []grid.Pos{{0, 1}}, slices.Collect(g.Neighbors(grid.Pos{X: 0, Y: 0})))
	// out-of-bounds source yields nothing
	assert.Empty(t, slices.Collect(g.Neighbors(grid.Pos{X: -1, Y: 0})))
	// blocked source still enumerates its walkable neighbours
	assert.Equal(t, []grid.Pos{{2, 0}, {0, 0}, {1, 1}}, slices.Collect(g.Neighbors(grid.Pos{X: 1, Y: 0})))
}

// TestNeighbors_EarlyStop ensures the sequence honours a consumer break.
func TestNeighbors_EarlyStop(t *testing.T) {
	g, err := grid.New(3, 3, 1)
	require.NoError(t, err)

	n := 0
	for range g.Neighbors(grid.Pos{X: 1, Y: 1}) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

//----------------------------------------------------------------------------//
// Parse / From2D / ParsePos Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse and From2D reject malformed input.
func TestParse_Errors(t *testing.T) {
	_, err := grid.Parse()
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.Parse("")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.Parse("..", ".")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
	_, err = grid.Parse(".x")
	assert.ErrorIs(t, err, grid.ErrBadGlyph)
	_, err = grid.From2D([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
	_, err = grid.From2D([][]int{{}})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// TestParse_RoundTrip checks glyph decoding and String encoding.
func TestParse_RoundTrip(t *testing.T) {
	rows := []string{
		".#5",
		"9..",
	}
	g, err := grid.Parse(rows...)
	require.NoError(t, err)

	assert.True(t, g.IsBlocked(grid.Pos{X: 1, Y: 0}))
	assert.Equal(t, 5, g.Cost(grid.Pos{X: 2, Y: 0}))
	assert.Equal(t, 9, g.Cost(grid.Pos{X: 0, Y: 1}))
	assert.Equal(t, ".#5\n9..\n", g.String())
}

// TestParsePos covers accepted and rejected coordinate strings.
func TestParsePos(t *testing.T) {
	for in, want := range map[string]grid.Pos{
		"1,2":      {1, 2},
		" (3, 4) ": {3, 4},
		"-1,0":     {-1, 0},
	} {
		got, err := grid.ParsePos(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "1", "a,2", "1,b"} {
		_, err := grid.ParsePos(in)
		assert.ErrorIs(t, err, grid.ErrBadPos, in)
	}
}

// TestPos_Helpers covers String and Adjacent.
func TestPos_Helpers(t *testing.T) {
	p := grid.Pos{X: 2, Y: 3}
	assert.Equal(t, "(2,3)", p.String())
	assert.True(t, p.Adjacent(grid.Pos{X: 2, Y: 4}))
	assert.True(t, p.Adjacent(grid.Pos{X: 1, Y: 3}))
	assert.False(t, p.Adjacent(p))
	assert.False(t, p.Adjacent(grid.Pos{X: 3, Y: 4}))
}
