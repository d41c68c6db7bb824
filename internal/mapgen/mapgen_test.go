package mapgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/mapgen"
)

func TestGenerate_Deterministic(t *testing.T) {
	p := mapgen.Params{Width: 20, Height: 12, Obstacles: 0.3, Weighted: true, MinCost: 1, MaxCost: 9, Seed: 99}
	a, err := mapgen.Generate(p)
	require.NoError(t, err)
	b, err := mapgen.Generate(p)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	p.Seed = 100
	c, err := mapgen.Generate(p)
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String(), "different seeds should give different maps")
}

func TestGenerate_KeepCellsStayOpen(t *testing.T) {
	start, goal := grid.Pos{X: 1, Y: 1}, grid.Pos{X: 6, Y: 3}
	g, err := mapgen.Generate(mapgen.Params{
		Width: 8, Height: 5, Obstacles: 1, Seed: 5,
		Keep: []grid.Pos{start, goal},
	})
	require.NoError(t, err)

	for i := 0; i < g.CellCount(); i++ {
		p := g.PosAt(i)
		if p == start || p == goal {
			assert.True(t, g.IsWalkable(p), "%v must stay open", p)
			assert.Equal(t, 1, g.Cost(p))
			continue
		}
		assert.True(t, g.IsBlocked(p), "%v should be blocked at chance 1", p)
	}
}

func TestGenerate_CostRange(t *testing.T) {
	g, err := mapgen.Generate(mapgen.Params{
		Width: 30, Height: 30, Obstacles: 0.1, Weighted: true, MinCost: 3, MaxCost: 6, Seed: 1,
	})
	require.NoError(t, err)

	seen := map[int]bool{}
	for i := 0; i < g.CellCount(); i++ {
		p := g.PosAt(i)
		if g.IsBlocked(p) {
			continue
		}
		c := g.Cost(p)
		assert.GreaterOrEqual(t, c, 3)
		assert.LessOrEqual(t, c, 6)
		seen[c] = true
	}
	assert.Len(t, seen, 4, "every cost in range should occur on 900 cells")
}

func TestGenerate_Unweighted(t *testing.T) {
	g, err := mapgen.Generate(mapgen.Params{Width: 10, Height: 10, Seed: 3})
	require.NoError(t, err)
	for i := 0; i < g.CellCount(); i++ {
		p := g.PosAt(i)
		require.True(t, g.IsWalkable(p))
		require.Equal(t, 1, g.Cost(p))
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := mapgen.Generate(mapgen.Params{Width: 0, Height: 3})
	assert.ErrorIs(t, err, grid.ErrInvalidSize)

	_, err = mapgen.Generate(mapgen.Params{Width: 3, Height: 3, Obstacles: -0.1})
	assert.ErrorIs(t, err, mapgen.ErrParams)

	_, err = mapgen.Generate(mapgen.Params{Width: 3, Height: 3, Weighted: true, MinCost: 5, MaxCost: 2})
	assert.ErrorIs(t, err, mapgen.ErrParams)
}

func TestSeed(t *testing.T) {
	assert.Equal(t, int64(42), mapgen.Seed(42))
	assert.NotZero(t, mapgen.Seed(0))
}

// TestGenerate_Connect: dense scatter maps split start from goal; Connect
// joins them by opening exactly the cells grid.Bridge picks on the
// unconnected twin.
func TestGenerate_Connect(t *testing.T) {
	start, goal := grid.Pos{X: 0, Y: 0}, grid.Pos{X: 14, Y: 14}
	bridged := 0
	for seed := int64(1); seed <= 20; seed++ {
		p := mapgen.Params{
			Width: 15, Height: 15, Obstacles: 0.6, Seed: seed,
			Weighted: true, MinCost: 1, MaxCost: 9,
			Keep: []grid.Pos{start, goal},
		}
		plain, err := mapgen.Generate(p)
		require.NoError(t, err)
		p.Connect = true
		joined, err := mapgen.Generate(p)
		require.NoError(t, err)

		assert.True(t, joined.Connected(start, goal), "seed %d", seed)

		cells, err := plain.Bridge(start, goal)
		require.NoError(t, err)
		if len(cells) > 0 {
			bridged++
		}
		for _, c := range cells {
			plain.SetBlocked(c, false)
		}
		assert.Equal(t, plain.String(), joined.String(), "seed %d", seed)
	}
	assert.Positive(t, bridged, "60% obstacles should split at least one map")
}

func TestGenerate_ConnectNeedsKeepInBounds(t *testing.T) {
	_, err := mapgen.Generate(mapgen.Params{
		Width: 4, Height: 4, Connect: true,
		Keep: []grid.Pos{{X: 0, Y: 0}, {X: 9, Y: 9}},
	})
	require.ErrorIs(t, err, mapgen.ErrParams)
	assert.ErrorIs(t, err, grid.ErrNotWalkable)
}
