package pathfind_test

import (
	"iter"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// mustParse builds a grid from text rows or fails the test.
func mustParse(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(rows...)
	require.NoError(t, err)
	return g
}

// mustOpen builds a w×h grid of unit cost.
func mustOpen(t testing.TB, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h, 1)
	require.NoError(t, err)
	return g
}

// requireValidPath asserts path runs start..goal through walkable,
// 4-adjacent, pairwise distinct cells.
func requireValidPath(t testing.TB, g *grid.Grid, start, goal grid.Pos, path []grid.Pos) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0], "path must begin at start")
	require.Equal(t, goal, path[len(path)-1], "path must end at goal")
	seen := make(map[grid.Pos]bool, len(path))
	for i, p := range path {
		require.True(t, g.IsWalkable(p), "cell %v on path is not walkable", p)
		require.False(t, seen[p], "cell %v repeated on path", p)
		seen[p] = true
		if i > 0 {
			require.True(t, path[i-1].Adjacent(p), "cells %v and %v are not adjacent", path[i-1], p)
		}
	}
}

// collect drains a step stream into a slice.
func collect(t testing.TB, pf pathfind.Pathfinder, g *grid.Grid, start, goal grid.Pos, opts ...pathfind.Option) []pathfind.Step {
	t.Helper()
	seq, err := pf.Steps(g, start, goal, opts...)
	require.NoError(t, err)
	var steps []pathfind.Step
	for st := range seq {
		steps = append(steps, st)
	}
	return steps
}

// mustStream returns the step stream of pf or fails the test.
func mustStream(t testing.TB, pf pathfind.Pathfinder, g *grid.Grid, start, goal grid.Pos) iter.Seq[pathfind.Step] {
	t.Helper()
	seq, err := pf.Steps(g, start, goal)
	require.NoError(t, err)
	return seq
}

// countTrue returns the number of set flags.
func countTrue(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

// scenario is a randomly generated query.
type scenario struct {
	g           *grid.Grid
	start, goal grid.Pos
}

// randomScenarios builds n weighted maps with ~25% obstacles and random
// walkable endpoints, deterministically from seed.
func randomScenarios(t testing.TB, seed int64, n int, weighted bool) []scenario {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	out := make([]scenario, 0, n)
	for len(out) < n {
		w, h := 4+rng.Intn(10), 4+rng.Intn(8)
		g := mustOpen(t, w, h)
		for i := 0; i < g.CellCount(); i++ {
			p := g.PosAt(i)
			switch {
			case rng.Float64() < 0.25:
				g.SetBlocked(p, true)
			case weighted:
				g.SetCost(p, 1+rng.Intn(5))
			}
		}
		start := grid.Pos{X: rng.Intn(w), Y: rng.Intn(h)}
		goal := grid.Pos{X: rng.Intn(w), Y: rng.Intn(h)}
		g.SetBlocked(start, false)
		g.SetBlocked(goal, false)
		out = append(out, scenario{g: g, start: start, goal: goal})
	}
	return out
}
