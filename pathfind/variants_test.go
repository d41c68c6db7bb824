package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// TestGreedy_KeepsFirstDiscovery: greedy commits to the cell the heuristic
// pulled it to and never revisits a cheaper route.
func TestGreedy_KeepsFirstDiscovery(t *testing.T) {
	g := mustParse(t,
		".9.",
		"...",
	)
	start, goal := grid.Pos{0, 0}, grid.Pos{2, 0}

	res, err := pathfind.Solve(pathfind.GreedyBestFirst, g, start, goal)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, []grid.Pos{{0, 0}, {1, 0}, {2, 0}}, res.Path)
	assert.Equal(t, 10, res.Cost)
	assert.Equal(t, 3, res.VisitedCount)

	best, err := pathfind.Solve(pathfind.Dijkstra, g, start, goal)
	require.NoError(t, err)
	assert.Equal(t, 4, best.Cost)
}

// TestDirectional_TiesFavourX: equal remaining distances move along x first.
func TestDirectional_TiesFavourX(t *testing.T) {
	g := mustOpen(t, 3, 3)
	pf, err := pathfind.New(pathfind.DirectionalGreedy)
	require.NoError(t, err)

	res, err := pf.FindPath(g, grid.Pos{0, 0}, grid.Pos{2, 2})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, []grid.Pos{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}}, res.Path)
	assert.Equal(t, 4, res.Cost)
	assert.Equal(t, 5, res.VisitedCount)

	steps := collect(t, pf, g, grid.Pos{0, 0}, grid.Pos{2, 2})
	assert.Len(t, steps, 6) // start, four moves, terminal
}

// TestDirectional_NoDetour: a wall ends the walk even when a way around exists.
func TestDirectional_NoDetour(t *testing.T) {
	g := mustParse(t,
		"..#..",
		".....",
	)
	start, goal := grid.Pos{0, 0}, grid.Pos{4, 0}

	res, err := pathfind.Solve(pathfind.DirectionalGreedy, g, start, goal)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 2, res.VisitedCount)
	assert.True(t, res.Visited[g.Index(grid.Pos{1, 0})])

	bfs, err := pathfind.Solve(pathfind.BFS, g, start, goal)
	require.NoError(t, err)
	assert.True(t, bfs.Success)
	assert.Equal(t, 6, bfs.Cost)
}

// TestWallFollower_Backtracks: the walker wanders into a dead end, retreats
// to the start and leaves by another side.
func TestWallFollower_Backtracks(t *testing.T) {
	g := mustParse(t,
		"...",
		".#.",
		".#.",
	)
	start, goal := grid.Pos{1, 0}, grid.Pos{2, 2}
	pf, err := pathfind.New(pathfind.WallFollower)
	require.NoError(t, err)

	res, err := pf.FindPath(g, start, goal)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, []grid.Pos{{1, 0}, {2, 0}, {2, 1}, {2, 2}}, res.Path)
	assert.Equal(t, 3, res.Cost)
	assert.Equal(t, 7, res.VisitedCount) // every walkable cell

	steps := collect(t, pf, g, start, goal)
	require.Len(t, steps, 11) // start, 3 in, 3 back, 3 out, terminal
	backtracked := []grid.Pos{steps[4].Current, steps[5].Current, steps[6].Current}
	assert.Equal(t, []grid.Pos{{0, 1}, {0, 0}, {1, 0}}, backtracked)
}

// TestWallFollower_GivesUpAtStart: with every exit explored the walker
// ends where it began.
func TestWallFollower_GivesUpAtStart(t *testing.T) {
	g := mustParse(t, "..#.")
	pf, err := pathfind.New(pathfind.WallFollower)
	require.NoError(t, err)

	steps := collect(t, pf, g, grid.Pos{0, 0}, grid.Pos{3, 0})
	require.Len(t, steps, 4) // start, move, backtrack, terminal
	last := steps[len(steps)-1]
	assert.True(t, last.Complete)
	assert.False(t, last.Found)
	assert.Equal(t, grid.Pos{0, 0}, last.Current)
	assert.Equal(t, 2, last.VisitedCount)
}

// TestWalkVariants_PrevOnlyOnSuccess: failed walks leave no predecessor links.
func TestWalkVariants_PrevOnlyOnSuccess(t *testing.T) {
	g := mustParse(t, "..#.")
	for _, alg := range []pathfind.Algorithm{pathfind.DirectionalGreedy, pathfind.WallFollower} {
		pf, err := pathfind.New(alg)
		require.NoError(t, err)
		last, _, ok := pathfind.Drain(mustStream(t, pf, g, grid.Pos{0, 0}, grid.Pos{3, 0}))
		require.True(t, ok)
		for i, p := range last.Prev {
			assert.Equal(t, -1, p, "%s: cell %d has a predecessor", alg, i)
		}
	}
}

// TestBFS_FewestSteps: BFS path length never exceeds a cost-aware one.
func TestBFS_FewestSteps(t *testing.T) {
	g := mustParse(t,
		"....1",
		".###.",
		"..9..",
	)
	start, goal := grid.Pos{0, 0}, grid.Pos{4, 2}
	bfs, err := pathfind.Solve(pathfind.BFS, g, start, goal)
	require.NoError(t, err)
	dij, err := pathfind.Solve(pathfind.Dijkstra, g, start, goal)
	require.NoError(t, err)

	require.True(t, bfs.Success)
	require.True(t, dij.Success)
	assert.Equal(t, 6, bfs.Cost)
	assert.LessOrEqual(t, bfs.PathLength(), dij.PathLength())
	assert.LessOrEqual(t, dij.Cost, pathfind.PathCost(g, bfs.Path))
}
