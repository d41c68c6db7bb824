// Package pathfind searches a grid.Grid for a route between two cells with
// one of six interchangeable strategies.
//
// What:
//
//   - BFS: FIFO frontier, shortest by step count, ignores cell costs.
//   - Dijkstra: min-heap on cumulative cost, cost-optimal.
//   - AStar: min-heap on cost + heuristic, cost-optimal with an admissible heuristic.
//   - GreedyBestFirst: min-heap on heuristic only, never re-relaxes; fast, not optimal.
//   - DirectionalGreedy: walks straight at the goal, gives up at the first wall.
//   - WallFollower: facing-direction walk with backtracking, step-budgeted.
//
// Every variant implements Pathfinder:
//
//   - FindPath returns a Result (success, cost, visited count, path, visited map).
//   - Steps returns a lazy iter.Seq[Step]. The search advances only while the
//     consumer pulls; each Step is an independent snapshot; the last Step is
//     the only one with Complete set. Breaking out of the range abandons the
//     search with nothing left running.
//
// Draining Steps and calling ResultFromStep on the final step gives the same
// Result as FindPath, because both run the same loop.
//
// Unwalkable endpoints are not errors: FindPath reports Success=false with
// zero visited cells, and Steps yields a single terminal step.
//
// Costs:
//
//   - Entering a cell costs grid.Cost(cell); the start cell is free.
//   - Dijkstra, AStar, GreedyBestFirst report the cell-cost sum of their path.
//   - BFS, DirectionalGreedy, WallFollower report path length minus one.
//
// Complexity (N = cell count):
//
//   - BFS, DirectionalGreedy: O(N).
//   - Dijkstra, AStar, GreedyBestFirst: O(N log N).
//   - WallFollower: O(N), at most 4N iterations.
//   - Each emitted Step copies two N-sized slices.
//
// Options:
//
//   - WithHeuristic: estimate for AStar and GreedyBestFirst (default Manhattan).
//   - WithContext: cancellation.
//   - WithOnVisit: hook at every suspension point.
//   - WithLogger: debug summaries via log/slog.
//
// Errors:
//
//   - ErrGridNil:          nil grid.
//   - ErrOptionViolation:  invalid option (e.g. nil heuristic).
//   - ErrUnknownAlgorithm: Algorithm outside the fixed set.
//   - context errors from FindPath when Ctx is cancelled.
package pathfind
