// Package gridpath finds and animates paths on weighted 2D grids: six
// classic search strategies over one shared grid model, each available as a
// one-shot call or as a lazy stream of snapshots you can render frame by frame.
//
// 🚀 What is gridpath?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid model: walls, per-cell entry costs, 4-neighbour moves
//		• Min-priority queue with lazy decrease-key
//		• Heuristics: Manhattan, Euclidean, Zero
//		• Searches: BFS, Dijkstra, A*, Greedy Best-First,
//		  Directional Greedy, Wall Follower
//		• Step streams: iter.Seq[Step] snapshots for visualisers
//
// ✨ Why gridpath?
//
//   - One contract – every variant returns the same Result and Step shapes
//   - Lazy by construction – a search only advances while you pull steps
//   - Comparable costs – PathCost prices any path by the cells it enters
//   - Hooks – OnVisit and a slog logger for custom tracing
//
// Everything lives in small subpackages:
//
//	grid/          Grid, Pos, text glyph parsing & connected components
//	pqueue/        generic binary min-heap with lazy decrease-key
//	heuristic/     goal-distance estimates, selectable by name
//	pathfind/      the six algorithms, Result, Step, Reconstruct
//	cmd/gridpath/  CLI to solve, animate and compare on generated or drawn maps
//
// Quick ASCII example (S start, G goal, * path, + visited, 9 costly cell):
//
//	S+9+G
//	*.9.*
//	*****
//
// A weighted search walks around the 9s; BFS counts steps and goes through.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
