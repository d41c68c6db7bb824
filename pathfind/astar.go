package pathfind

// runAStar is Dijkstra's relaxation ordered by dist + h(cell, goal).
// The heuristic comes from WithHeuristic (Manhattan by default).
// Cost-optimal whenever the heuristic never overestimates; on this grid
// every cell costs at least 1, so Manhattan and Euclidean qualify.
func runAStar(s *search) {
	r := &runner{search: s, estimate: s.opts.Heuristic}
	r.init()
	r.process()
}
