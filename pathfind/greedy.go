package pathfind

import "github.com/katalvlaran/gridpath/pqueue"

// runGreedy expands the frontier cell that looks closest to the goal by
// heuristic alone. A neighbour receives a predecessor and a heap entry only
// the first time it is discovered; later, possibly better, routes to it are
// ignored. Cumulative cost is not tracked while searching.
//
// Not cost-optimal: the path follows whatever the heuristic pulled toward.
func runGreedy(s *search) {
	h := s.opts.Heuristic
	pq := pqueue.New[int](s.g.CellCount())
	pq.Push(s.startIdx, h(s.start, s.goal))

	for pq.Len() > 0 {
		cur, _, err := pq.Pop()
		if err != nil {
			break
		}
		if s.visited[cur] {
			continue
		}

		s.mark(cur)
		pos := s.g.PosAt(cur)
		if !s.step(pos) {
			return
		}
		if cur == s.goalIdx {
			s.finish(pos, true, true)
			return
		}

		for nb := range s.g.Neighbors(pos) {
			ni := s.g.Index(nb)
			if s.visited[ni] || s.prev[ni] != -1 {
				continue
			}
			s.prev[ni] = cur
			pq.Push(ni, h(nb, s.goal))
		}
	}
	s.exhausted()
}
