package pathfind

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/pqueue"
)

// runner holds the mutable state of a cost-ordered search (Dijkstra, A*).
//
// Priority of a cell = dist[cell] + estimate(cell, goal). Dijkstra uses the
// Zero estimate, so its priority is the plain cumulative cost.
type runner struct {
	*search
	estimate heuristic.Func
	pq       *pqueue.MinHeap[int]
}

// runDijkstra expands cells in increasing cumulative cost, using the cost
// of the destination cell as edge weight. Cost-optimal.
//
// Complexity: O(N log N) time, O(N) memory (N = cell count); the heap may
// hold up to 4N entries under lazy-decrease-key.
func runDijkstra(s *search) {
	r := &runner{search: s, estimate: heuristic.Zero}
	r.init()
	r.process()
}

// init seeds the heap with the start cell at distance zero.
func (r *runner) init() {
	r.pq = pqueue.New[int](r.g.CellCount())
	r.dist[r.startIdx] = 0
	r.pq.Push(r.startIdx, r.priority(r.startIdx))
}

// priority returns the heap key of idx under its current best distance.
func (r *runner) priority(idx int) int {
	return r.dist[idx] + r.estimate(r.g.PosAt(idx), r.goal)
}

// process is the core loop. It repeatedly pops the lowest-priority entry,
// discards it when stale, and otherwise finalises and relaxes the cell.
//
// An entry is stale when its popped priority no longer equals the
// priority recomputed from the cell's current best distance, or when the
// cell is already finalised.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		cur, prio, err := r.pq.Pop()
		if err != nil {
			break
		}
		if prio != r.priority(cur) || r.visited[cur] {
			continue
		}

		r.mark(cur)
		pos := r.g.PosAt(cur)
		if !r.step(pos) {
			return
		}
		if cur == r.goalIdx {
			r.finish(pos, true, true)
			return
		}
		r.relax(cur, pos)
	}
	r.exhausted()
}

// relax tries to improve every unfinalised neighbour of pos through it.
// A neighbour is updated only on a strictly shorter tentative distance;
// the improved entry is pushed and the old one is left to go stale.
func (r *runner) relax(cur int, pos grid.Pos) {
	for nb := range r.g.Neighbors(pos) {
		ni := r.g.Index(nb)
		if r.visited[ni] {
			continue
		}
		tentative := r.dist[cur] + r.g.Cost(nb)
		if tentative >= r.dist[ni] {
			continue
		}
		r.dist[ni] = tentative
		r.prev[ni] = cur
		r.pq.Push(ni, r.priority(ni))
	}
}
