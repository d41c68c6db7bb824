package pathfind

import (
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/gridpath/grid"
)

// unreachable is the sentinel "infinite" distance of cost-aware searches.
const unreachable = math.MaxInt

// search holds the scratch state of exactly one search invocation.
// It is created fresh for every FindPath call and every range over a
// step stream, and never shared.
type search struct {
	g            *grid.Grid
	opts         Options
	start, goal  grid.Pos
	startIdx     int
	goalIdx      int
	visited      []bool
	prev         []int
	dist         []int // nil unless the algorithm tracks cost
	visitedCount int

	// yield is nil for one-shot searches; otherwise it receives snapshots.
	yield   func(Step) bool
	stopped bool  // consumer stopped pulling or context was cancelled
	found   bool  // final disposition
	err     error // context error, one-shot only
}

// newSearch allocates scratch state sized to the grid's cell count.
func newSearch(g *grid.Grid, start, goal grid.Pos, opts Options, trackCost bool, yield func(Step) bool) *search {
	n := g.CellCount()
	s := &search{
		g:       g,
		opts:    opts,
		start:   start,
		goal:    goal,
		visited: make([]bool, n),
		prev:    make([]int, n),
		yield:   yield,
	}
	for i := range s.prev {
		s.prev[i] = -1
	}
	if trackCost {
		s.dist = make([]int, n)
		for i := range s.dist {
			s.dist[i] = unreachable
		}
	}
	if g.InBounds(start) {
		s.startIdx = g.Index(start)
	}
	if g.InBounds(goal) {
		s.goalIdx = g.Index(goal)
	}
	return s
}

// execute runs the algorithm loop unless an endpoint is unwalkable, in
// which case the search ends at once with a bare terminal step.
func (s *search) execute(run func(*search)) {
	if !s.g.IsWalkable(s.start) || !s.g.IsWalkable(s.goal) {
		s.exhausted()
		return
	}
	run(s)
}

// mark flags cell idx as visited and bumps the running count.
func (s *search) mark(idx int) {
	if s.visited[idx] {
		return
	}
	s.visited[idx] = true
	s.visitedCount++
}

// step is a suspension point: it fires OnVisit, checks for cancellation
// and hands a snapshot to the consumer. It returns false when the
// algorithm must stop immediately. A cancelled stream still gets its
// terminal step, unfound, at cur.
func (s *search) step(cur grid.Pos) bool {
	s.opts.OnVisit(cur, s.visitedCount)
	if err := s.opts.Ctx.Err(); err != nil {
		s.err = err
		if s.yield != nil {
			s.yield(s.snapshot(cur, true, true, false))
		}
		s.stopped = true
		return false
	}
	if s.yield == nil {
		return true
	}
	if !s.yield(s.snapshot(cur, true, false, false)) {
		s.stopped = true
		return false
	}
	return true
}

// finish records the final disposition and emits the terminal step.
func (s *search) finish(cur grid.Pos, hasCur, found bool) {
	s.found = found
	if s.yield == nil || s.stopped {
		return
	}
	s.stopped = !s.yield(s.snapshot(cur, hasCur, true, found))
}

// exhausted ends a search that has no current cell to report.
func (s *search) exhausted() {
	s.finish(grid.Pos{}, false, false)
}

// linkTrail writes predecessor links along a walked trail. Walk variants
// only publish their links on success.
func (s *search) linkTrail(trail []grid.Pos) {
	for i := 1; i < len(trail); i++ {
		s.prev[s.g.Index(trail[i])] = s.g.Index(trail[i-1])
	}
}

// snapshot copies the mutable scratch arrays into an immutable Step.
func (s *search) snapshot(cur grid.Pos, hasCur, complete, found bool) Step {
	return Step{
		Visited:      slices.Clone(s.visited),
		Prev:         slices.Clone(s.prev),
		Current:      cur,
		HasCurrent:   hasCur,
		VisitedCount: s.visitedCount,
		Complete:     complete,
		Found:        found,
	}
}

// Reconstruct walks predecessor links back from goal to start.
//
//   - start == goal: the single-cell path [start].
//   - prev[goal] == -1: no path; returns nil.
//   - otherwise: the path start..goal inclusive.
//
// prev must be indexed row-major over g. Out-of-bounds endpoints, links
// outside prev and cyclic links yield nil.
func Reconstruct(g *grid.Grid, start, goal grid.Pos, prev []int) []grid.Pos {
	if g == nil || !g.InBounds(start) || !g.InBounds(goal) || len(prev) != g.CellCount() {
		return nil
	}
	if start == goal {
		return []grid.Pos{start}
	}
	goalIdx := g.Index(goal)
	if prev[goalIdx] == -1 {
		return nil
	}
	var path []grid.Pos
	for at, n := goalIdx, 0; at != -1; at, n = prev[at], n+1 {
		if at < 0 || at >= len(prev) || n > len(prev) {
			return nil
		}
		path = append(path, g.PosAt(at))
	}
	slices.Reverse(path)
	if path[0] != start {
		return nil
	}
	return path
}

// PathCost sums the cost of entering every cell after the first.
func PathCost(g *grid.Grid, path []grid.Pos) int {
	cost := 0
	for i := 1; i < len(path); i++ {
		cost += g.Cost(path[i])
	}
	return cost
}

// Drain consumes a step stream to its end and returns the last step and
// the number of steps seen. ok is false when the stream yielded nothing.
func Drain(steps iter.Seq[Step]) (last Step, n int, ok bool) {
	for st := range steps {
		last = st
		n++
		ok = true
	}
	return last, n, ok
}
