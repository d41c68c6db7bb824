package pathfind

import "github.com/katalvlaran/gridpath/grid"

// runDirectional walks one cell at a time straight at the goal: along the
// axis with the larger remaining distance, x on ties. It never looks for an
// alternative; the first unwalkable choice ends the walk as not found.
//
// One step is emitted for the start cell and one per cell entered. The walk
// is capped at CellCount moves.
func runDirectional(s *search) {
	cur := s.start
	trail := []grid.Pos{cur}
	s.mark(s.startIdx)
	if !s.step(cur) {
		return
	}
	if cur == s.goal {
		s.finish(cur, true, true)
		return
	}

	budget := s.g.CellCount()
	for moves := 0; moves < budget; moves++ {
		next := towardGoal(cur, s.goal)
		if !s.g.IsWalkable(next) {
			s.finish(cur, true, false)
			return
		}
		cur = next
		s.mark(s.g.Index(cur))
		trail = append(trail, cur)
		if !s.step(cur) {
			return
		}
		if cur == s.goal {
			s.linkTrail(trail)
			s.finish(cur, true, true)
			return
		}
	}
	s.finish(cur, true, false)
}

// towardGoal returns the neighbour of cur one unit closer to goal on the
// dominant axis. Ties favour the x-axis.
func towardGoal(cur, goal grid.Pos) grid.Pos {
	dx, dy := goal.X-cur.X, goal.Y-cur.Y
	if abs(dx) >= abs(dy) {
		return cur.Add(sign(dx), 0)
	}
	return cur.Add(0, sign(dy))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
