package pathfind

import "github.com/katalvlaran/gridpath/grid"

// heading is the facing direction of the wall follower.
type heading int

const (
	up heading = iota
	right
	down
	left
)

// headingOffsets holds the unit move of each heading, indexed by heading.
var headingOffsets = [4][2]int{
	up:    {0, -1},
	right: {1, 0},
	down:  {0, 1},
	left:  {-1, 0},
}

// turnRight rotates h a quarter turn clockwise.
func (h heading) turnRight() heading { return (h + 1) % 4 }

// move returns p shifted one cell along h.
func (h heading) move(p grid.Pos) grid.Pos {
	return p.Add(headingOffsets[h][0], headingOffsets[h][1])
}

// aim points at goal along the axis with the larger remaining distance;
// ties point along y.
func aim(from, goal grid.Pos) heading {
	dx, dy := goal.X-from.X, goal.Y-from.Y
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return right
		}
		return left
	}
	if dy > 0 {
		return down
	}
	return up
}

// runWallFollower walks with a facing direction. At each position it
// probes up to four headings clockwise from the current one and enters the
// first walkable, unvisited cell. When every heading is closed it steps back
// along its trail and re-aims at the goal. It fails when it has backed up to
// the start with nowhere to go, or after 4×CellCount iterations.
//
// One step is emitted for the start cell, per cell entered and per
// backtrack. No optimality guarantee.
func runWallFollower(s *search) {
	cur := s.start
	facing := aim(cur, s.goal)
	trail := []grid.Pos{cur}
	s.mark(s.startIdx)
	if !s.step(cur) {
		return
	}
	if cur == s.goal {
		s.finish(cur, true, true)
		return
	}

	budget := 4 * s.g.CellCount()
	for n := 0; n < budget; n++ {
		next, ok := probe(s, cur, &facing)
		if !ok {
			if len(trail) <= 1 {
				s.finish(cur, true, false)
				return
			}
			trail = trail[:len(trail)-1]
			cur = trail[len(trail)-1]
			facing = aim(cur, s.goal)
			if !s.step(cur) {
				return
			}
			continue
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

// probe rotates *facing clockwise until it points at a walkable, unvisited
// cell, trying at most four headings. On failure *facing ends where it
// started.
func probe(s *search, cur grid.Pos, facing *heading) (grid.Pos, bool) {
	for range 4 {
		next := facing.move(cur)
		if s.g.IsWalkable(next) && !s.visited[s.g.Index(next)] {
			return next, true
		}
		*facing = facing.turnRight()
	}
	return grid.Pos{}, false
}
