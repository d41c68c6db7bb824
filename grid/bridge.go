package grid

import (
	"container/list"
	"fmt"
	"slices"
)

// Bridge returns the fewest blocked cells that must be opened so a walkable
// route joins a and b. It returns nil when a and b already share a region.
//
// Behavior:
//  1. Label every walkable cell with its Components index.
//  2. Multi-source 0-1 BFS from every cell in a's region:
//     • entering a walkable cell costs 0 (pushed to the front)
//     • entering a blocked cell costs 1 (pushed to the back)
//  3. Stop at the first popped cell of b's region.
//  4. Walk predecessors back, keeping the blocked cells.
//
// The cells come back ordered from a's side to b's side. Bridge never
// modifies g; open the cells with SetBlocked(p, false).
//
// Returns ErrNotWalkable if a or b is blocked or out of bounds.
//
// Complexity: O(W×H) time and memory.
func (g *Grid) Bridge(a, b Pos) ([]Pos, error) {
	if !g.IsWalkable(a) || !g.IsWalkable(b) {
		return nil, fmt.Errorf("%w: bridge %v to %v", ErrNotWalkable, a, b)
	}
	if g.Connected(a, b) {
		return nil, nil
	}

	n := g.CellCount()
	region := make([]int, n)
	for i := range region {
		region[i] = -1
	}
	comps := g.Components()
	for ci, comp := range comps {
		for _, i := range comp {
			region[i] = ci
		}
	}
	src, dst := region[g.Index(a)], region[g.Index(b)]

	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	dq := list.New()
	for _, i := range comps[src] {
		dist[i] = 0
		dq.PushBack(i)
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if region[u] == dst {
			target = u
			break
		}
		pu := g.PosAt(u)
		for _, d := range neighborOffsets {
			pv := pu.Add(d[0], d[1])
			if !g.InBounds(pv) {
				continue
			}
			v := g.Index(pv)
			w := 0
			if g.blocked[v] {
				w = 1
			}
			if dist[u]+w >= dist[v] {
				continue
			}
			dist[v] = dist[u] + w
			prev[v] = u
			if w == 0 {
				dq.PushFront(v)
			} else {
				dq.PushBack(v)
			}
		}
	}

	// every cell may be opened, so b's region is always reached
	var opened []Pos
	for at := target; at >= 0; at = prev[at] {
		if g.blocked[at] {
			opened = append(opened, g.PosAt(at))
		}
	}
	slices.Reverse(opened)
	return opened, nil
}
