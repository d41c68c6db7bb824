package grid

// Components finds all 4-connected regions of walkable cells.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order. Components are ordered by their
// first cell in row-major order.
//
// To convert an index back to a Pos, use PosAt(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, g.CellCount())
	var comps [][]int

	for i0 := range seen {
		if g.blocked[i0] || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for nb := range g.Neighbors(g.PosAt(queue[qi])) {
				vi := g.Index(nb)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether a walkable path joins a and b.
// Returns false if either cell is not walkable.
// Time: O(W·H) worst case.
func (g *Grid) Connected(a, b Pos) bool {
	if !g.IsWalkable(a) || !g.IsWalkable(b) {
		return false
	}
	target := g.Index(b)
	seen := make([]bool, g.CellCount())
	queue := []int{g.Index(a)}
	seen[queue[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		if queue[qi] == target {
			return true
		}
		for nb := range g.Neighbors(g.PosAt(queue[qi])) {
			vi := g.Index(nb)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return false
}
