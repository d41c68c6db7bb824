// Package grid models a rectangular, 4-connected cell space with per-cell
// obstacles and movement costs, the map every gridpath search runs over.
//
// What:
//
//   - Grid owns a blocked flag and an integer cost for each cell.
//   - Pos is a plain (X, Y) value; validity is always grid-relative.
//   - Cells are addressed row-major: Index(p) = p.Y*Width + p.X. Search code
//     relies on this to keep visited/predecessor state in flat slices.
//   - Neighbors yields the walkable right, left, down and up cells, in that
//     fixed order, as a lazy iter.Seq.
//
// Why:
//
//   - Game maps and robot floor plans: walls are blocked cells, terrain is cost.
//   - Algorithm teaching: every search variant shares one deterministic map.
//
// Costs:
//
//   - Entering a cell costs Cost(cell). The cost of the cell being left is
//     irrelevant, so a path's cost is the sum over every cell but the first.
//   - Costs are clamped to at least 1.
//
// Complexity:
//
//   - InBounds, IsWalkable, Cost, SetBlocked, SetCost: O(1).
//   - Neighbors: O(1) per call, at most four cells.
//   - Components: O(W×H), Memory O(W×H).
//
// Errors:
//
//   - ErrInvalidSize:    width or height is not positive.
//   - ErrInvalidCost:    default cost below 1.
//   - ErrEmptyGrid:      From2D/Parse input has no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadGlyph:       Parse met a character it does not understand.
//   - ErrBadPos:         ParsePos input is not "x,y".
package grid
