package grid

import "fmt"

// From2D builds a grid from a non-empty, rectangular 2D slice of costs,
// indexed values[y][x]. Values < 1 mark blocked cells; any other value is
// the cell's cost. Blocked cells keep cost 1.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, h, 1)
	if err != nil {
		return nil, err
	}
	for y, row := range values {
		for x, v := range row {
			p := Pos{X: x, Y: y}
			if v < 1 {
				g.SetBlocked(p, true)
				continue
			}
			g.SetCost(p, v)
		}
	}

	return g, nil
}

// Parse builds a grid from textual rows, top row first:
//
//	'#'        blocked cell
//	'.'        open cell, cost 1
//	'1'..'9'   open cell with that cost
//
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadGlyph on malformed input.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, 0, len(row))
		for x := 0; x < len(row); x++ {
			switch c := row[x]; {
			case c == GlyphBlocked:
				values[y] = append(values[y], 0)
			case c == GlyphOpen:
				values[y] = append(values[y], 1)
			case c >= '1' && c <= '9':
				values[y] = append(values[y], int(c-'0'))
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, c, x, y)
			}
		}
	}

	return From2D(values)
}
