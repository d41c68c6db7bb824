// Package render draws grids, search progress and results as terminal text.
package render

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// Cell glyphs, in increasing precedence after the base layer.
const (
	GlyphVisited = '+'
	GlyphPath    = '*'
	GlyphCurrent = '@'
	GlyphStart   = 'S'
	GlyphGoal    = 'G'
)

// Frame is everything drawn for one picture of the grid.
type Frame struct {
	Grid        *grid.Grid
	Start, Goal grid.Pos
	Visited     []bool // ignored unless sized to the grid
	Path        []grid.Pos
	Current     grid.Pos
	HasCurrent  bool
}

// WithStep returns a copy of f showing the progress carried by st. On a
// successful terminal step the path is reconstructed from its links.
func (f Frame) WithStep(st pathfind.Step) Frame {
	f.Visited = st.Visited
	f.Current, f.HasCurrent = st.CurrentPos()
	f.Path = nil
	if st.Complete {
		f.HasCurrent = false
		if st.Found {
			f.Path = pathfind.Reconstruct(f.Grid, f.Start, f.Goal, st.Prev)
		}
	}
	return f
}

// WithResult returns a copy of f showing a finished search.
func (f Frame) WithResult(res *pathfind.Result) Frame {
	f.HasCurrent = false
	if res == nil {
		f.Visited, f.Path = nil, nil
		return f
	}
	f.Visited = res.Visited
	f.Path = res.Path
	return f
}

// Renderer turns frames into text.
type Renderer struct {
	// Color enables ANSI colouring; glyphs are the same either way.
	Color bool
}

// palette maps each layer to its colours.
var palette = struct {
	blocked, tint, visited, path, current, start, goal text.Colors
}{
	blocked: text.Colors{text.FgHiBlack},
	tint:    text.Colors{text.FgYellow},
	visited: text.Colors{text.FgCyan},
	path:    text.Colors{text.FgHiGreen, text.Bold},
	current: text.Colors{text.FgHiMagenta, text.Bold},
	start:   text.Colors{text.BgGreen, text.FgBlack},
	goal:    text.Colors{text.BgRed, text.FgWhite},
}

// Render draws f row by row. Layers are painted in order: blocked or open
// with cost digit, visited, path, current, start, goal; later layers win.
func (r Renderer) Render(f Frame) string {
	g := f.Grid
	if g == nil {
		return ""
	}
	onPath := make(map[grid.Pos]bool, len(f.Path))
	for _, p := range f.Path {
		onPath[p] = true
	}

	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width(); x++ {
			p := grid.Pos{X: x, Y: y}
			glyph, colors := r.cell(f, p, onPath[p])
			if r.Color && len(colors) > 0 {
				sb.WriteString(colors.Sprint(string(glyph)))
				continue
			}
			sb.WriteRune(glyph)
		}
	}
	return sb.String()
}

// cell picks the glyph and colours of p.
func (r Renderer) cell(f Frame, p grid.Pos, onPath bool) (rune, text.Colors) {
	g := f.Grid
	switch {
	case p == f.Goal:
		return GlyphGoal, palette.goal
	case p == f.Start:
		return GlyphStart, palette.start
	case f.HasCurrent && p == f.Current:
		return GlyphCurrent, palette.current
	case onPath:
		return GlyphPath, palette.path
	case len(f.Visited) == g.CellCount() && f.Visited[g.Index(p)]:
		return GlyphVisited, palette.visited
	case g.IsBlocked(p):
		return grid.GlyphBlocked, palette.blocked
	}
	c := g.Cost(p)
	if c <= 1 {
		return grid.GlyphOpen, nil
	}
	if c > 9 {
		c = 9
	}
	return rune('0' + c), palette.tint
}

// Legend describes the glyphs in one line.
func Legend() string {
	return "S start  G goal  * path  + visited  @ current  # blocked  . open  1-9 cost"
}
