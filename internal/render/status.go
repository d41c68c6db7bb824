package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/format"
	"github.com/katalvlaran/gridpath/pathfind"
)

// Status is the summary printed under a rendered grid.
type Status struct {
	Algorithm   pathfind.Algorithm
	Start, Goal grid.Pos
	Result      *pathfind.Result
	Elapsed     time.Duration
	Seed        int64 // 0 hides the seed line
}

// String renders s over several lines.
func (s Status) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Algorithm: %s\n", s.Algorithm.Label())
	fmt.Fprintf(&sb, "Use case: %s\n", s.Algorithm.UseCase())
	fmt.Fprintf(&sb, "Start: %v Goal: %v\n", s.Start, s.Goal)
	sb.WriteString(Outcome(s.Result))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Search time: %s", format.Millis(s.Elapsed))
	if s.Seed != 0 {
		fmt.Fprintf(&sb, "\nSeed: %d", s.Seed)
	}
	return sb.String()
}

// Outcome is the one-line result summary.
func Outcome(res *pathfind.Result) string {
	switch {
	case res == nil:
		return "✗ Search did not finish"
	case res.Success:
		return fmt.Sprintf("✓ Path found: Length=%d | Cost=%d | Visited=%d",
			res.PathLength(), res.Cost, res.VisitedCount)
	default:
		return fmt.Sprintf("✗ No path found | Visited=%d", res.VisitedCount)
	}
}
