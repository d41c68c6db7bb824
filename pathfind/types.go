package pathfind

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Sentinel errors for pathfinder execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("pathfind: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the fixed set.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")
)

// Algorithm selects one of the six search strategies. The set is closed.
type Algorithm int

const (
	// BFS explores in FIFO order; shortest by step count, ignores costs.
	BFS Algorithm = iota
	// Dijkstra expands by cumulative cost; cost-optimal.
	Dijkstra
	// AStar expands by cost plus heuristic; cost-optimal with an admissible heuristic.
	AStar
	// GreedyBestFirst expands by heuristic only; fast, not optimal.
	GreedyBestFirst
	// DirectionalGreedy walks straight at the goal and gives up at the first wall.
	DirectionalGreedy
	// WallFollower walks with a facing direction and backtracks when cornered.
	WallFollower

	algorithmCount = iota
)

// algorithmInfo holds the display metadata of each variant.
var algorithmInfo = [algorithmCount]struct {
	name, label, useCase string
}{
	BFS:               {"bfs", "BFS", "Use when all edges have equal cost; shortest by steps but ignores weights."},
	Dijkstra:          {"dijkstra", "Dijkstra", "Use for weighted maps; guarantees shortest cost but explores more."},
	AStar:             {"astar", "A*", "Use for weighted maps with a good heuristic; faster, still optimal."},
	GreedyBestFirst:   {"greedy", "Greedy Best-First", "Use when speed matters more than optimality; heads for the goal, may take detours."},
	DirectionalGreedy: {"directional", "Directional Greedy", "Use on open maps with a known direction; fails at the first obstacle."},
	WallFollower:      {"wallfollower", "Wall Follower", "Use to illustrate maze walking; backtracks when stuck, no optimality."},
}

// All returns every algorithm in declaration order.
func All() []Algorithm {
	out := make([]Algorithm, algorithmCount)
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

// Valid reports whether a is one of the known variants.
func (a Algorithm) Valid() bool { return a >= 0 && a < algorithmCount }

// String returns the short machine name ("bfs", "astar", ...).
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmInfo[a].name
}

// Label returns the human-readable name ("A*", "Wall Follower", ...).
func (a Algorithm) Label() string {
	if !a.Valid() {
		return "Unknown"
	}
	return algorithmInfo[a].label
}

// UseCase returns a one-line hint on when to pick a.
func (a Algorithm) UseCase() string {
	if !a.Valid() {
		return ""
	}
	return algorithmInfo[a].useCase
}

// ParseAlgorithm resolves a machine name or label, case-insensitively.
// "a*" and "a-star" are accepted for AStar.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "a*", "a-star":
		return AStar, nil
	}
	for _, a := range All() {
		if key == algorithmInfo[a].name || key == strings.ToLower(algorithmInfo[a].label) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Step is an immutable snapshot of a search in progress.
//
// Visited and Prev are copies taken when the step was produced; later
// progress of the search never changes them. Prev[i] is the row-major index
// of the predecessor of cell i, or -1.
type Step struct {
	Visited      []bool
	Prev         []int
	Current      grid.Pos // valid only when HasCurrent is true
	HasCurrent   bool
	VisitedCount int
	Complete     bool // true only on the terminal step
	Found        bool // meaningful on the terminal step
}

// CurrentPos returns the position the search was at, if any.
func (s Step) CurrentPos() (grid.Pos, bool) {
	return s.Current, s.HasCurrent
}

// Result holds the outcome of a one-shot search:
//   - Success: whether a path was found.
//   - Cost: total path cost under the algorithm's cost rule.
//   - VisitedCount: cells marked visited during the search.
//   - Path: start..goal inclusive, empty when not found.
//   - Visited: final visited map, indexed row-major.
type Result struct {
	Success      bool
	Cost         int
	VisitedCount int
	Path         []grid.Pos
	Visited      []bool
}

// PathLength returns the number of cells on the path.
func (r *Result) PathLength() int { return len(r.Path) }

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. nil heuristic), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customise a search.
type Options struct {
	// Ctx allows cancellation. FindPath returns Ctx.Err(); a step stream
	// ends with a terminal step that has Found unset.
	Ctx context.Context

	// Heuristic is consulted by AStar and GreedyBestFirst only.
	Heuristic heuristic.Func

	// OnVisit is called at every suspension point with the current cell
	// and the running visited count.
	OnVisit func(pos grid.Pos, visitedCount int)

	// Logger receives a debug summary of each search.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Manhattan heuristic
//   - no-op OnVisit
//   - logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: heuristic.Manhattan,
		OnVisit:   func(grid.Pos, int) {},
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic sets the estimate used by AStar and GreedyBestFirst.
// Other algorithms ignore it. A nil heuristic is an ErrOptionViolation.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic must not be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithOnVisit registers a callback run at every suspension point.
func WithOnVisit(fn func(pos grid.Pos, visitedCount int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger sets the logger for search summaries.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// buildOptions applies opts over the defaults and reports any violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}
