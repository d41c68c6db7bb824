package pathfind

import (
	"iter"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Pathfinder is the contract shared by every algorithm.
//
// FindPath and Steps take the same inputs and reach the same outcome:
// draining Steps and rebuilding a Result from its terminal step with
// ResultFromStep yields exactly what FindPath returns.
type Pathfinder interface {
	// Algorithm reports which variant this is.
	Algorithm() Algorithm

	// FindPath searches from start to goal and returns the outcome.
	// Unwalkable endpoints and exhausted searches are reported through
	// Result.Success, not as errors. Errors are reserved for invalid
	// arguments (ErrGridNil, ErrOptionViolation) and cancellation.
	FindPath(g *grid.Grid, start, goal grid.Pos, opts ...Option) (*Result, error)

	// Steps validates its arguments and returns a lazy sequence of
	// snapshots. Each range over the sequence runs one fresh search that
	// advances only while the consumer pulls, and ends with exactly one
	// Complete step. Breaking out of the range abandons the search.
	Steps(g *grid.Grid, start, goal grid.Pos, opts ...Option) (iter.Seq[Step], error)
}

// costRule tells how a variant prices its path.
type costRule int

const (
	// stepCost prices a path as its length minus one.
	stepCost costRule = iota
	// cellCost prices a path as the sum of destination-cell costs.
	cellCost
)

// finder is the single Pathfinder implementation; variants differ only in
// their search loop and cost rule.
type finder struct {
	alg       Algorithm
	run       func(*search)
	trackCost bool
	rule      costRule
}

// finders is the fixed dispatch table, indexed by Algorithm.
var finders = [algorithmCount]finder{
	BFS:               {alg: BFS, run: runBFS, rule: stepCost},
	Dijkstra:          {alg: Dijkstra, run: runDijkstra, trackCost: true, rule: cellCost},
	AStar:             {alg: AStar, run: runAStar, trackCost: true, rule: cellCost},
	GreedyBestFirst:   {alg: GreedyBestFirst, run: runGreedy, rule: cellCost},
	DirectionalGreedy: {alg: DirectionalGreedy, run: runDirectional, rule: stepCost},
	WallFollower:      {alg: WallFollower, run: runWallFollower, rule: stepCost},
}

// New returns the Pathfinder for alg.
// Returns ErrUnknownAlgorithm for values outside the fixed set.
func New(alg Algorithm) (Pathfinder, error) {
	if !alg.Valid() {
		return nil, ErrUnknownAlgorithm
	}
	f := finders[alg]
	return &f, nil
}

// Solve is shorthand for New(alg) followed by FindPath.
func Solve(alg Algorithm, g *grid.Grid, start, goal grid.Pos, opts ...Option) (*Result, error) {
	pf, err := New(alg)
	if err != nil {
		return nil, err
	}
	return pf.FindPath(g, start, goal, opts...)
}

// Algorithm reports which variant f runs.
func (f *finder) Algorithm() Algorithm { return f.alg }

// FindPath runs the search loop with snapshotting disabled.
func (f *finder) FindPath(g *grid.Grid, start, goal grid.Pos, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	s := newSearch(g, start, goal, o, f.trackCost, nil)
	s.execute(f.run)
	if s.err != nil {
		return nil, s.err
	}

	res := &Result{
		VisitedCount: s.visitedCount,
		Visited:      s.visited,
	}
	if s.found {
		res.Path = Reconstruct(g, start, goal, s.prev)
		res.Success = len(res.Path) > 0
		res.Cost = f.pathCost(s, res.Path)
	}

	o.Logger.Debug("search finished",
		slog.String("algorithm", f.alg.String()),
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.Bool("found", res.Success),
		slog.Int("cost", res.Cost),
		slog.Int("visited", res.VisitedCount),
		slog.Duration("elapsed", time.Since(began)))

	return res, nil
}

// Steps returns the lazy snapshot stream of the search.
func (f *finder) Steps(g *grid.Grid, start, goal grid.Pos, opts ...Option) (iter.Seq[Step], error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return func(yield func(Step) bool) {
		s := newSearch(g, start, goal, o, f.trackCost, yield)
		s.execute(f.run)
		o.Logger.Debug("trace finished",
			slog.String("algorithm", f.alg.String()),
			slog.Bool("found", s.found),
			slog.Bool("abandoned", s.stopped),
			slog.Int("visited", s.visitedCount))
	}, nil
}

// pathCost prices a found path. Cost-tracking variants read the settled
// distance of the goal, which equals the cell-cost sum along the path.
func (f *finder) pathCost(s *search, path []grid.Pos) int {
	if len(path) == 0 {
		return 0
	}
	if s.dist != nil {
		return s.dist[s.goalIdx]
	}
	return priceByRule(f.rule, s.g, path)
}

// priceByRule applies a cost rule to a path.
func priceByRule(rule costRule, g *grid.Grid, path []grid.Pos) int {
	if len(path) == 0 {
		return 0
	}
	if rule == stepCost {
		return len(path) - 1
	}
	return PathCost(g, path)
}

// ResultFromStep rebuilds the Result that alg's FindPath would return,
// given the terminal step of its stream. A non-terminal step yields an
// unsuccessful Result carrying that step's progress.
func ResultFromStep(alg Algorithm, g *grid.Grid, start, goal grid.Pos, st Step) (*Result, error) {
	if !alg.Valid() {
		return nil, ErrUnknownAlgorithm
	}
	if g == nil {
		return nil, ErrGridNil
	}
	res := &Result{
		VisitedCount: st.VisitedCount,
		Visited:      st.Visited,
	}
	if st.Complete && st.Found {
		res.Path = Reconstruct(g, start, goal, st.Prev)
		res.Success = len(res.Path) > 0
		res.Cost = priceByRule(finders[alg].rule, g, res.Path)
	}
	return res, nil
}
