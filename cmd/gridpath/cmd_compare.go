package main

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/internal/format"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/pathfind"
)

// comparison is one algorithm's row in the compare table.
type comparison struct {
	algorithm pathfind.Algorithm
	result    *pathfind.Result
	trueCost  int
	elapsed   time.Duration
}

func newCompareCmd() *cobra.Command {
	var (
		sf    scenarioFlags
		flags struct {
			output string
			sort   string
			desc   bool
		}
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm on the same map and tabulate the outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := format.ParseMode(flags.output)
			if err != nil {
				return err
			}
			sc, err := sf.scenario(cmd.Flags())
			if err != nil {
				return err
			}
			w, err := buildWorld(sc)
			if err != nil {
				return err
			}
			rows, err := compareAll(cmd, w)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), comparisonTable(w, rows, mode, flags.sort, flags.desc))
			return nil
		},
	}

	fs := cmd.Flags()
	sf.register(fs)
	fs.StringVarP(&flags.output, "output", "o", "ascii", "table format: ascii, markdown or csv")
	fs.StringVar(&flags.sort, "sort", "", "sort by column (e.g. Visited, True cost)")
	fs.BoolVar(&flags.desc, "desc", false, "sort descending")
	return cmd
}

// compareAll runs every variant concurrently on the read-only grid.
func compareAll(cmd *cobra.Command, w *world) ([]comparison, error) {
	logger := logging.New("compare")
	algs := pathfind.All()
	rows := make([]comparison, len(algs))

	g, gCtx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, alg := range algs {
		g.Go(func() error {
			began := time.Now()
			res, err := pathfind.Solve(alg, w.grid, w.start, w.goal,
				w.options(pathfind.WithContext(gCtx), pathfind.WithLogger(logger))...)
			if err != nil {
				return fmt.Errorf("%s: %w", alg.Label(), err)
			}
			rows[i] = comparison{
				algorithm: alg,
				result:    res,
				trueCost:  pathfind.PathCost(w.grid, res.Path),
				elapsed:   time.Since(began),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Info("compared", slog.Int("algorithms", len(rows)))
	return rows, nil
}

// comparisonTable lays rows out in algorithm order unless sortCol is set.
func comparisonTable(w *world, rows []comparison, mode format.Mode, sortCol string, desc bool) string {
	tb := format.NewTable(mode)
	title := fmt.Sprintf("%dx%d map, %v → %v", w.grid.Width(), w.grid.Height(), w.start, w.goal)
	if w.seed != 0 {
		title += fmt.Sprintf(", seed %d", w.seed)
	}
	if mode == format.ASCII {
		tb.Title(title)
	}
	tb.Header("Algorithm", "Found", "Length", "Cost", "True cost", "Visited", "Time")
	for _, r := range rows {
		ok := r.result.Success
		tb.Row(
			r.algorithm.Label(),
			format.BoolMark(ok),
			format.OrDash(r.result.PathLength(), ok),
			format.OrDash(r.result.Cost, ok),
			format.OrDash(r.trueCost, ok),
			r.result.VisitedCount,
			format.Millis(r.elapsed),
		)
	}
	tb.Columns(
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
		format.ColumnConfig{Number: 5, Align: format.AlignRight},
		format.ColumnConfig{Number: 6, Align: format.AlignRight},
		format.ColumnConfig{Number: 7, Align: format.AlignRight},
	)
	if sortCol != "" {
		tb.SortBy(sortCol, desc)
	}
	out := tb.String()
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out += "\n"
	}
	return out
}
