package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/pathfind"
)

func newSolveCmd() *cobra.Command {
	var (
		sf    scenarioFlags
		flags struct {
			animate bool
			delay   time.Duration
			color   bool
			legend  bool
		}
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one map with one algorithm and draw the result",
		Example: "  gridpath solve --preset maze --animate\n" +
			"  gridpath solve --width 40 --height 20 --algorithm dijkstra --seed 7 --color",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := sf.scenario(cmd.Flags())
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("animate") {
				sc.Animate = flags.animate
			}
			if fs.Changed("delay") {
				sc.Delay = flags.delay
			}
			if fs.Changed("color") {
				sc.Color = flags.color
			}
			return runSolve(cmd, sc, flags.legend)
		},
	}

	fs := cmd.Flags()
	sf.register(fs)
	d := config.Default()
	fs.BoolVar(&flags.animate, "animate", d.Animate, "replay the search step by step")
	fs.DurationVar(&flags.delay, "delay", d.Delay, "pause between animation frames")
	fs.BoolVar(&flags.color, "color", d.Color, "colour the output with ANSI escapes")
	fs.BoolVar(&flags.legend, "legend", false, "print the glyph legend")
	return cmd
}

func runSolve(cmd *cobra.Command, sc config.Scenario, legend bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	logger := logging.New("solve")

	w, err := buildWorld(sc)
	if err != nil {
		return err
	}
	pf, err := pathfind.New(w.algorithm)
	if err != nil {
		return err
	}
	logger.Info("solving",
		slog.String("algorithm", w.algorithm.String()),
		slog.Int("width", w.grid.Width()),
		slog.Int("height", w.grid.Height()),
		slog.Int64("seed", w.seed))

	renderer := render.Renderer{Color: sc.Color}
	base := render.Frame{Grid: w.grid, Start: w.start, Goal: w.goal}

	if sc.Animate {
		steps, err := pf.Steps(w.grid, w.start, w.goal, w.options(pathfind.WithLogger(logger))...)
		if err != nil {
			return err
		}
		player := &render.Player{
			Out:      out,
			Renderer: renderer,
			Delay:    sc.Delay,
			Clear:    true,
			Caption: func(st pathfind.Step, n int) string {
				return fmt.Sprintf("%s  step %d  visited %d", w.algorithm.Label(), n, st.VisitedCount)
			},
		}
		if _, _, err := player.Play(ctx, base, steps); err != nil {
			return err
		}
	}

	began := time.Now()
	res, err := pf.FindPath(w.grid, w.start, w.goal,
		w.options(pathfind.WithContext(ctx), pathfind.WithLogger(logger))...)
	if err != nil {
		return err
	}
	elapsed := time.Since(began)

	fmt.Fprintln(out, renderer.Render(base.WithResult(res)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Status{
		Algorithm: w.algorithm,
		Start:     w.start,
		Goal:      w.goal,
		Result:    res,
		Elapsed:   elapsed,
		Seed:      w.seed,
	})
	if legend {
		fmt.Fprintln(out, render.Legend())
	}
	return nil
}
