package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// newRootCmd assembles the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	var logFlags struct {
		level  string
		format string
	}

	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Grid pathfinding playground",
		Long: "gridpath runs BFS, Dijkstra, A*, Greedy Best-First, Directional Greedy\n" +
			"and Wall Follower on generated or hand-drawn grid maps.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(logFlags.level)
			if err != nil {
				return err
			}
			return logging.Init(level, logFlags.format, cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&logFlags.level, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&logFlags.format, "log-format", "text", "log format: text or json")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newAlgorithmsCmd())
	root.AddCommand(newPresetsCmd())
	return root
}
