package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/format"
	"github.com/katalvlaran/gridpath/pathfind"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available algorithms and when to use them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tb := format.NewTable(format.ASCII)
			tb.Header("Name", "Algorithm", "Use case")
			for _, a := range pathfind.All() {
				tb.Row(a.String(), a.Label(), a.UseCase())
			}
			tb.Columns(format.ColumnConfig{Number: 3, MaxWidth: 60})
			fmt.Fprintln(cmd.OutOrStdout(), tb.String())
			return nil
		},
	}
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tb := format.NewTable(format.ASCII)
			tb.Header("Preset", "Map", "Start", "Goal", "Algorithm")
			for _, name := range config.Presets() {
				sc, err := config.Preset(name)
				if err != nil {
					return err
				}
				w, h := sc.Dimensions()
				kind := "generated"
				if len(sc.Map) > 0 {
					kind = "drawn"
				}
				tb.Row(name, fmt.Sprintf("%dx%d %s", w, h, kind), sc.Start, sc.Goal, sc.Algorithm)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tb.String())
			return nil
		},
	}
}
