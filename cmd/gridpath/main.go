// gridpath solves grid maps with six pathfinding strategies and shows how
// each one explores.
//
// Usage:
//
//	gridpath solve   [--preset=<name>|--config=<file>|--map=<file>] [--algorithm=astar] [--animate]
//	gridpath compare [--preset=<name>|--config=<file>|--map=<file>] [--output=ascii|markdown|csv]
//	gridpath algorithms
//	gridpath presets
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
