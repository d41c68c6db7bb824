// Package heuristic provides distance estimates between grid cells for
// informed searches (A*, Greedy Best-First).
//
// Every Func is pure, non-negative, and zero when a == b (Zero is the one
// exception: it is zero everywhere).
//
// On a 4-connected grid with uniform unit costs, Manhattan and Euclidean are
// admissible and consistent. With weighted cells they are still lower bounds
// because every cell costs at least 1, but they get less informative as
// costs grow, which is an accuracy trade-off rather than a defect.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrUnknown is returned by ByName for an unregistered heuristic name.
var ErrUnknown = errors.New("heuristic: unknown heuristic")

// Func estimates the remaining cost from a to b.
type Func func(a, b grid.Pos) int

// Manhattan returns |ax−bx| + |ay−by|.
func Manhattan(a, b grid.Pos) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Euclidean returns the straight-line distance rounded to the nearest
// integer (halves away from zero).
func Euclidean(a, b grid.Pos) int {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return int(math.Round(math.Sqrt(dx*dx + dy*dy)))
}

// Zero always returns 0. A* driven by Zero orders its frontier like Dijkstra.
func Zero(_, _ grid.Pos) int { return 0 }

// registry maps lower-case names to heuristics.
var registry = map[string]Func{
	"manhattan": Manhattan,
	"euclidean": Euclidean,
	"zero":      Zero,
}

// ByName looks a heuristic up by case-insensitive name.
func ByName(name string) (Func, error) {
	h, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknown, name, strings.Join(Names(), ", "))
	}
	return h, nil
}

// Names returns the registered heuristic names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
