package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/mapgen"
	"github.com/katalvlaran/gridpath/pathfind"
)

// scenarioFlags are the map and query flags shared by solve and compare.
type scenarioFlags struct {
	configPath string
	preset     string
	mapPath    string

	width, height    int
	layout           string
	obstacles        float64
	loops            float64
	weighted         bool
	minCost, maxCost int
	seed             int64
	connect          bool

	start, goal string
	algorithm   string
	heuristic   string
}

// register binds the flags to fs with defaults taken from config.Default.
func (f *scenarioFlags) register(fs *pflag.FlagSet) {
	d := config.Default()
	fs.StringVar(&f.configPath, "config", "", "scenario YAML file")
	fs.StringVar(&f.preset, "preset", "", "built-in scenario (see 'gridpath presets')")
	fs.StringVar(&f.mapPath, "map", "", "text map file: one row per line of '#', '.', '1'-'9'")

	fs.IntVar(&f.width, "width", d.Width, "generated map width")
	fs.IntVar(&f.height, "height", d.Height, "generated map height")
	fs.StringVar(&f.layout, "layout", d.Layout, "generated map layout: scatter or maze")
	fs.Float64Var(&f.obstacles, "obstacles", d.Obstacles, "scatter: chance in [0,1] that a cell is blocked")
	fs.Float64Var(&f.loops, "loops", d.Loops, "maze: chance in [0,1] that a dividing wall is removed")
	fs.BoolVar(&f.weighted, "weighted", d.Weighted, "draw random cell costs")
	fs.IntVar(&f.minCost, "min-cost", d.MinCost, "lowest random cell cost")
	fs.IntVar(&f.maxCost, "max-cost", d.MaxCost, "highest random cell cost")
	fs.Int64Var(&f.seed, "seed", d.Seed, "generator seed; 0 picks one from the clock")
	fs.BoolVar(&f.connect, "connect", d.Connect, "open the fewest walls needed to join start and goal")

	fs.StringVar(&f.start, "start", d.Start, "start cell as x,y")
	fs.StringVar(&f.goal, "goal", d.Goal, "goal cell as x,y")
	fs.StringVar(&f.algorithm, "algorithm", d.Algorithm, "bfs, dijkstra, astar, greedy, directional or wallfollower")
	fs.StringVar(&f.heuristic, "heuristic", d.Heuristic, "heuristic for astar and greedy: "+strings.Join(heuristic.Names(), ", "))
}

// scenario resolves the base scenario (preset, file or default), then
// applies every flag the user set explicitly.
func (f *scenarioFlags) scenario(fs *pflag.FlagSet) (config.Scenario, error) {
	var (
		sc  config.Scenario
		err error
	)
	switch {
	case f.preset != "" && f.configPath != "":
		return sc, fmt.Errorf("--preset and --config are mutually exclusive")
	case f.preset != "":
		sc, err = config.Preset(f.preset)
	case f.configPath != "":
		sc, err = config.Load(f.configPath)
	default:
		sc = config.Default()
	}
	if err != nil {
		return sc, err
	}

	if f.mapPath != "" {
		rows, err := readMap(f.mapPath)
		if err != nil {
			return sc, err
		}
		sc.Map = rows
	}

	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("width", func() { sc.Width = f.width })
	set("height", func() { sc.Height = f.height })
	set("layout", func() { sc.Layout = f.layout })
	set("obstacles", func() { sc.Obstacles = f.obstacles })
	set("loops", func() { sc.Loops = f.loops })
	set("weighted", func() { sc.Weighted = f.weighted })
	set("min-cost", func() { sc.MinCost = f.minCost })
	set("max-cost", func() { sc.MaxCost = f.maxCost })
	set("seed", func() { sc.Seed = f.seed })
	set("connect", func() { sc.Connect = f.connect })
	set("start", func() { sc.Start = f.start })
	set("goal", func() { sc.Goal = f.goal })
	set("algorithm", func() { sc.Algorithm = f.algorithm })
	set("heuristic", func() { sc.Heuristic = f.heuristic })

	if err := sc.Validate(); err != nil {
		return sc, err
	}
	return sc, nil
}

// readMap loads map rows from a text file, skipping blank lines and lines
// starting with "//".
func readMap(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	defer fh.Close()

	var rows []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map %s: %w", path, err)
	}
	return rows, nil
}

// world is a validated scenario turned into search inputs.
type world struct {
	grid        *grid.Grid
	start, goal grid.Pos
	algorithm   pathfind.Algorithm
	heuristic   heuristic.Func
	seed        int64 // 0 for literal maps
}

// buildWorld parses or generates the grid and resolves the query.
func buildWorld(sc config.Scenario) (*world, error) {
	w := &world{}
	var err error
	if w.start, w.goal, err = sc.Endpoints(); err != nil {
		return nil, err
	}
	if w.algorithm, err = pathfind.ParseAlgorithm(sc.Algorithm); err != nil {
		return nil, err
	}
	if w.heuristic, err = heuristic.ByName(sc.Heuristic); err != nil {
		return nil, err
	}

	if len(sc.Map) > 0 {
		w.grid, err = grid.Parse(sc.Map...)
		return w, err
	}
	layout, err := mapgen.ParseLayout(sc.Layout)
	if err != nil {
		return nil, err
	}
	w.seed = mapgen.Seed(sc.Seed)
	w.grid, err = mapgen.Generate(mapgen.Params{
		Width:     sc.Width,
		Height:    sc.Height,
		Layout:    layout,
		Obstacles: sc.Obstacles,
		Loops:     sc.Loops,
		Weighted:  sc.Weighted,
		MinCost:   sc.MinCost,
		MaxCost:   sc.MaxCost,
		Seed:      w.seed,
		Keep:      []grid.Pos{w.start, w.goal},
		Connect:   sc.Connect,
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// options returns the search options shared by every run on w.
func (w *world) options(extra ...pathfind.Option) []pathfind.Option {
	return append([]pathfind.Option{pathfind.WithHeuristic(w.heuristic)}, extra...)
}
