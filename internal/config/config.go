// Package config loads and validates gridpath scenarios from YAML.
//
// A Scenario describes one run of the demo: the map (generated from a seed or
// given literally), the endpoints, the algorithm and the playback settings.
// Command-line flags override individual fields after loading.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/internal/mapgen"
	"github.com/katalvlaran/gridpath/pathfind"
)

// ErrInvalid is returned when a scenario fails validation.
var ErrInvalid = errors.New("config: invalid scenario")

// Scenario is the YAML-backed description of a run.
type Scenario struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Layout    string  `yaml:"layout"`    // "scatter" or "maze"
	Obstacles float64 `yaml:"obstacles"` // scatter: chance in [0,1] that a cell is blocked
	Loops     float64 `yaml:"loops"`     // maze: chance in [0,1] that a dividing wall is removed
	Weighted  bool    `yaml:"weighted"`
	MinCost   int     `yaml:"min_cost"`
	MaxCost   int     `yaml:"max_cost"`
	Seed      int64   `yaml:"seed"` // 0 picks a fresh seed per run
	Connect   bool    `yaml:"connect"` // open the fewest walls needed to join start and goal

	// Map, when set, replaces generation with literal rows ('#', '.', '1'-'9').
	Map []string `yaml:"map,omitempty"`

	Start     string `yaml:"start"` // "x,y"
	Goal      string `yaml:"goal"`
	Algorithm string `yaml:"algorithm"`
	Heuristic string `yaml:"heuristic"`

	Animate bool          `yaml:"animate"`
	Delay   time.Duration `yaml:"delay"`
	Color   bool          `yaml:"color"`
}

// Default returns the built-in scenario: a 24×24 weighted map with 20%
// obstacles, start and goal joined, solved by A* from (1,1) to (20,10).
func Default() Scenario {
	return Scenario{
		Width:     24,
		Height:    24,
		Layout:    mapgen.Scatter.String(),
		Obstacles: 0.2,
		Weighted:  true,
		MinCost:   1,
		MaxCost:   5,
		Seed:      1234,
		Connect:   true,
		Start:     "1,1",
		Goal:      "20,10",
		Algorithm: pathfind.AStar.String(),
		Heuristic: "manhattan",
		Delay:     50 * time.Millisecond,
	}
}

// Load reads a scenario file. Fields missing from the file keep their
// Default values.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes YAML over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Scenario, error) {
	sc := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return Scenario{}, fmt.Errorf("parse scenario yaml: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// Dimensions returns the effective width and height: those of the literal
// map when one is set, otherwise Width and Height.
func (s Scenario) Dimensions() (w, h int) {
	if len(s.Map) > 0 {
		return len(s.Map[0]), len(s.Map)
	}
	return s.Width, s.Height
}

// Endpoints parses Start and Goal.
func (s Scenario) Endpoints() (start, goal grid.Pos, err error) {
	if start, err = grid.ParsePos(s.Start); err != nil {
		return start, goal, fmt.Errorf("start: %w", err)
	}
	if goal, err = grid.ParsePos(s.Goal); err != nil {
		return start, goal, fmt.Errorf("goal: %w", err)
	}
	return start, goal, nil
}

// Validate reports every problem with s in one ErrInvalid.
func (s Scenario) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(s.Map) > 0 {
		if _, err := grid.Parse(s.Map...); err != nil {
			add("map: %v", err)
		}
	} else {
		if s.Width < 1 || s.Height < 1 {
			add("size %dx%d must be at least 1x1", s.Width, s.Height)
		}
		if _, err := mapgen.ParseLayout(s.Layout); err != nil {
			add("%v", err)
		}
		if s.Obstacles < 0 || s.Obstacles > 1 {
			add("obstacles %.2f outside [0,1]", s.Obstacles)
		}
		if s.Loops < 0 || s.Loops > 1 {
			add("loops %.2f outside [0,1]", s.Loops)
		}
		if s.Weighted {
			if s.MinCost < 1 {
				add("min_cost %d must be at least 1", s.MinCost)
			}
			if s.MaxCost < s.MinCost {
				add("max_cost %d below min_cost %d", s.MaxCost, s.MinCost)
			}
		}
	}

	w, h := s.Dimensions()
	start, goal, err := s.Endpoints()
	switch {
	case err != nil:
		add("%v", err)
	default:
		for _, ep := range []struct {
			name string
			p    grid.Pos
		}{{"start", start}, {"goal", goal}} {
			if ep.p.X < 0 || ep.p.Y < 0 || ep.p.X >= w || ep.p.Y >= h {
				add("%s %v outside %dx%d map", ep.name, ep.p, w, h)
			}
		}
	}

	if _, err := pathfind.ParseAlgorithm(s.Algorithm); err != nil {
		add("%v", err)
	}
	if _, err := heuristic.ByName(s.Heuristic); err != nil {
		add("%v", err)
	}
	if s.Delay < 0 {
		add("delay %v is negative", s.Delay)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
