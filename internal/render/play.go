package render

import (
	"context"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/katalvlaran/gridpath/pathfind"
)

// clearScreen homes the cursor and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// Player replays a step stream as an animation.
type Player struct {
	Out      io.Writer
	Renderer Renderer
	Delay    time.Duration // pause after each frame
	Clear    bool          // clear the terminal before each frame

	// Caption, if set, is printed under every frame.
	Caption func(st pathfind.Step, n int) string
}

// Play pulls steps one at a time, drawing each over base and pausing Delay
// between frames. It stops early when ctx is done and returns ctx's error;
// the search behind steps is abandoned with it. last and n describe the
// final step drawn.
func (p *Player) Play(ctx context.Context, base Frame, steps iter.Seq[pathfind.Step]) (last pathfind.Step, n int, err error) {
	var tick <-chan time.Time
	if p.Delay > 0 {
		t := time.NewTicker(p.Delay)
		defer t.Stop()
		tick = t.C
	}

	for st := range steps {
		if err := ctx.Err(); err != nil {
			return last, n, err
		}
		last, n = st, n+1
		if err := p.draw(base.WithStep(st), st, n); err != nil {
			return last, n, err
		}
		if tick == nil || st.Complete {
			continue
		}
		select {
		case <-ctx.Done():
			return last, n, ctx.Err()
		case <-tick:
		}
	}
	return last, n, nil
}

func (p *Player) draw(f Frame, st pathfind.Step, n int) error {
	out := p.Renderer.Render(f)
	if p.Clear {
		out = clearScreen + out
	}
	if p.Caption != nil {
		out += "\n" + p.Caption(st, n)
	}
	if _, err := fmt.Fprintln(p.Out, out); err != nil {
		return fmt.Errorf("render: write frame: %w", err)
	}
	return nil
}
