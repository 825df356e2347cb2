// Package terminal runs the shell in a text terminal through tcell.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/infrastructure/logging"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// Frame is the per-frame surface of a built shell
type Frame interface {
	Step(dt float64, events []input.Event)
	Draw(s render.Surface)
	Resize(w, h int)
	Quitting() bool
}

// Runner drives a Frame from a tcell screen at a fixed frame rate
type Runner struct {
	screen tcell.Screen
	frame  Frame
	fps    int
	mouse  mouse
	logger logging.Logger
}

// New creates a runner over an initialized screen. Run finalizes it.
func New(screen tcell.Screen, frame Frame, fps int, logger logging.Logger) *Runner {
	if fps <= 0 {
		fps = 60
	}
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	return &Runner{screen: screen, frame: frame, fps: fps, logger: logger}
}

// Run polls events and steps frames until the shell quits, Ctrl-C is
// pressed or ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	r.screen.EnableMouse()
	r.resize()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 100)

	g.Go(func() error {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				// screen finalized
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer r.screen.Fini()
		return r.loop(ctx, events)
	})

	return g.Wait()
}

func (r *Runner) loop(ctx context.Context, events <-chan tcell.Event) error {
	dt := 1.0 / float64(r.fps)
	ticker := time.NewTicker(time.Second / time.Duration(r.fps))
	defer ticker.Stop()

	var pending []input.Event
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if k, ok := ev.(*tcell.EventKey); ok && k.Key() == tcell.KeyCtrlC {
				r.logger.Infof("terminal", "interrupted")
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				r.resize()
				r.screen.Sync()
				continue
			}
			pending = append(pending, r.mouse.translate(ev)...)

		case <-ticker.C:
			r.frame.Step(dt, pending)
			pending = pending[:0]
			if r.frame.Quitting() {
				return nil
			}
			r.Draw()
		}
	}
}

// Draw rasterizes one frame onto the screen
func (r *Runner) Draw() {
	cols, rows := r.screen.Size()
	cells := render.NewCellSurface(cols, rows)
	r.frame.Draw(cells)
	cells.Flush(r.screen)
}

func (r *Runner) resize() {
	cols, rows := r.screen.Size()
	r.frame.Resize(cols*render.CellWidth, rows*render.CellHeight)
}
