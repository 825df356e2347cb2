// Package game hosts the shell inside ebiten's game loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// Frame is the per-frame surface of a built shell
type Frame interface {
	Step(dt float64, events []input.Event)
	Draw(s render.Surface)
	Quitting() bool
}

// Poller produces the input events of one frame
type Poller interface {
	Poll() []input.Event
}

// Game implements ebiten.Game on top of a shell frame.
type Game struct {
	frame   Frame
	poller  Poller
	font    *render.BitmapFont
	screenW int
	screenH int
	dt      float64
}

// New creates a game stepping frame at fps with events from poller
func New(frame Frame, poller Poller, font *render.BitmapFont, screenW, screenH, fps int) *Game {
	dt := 1.0 / 60.0
	if fps > 0 {
		dt = 1.0 / float64(fps)
	}
	return &Game{
		frame:   frame,
		poller:  poller,
		font:    font,
		screenW: screenW,
		screenH: screenH,
		dt:      dt,
	}
}

// Update steps the shell once. It returns ebiten.Termination after the
// shell asks to quit.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.frame.Quitting() {
		return ebiten.Termination
	}
	g.frame.Step(g.dt, g.poller.Poll())
	if g.frame.Quitting() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the shell.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.Draw(render.NewImageSurface(screen, g.font))
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
