// Package playmode hosts the small games that run inside the play area.
package playmode

import (
	"image"
	"math/rand"

	"github.com/younwookim/retroshell/internal/application/event"
	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/logging"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// PlayMode is a game that runs inside the play area
type PlayMode interface {
	OnEnter()
	Update(dt float64)
	Draw(s render.Surface)
	OnInput(ev input.Event) bool
}

// Resizer is implemented by modes that can follow a change of the play
// area without restarting
type Resizer interface {
	Resize(area image.Rectangle)
}

// Context is what a play mode is built with
type Context struct {
	// Area is the play area in screen coordinates. Modes simulate in
	// area-local coordinates and offset by Area.Min when drawing.
	Area    image.Rectangle
	Font    render.Font
	Runtime *config.Runtime
	Bus     *event.Bus
	Logger  logging.Logger
	Rand    *rand.Rand
}

// Factory builds a play mode
type Factory func(ctx Context) PlayMode
