package playmode

import (
	"image"
	"strings"

	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/application/registry"
	"github.com/younwookim/retroshell/internal/infrastructure/logging"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// GameManager loads play modes from the registry and forwards the frame
// loop to the current one
type GameManager struct {
	modes   *registry.Table[Factory]
	ctx     Context
	current PlayMode
	key     string
	logger  logging.Logger
}

// NewGameManager creates a manager that builds modes with ctx
func NewGameManager(modes *registry.Table[Factory], ctx Context) *GameManager {
	logger := ctx.Logger
	if logger == nil {
		logger = logging.NoopLogger{}
		ctx.Logger = logger
	}
	return &GameManager{modes: modes, ctx: ctx, logger: logger}
}

// Load builds and enters the mode registered under key.
// An unknown key keeps the current mode.
func (g *GameManager) Load(key string) bool {
	key = strings.ToLower(key)
	e, ok := g.modes.Lookup(key)
	if !ok {
		g.logger.Warnf("playmode", "game mode %q not found", key)
		return false
	}

	mode := e.Factory(g.ctx)
	if mode == nil {
		g.logger.Warnf("playmode", "game mode %q could not be built", key)
		return false
	}

	g.current = mode
	g.key = key
	mode.OnEnter()
	g.logger.Infof("playmode", "entered %q", key)
	return true
}

// Switch replaces the current mode with key
func (g *GameManager) Switch(key string) bool {
	return g.Load(key)
}

// Area returns the area new modes are built with
func (g *GameManager) Area() image.Rectangle {
	return g.ctx.Area
}

// Resize moves the play area. The current mode follows it if it is a
// Resizer, otherwise it is rebuilt for the new area.
func (g *GameManager) Resize(area image.Rectangle) {
	if area == g.ctx.Area {
		return
	}
	g.ctx.Area = area
	if g.current == nil {
		return
	}
	if r, ok := g.current.(Resizer); ok {
		r.Resize(area)
		return
	}
	g.Load(g.key)
}

func (g *GameManager) Key() string {
	return g.key
}

func (g *GameManager) Current() PlayMode {
	return g.current
}

func (g *GameManager) Update(dt float64) {
	if g.current != nil {
		g.current.Update(dt)
	}
}

func (g *GameManager) Draw(s render.Surface) {
	if g.current != nil {
		g.current.Draw(s)
	}
}

func (g *GameManager) OnInput(ev input.Event) bool {
	if g.current == nil {
		return false
	}
	return g.current.OnInput(ev)
}
