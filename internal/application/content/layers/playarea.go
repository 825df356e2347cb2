package layers

import (
	"image"

	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/application/layer"
	"github.com/younwookim/retroshell/internal/application/playmode"
	"github.com/younwookim/retroshell/internal/application/registry"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// PlayArea is the inset region a play mode runs in. Drawing of the mode is
// clipped to the area and pointer input outside it is ignored.
type PlayArea struct {
	layer.Base
	cfg   *config.Runtime
	games *playmode.GameManager
}

// NewPlayArea creates the area and loads the mode currently selected in
// cfg. ctx.Area is overwritten with the area rectangle.
func NewPlayArea(cfg *config.Runtime, modes *registry.Table[playmode.Factory], ctx playmode.Context) *PlayArea {
	p := &PlayArea{Base: layer.Base{Z: layer.ZRainEffect}, cfg: cfg}
	ctx.Area = p.Area()
	if ctx.Runtime == nil {
		ctx.Runtime = cfg
	}
	p.games = playmode.NewGameManager(modes, ctx)
	p.games.Load(cfg.SelectedGameMode())
	return p
}

// Area returns the play area in screen coordinates
func (p *PlayArea) Area() image.Rectangle {
	m := p.cfg.ScaleValue(PlayAreaMargin)
	return image.Rect(m, m, p.cfg.ScreenWidth()-m, p.cfg.ScreenHeight()-m)
}

func (p *PlayArea) Games() *playmode.GameManager { return p.games }

// sync pushes a changed screen size through to the running mode
func (p *PlayArea) sync() image.Rectangle {
	r := p.Area()
	p.games.Resize(r)
	return r
}

func (p *PlayArea) Update(dt float64) {
	p.sync()
	p.games.Update(dt)
}

func (p *PlayArea) Draw(dst render.Surface) {
	r := p.sync()
	dst.FillRect(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), p.cfg.Theme().Background)
	p.games.Draw(dst.Sub(r))
}

func (p *PlayArea) OnInput(ev input.Event) bool {
	if ev.IsPointer() && !image.Pt(ev.X, ev.Y).In(p.sync()) {
		return false
	}
	return p.games.OnInput(ev)
}
