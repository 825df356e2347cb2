package scenes

import (
	"math/rand"

	"github.com/younwookim/retroshell/internal/application/content/layers"
	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/application/playmode"
	"github.com/younwookim/retroshell/internal/application/plugin"
	"github.com/younwookim/retroshell/internal/application/scene"
)

// padKeys translates on-screen controller buttons into the keys play
// modes understand
var padKeys = map[layers.PadButton]input.Key{
	layers.PadUp:    input.KeyW,
	layers.PadDown:  input.KeyS,
	layers.PadLeft:  input.KeyA,
	layers.PadRight: input.KeyD,
	layers.PadA:     input.KeySpace,
}

// Play hosts the selected play mode, with the on-screen controller when
// global controls are enabled
type Play struct {
	*scene.BaseScene
	env  *plugin.Env
	area *layers.PlayArea
	pad  *layers.DPad
}

func NewPlay(env *plugin.Env) scene.Scene {
	return &Play{BaseScene: scene.NewBaseScene(scene.KeyPlay, env.Deps), env: env}
}

func (p *Play) Area() *layers.PlayArea { return p.area }
func (p *Play) Pad() *layers.DPad      { return p.pad }

func (p *Play) OnEnter() {
	p.Populate()

	cfg := p.Runtime()
	p.area = layers.NewPlayArea(cfg, p.env.PlayModes, playmode.Context{
		Font:    p.Font(),
		Runtime: cfg,
		Bus:     p.env.Bus,
		Logger:  p.Logger(),
		Rand:    rand.New(rand.NewSource(cfg.Seed())),
	})
	p.Layers().Add(p.area)

	p.pad = nil
	if cfg.EnableGlobalControls() {
		if pad, ok := p.Spawn(layers.KeyDPad).(*layers.DPad); ok {
			pad.SetHandler(p.onPad)
			p.pad = pad
		}
	}
}

// OnExit drops the controller, which is persistent and would otherwise
// follow the user back to the menu
func (p *Play) OnExit() {
	if p.pad != nil {
		p.Layers().Remove(p.pad)
		p.pad = nil
	}
}

func (p *Play) onPad(b layers.PadButton, pressed bool) {
	if b == layers.PadB {
		if pressed {
			p.env.Navigator.Back()
		}
		return
	}

	key, ok := padKeys[b]
	if !ok || p.area == nil {
		return
	}
	if pressed {
		p.area.Games().OnInput(input.KeyPress(key))
	} else {
		p.area.Games().OnInput(input.KeyRelease(key))
	}
}

// Test shows the universal layers plus a spinning label
type Test struct {
	*scene.BaseScene
}

func NewTest(env *plugin.Env) scene.Scene {
	t := &Test{BaseScene: scene.NewBaseScene(scene.KeyTest, env.Deps)}
	t.AddExtra(layers.NewTestLayer(env.Deps.Font, env.Deps.Runtime))
	return t
}
