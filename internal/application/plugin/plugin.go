// Package plugin bundles the registry tables every piece of content
// registers into, and runs the static discovery pass at startup.
package plugin

import (
	"github.com/younwookim/retroshell/internal/application/event"
	"github.com/younwookim/retroshell/internal/application/layer"
	"github.com/younwookim/retroshell/internal/application/playmode"
	"github.com/younwookim/retroshell/internal/application/registry"
	"github.com/younwookim/retroshell/internal/application/scene"
	"github.com/younwookim/retroshell/internal/application/transition"
	"github.com/younwookim/retroshell/internal/domain/theme"
	"github.com/younwookim/retroshell/internal/infrastructure/logging"
)

// Env is what a scene factory gets to build its scene
type Env struct {
	Deps      scene.Deps
	Navigator scene.Navigator
	Bus       *event.Bus
	PlayModes *registry.Table[playmode.Factory]
	Themes    *registry.Table[theme.Factory]

	// Quit asks the host to shut down. It may be nil.
	Quit func()
}

// RequestQuit calls Quit when one is set
func (e *Env) RequestQuit() {
	if e.Quit != nil {
		e.Quit()
	}
}

// SceneFactory builds a scene
type SceneFactory func(env *Env) scene.Scene

// Plugins holds one table per kind of content
type Plugins struct {
	Scenes      *registry.Table[SceneFactory]
	Layers      *registry.Table[layer.Factory]
	Effects     *registry.Table[layer.Factory]
	Themes      *registry.Table[theme.Factory]
	Transitions *registry.Table[transition.Factory]
	PlayModes   *registry.Table[playmode.Factory]
}

// New creates empty tables that log through logger
func New(logger logging.Logger) *Plugins {
	return &Plugins{
		Scenes:      registry.NewTable[SceneFactory]("scene", logger),
		Layers:      registry.NewTable[layer.Factory]("layer", logger),
		Effects:     registry.NewTable[layer.Factory]("effect", logger),
		Themes:      registry.NewTable[theme.Factory]("theme", logger),
		Transitions: registry.NewTable[transition.Factory]("transition", logger),
		PlayModes:   registry.NewTable[playmode.Factory]("play mode", logger),
	}
}

// Plugin is a source of content
type Plugin interface {
	Name() string
	Register(p *Plugins)
}

type funcPlugin struct {
	name string
	fn   func(p *Plugins)
}

func (f funcPlugin) Name() string        { return f.name }
func (f funcPlugin) Register(p *Plugins) { f.fn(p) }

// Func turns a registration function into a Plugin
func Func(name string, fn func(p *Plugins)) Plugin {
	return funcPlugin{name: name, fn: fn}
}

// Discover registers every plugin, in order. It runs once, before any
// scene is entered.
func Discover(p *Plugins, logger logging.Logger, plugins ...Plugin) {
	if logger == nil {
		logger = logging.NoopLogger{}
	}

	for _, pl := range plugins {
		logger.Infof("plugin", "loading %s", pl.Name())
		pl.Register(p)
	}

	logger.Infof("plugin", "discovered %d scenes, %d layers, %d effects, %d themes, %d transitions, %d play modes",
		p.Scenes.Len(), p.Layers.Len(), p.Effects.Len(), p.Themes.Len(), p.Transitions.Len(), p.PlayModes.Len())
}
