package scene

import (
	"image/color"
	"slices"

	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/application/layer"
	"github.com/younwookim/retroshell/internal/application/registry"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/logging"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// Categories of the layer table that every scene gets, in population order
var UniversalCategories = []string{"background", "effect", "foreground"}

// Deps are the shared services every scene is built from
type Deps struct {
	Layers  *layer.Manager
	Table   *registry.Table[layer.Factory]
	Effects *registry.Table[layer.Factory]
	Font    render.Font
	Runtime *config.Runtime
	Logger  logging.Logger
}

// BaseScene implements Scene over the shared layer manager.
// Concrete scenes embed it and extend OnEnter.
type BaseScene struct {
	name  string
	deps  Deps
	extra []layer.Layer
}

// NewBaseScene creates a base scene called name
func NewBaseScene(name string, deps Deps) *BaseScene {
	if deps.Logger == nil {
		deps.Logger = logging.NoopLogger{}
	}
	return &BaseScene{name: name, deps: deps}
}

func (b *BaseScene) Name() string             { return b.name }
func (b *BaseScene) Layers() *layer.Manager   { return b.deps.Layers }
func (b *BaseScene) Font() render.Font        { return b.deps.Font }
func (b *BaseScene) Runtime() *config.Runtime { return b.deps.Runtime }
func (b *BaseScene) Logger() logging.Logger   { return b.deps.Logger }
func (b *BaseScene) Background() color.Color  { return b.deps.Runtime.Theme().Background }
func (b *BaseScene) Extra() []layer.Layer     { return slices.Clone(b.extra) }

// AddExtra appends a scene-specific layer that Populate adds after the
// registered ones
func (b *BaseScene) AddExtra(l layer.Layer) {
	b.extra = append(b.extra, l)
}

// Populate rebuilds the layer set: persistent layers are kept, then the
// universal categories, the registered effects and the extra layers are added.
func (b *BaseScene) Populate() {
	lm := b.deps.Layers
	lm.Clear()

	if b.deps.Table != nil {
		for _, cat := range UniversalCategories {
			for _, e := range b.deps.Table.ByCategory(cat) {
				b.instantiate(e)
			}
		}
	}

	if b.deps.Effects != nil {
		for _, key := range b.deps.Effects.Keys() {
			e, _ := b.deps.Effects.Lookup(key)
			b.instantiate(e)
		}
	}

	for _, l := range b.extra {
		if lm.Contains(func(existing layer.Layer) bool { return layer.Same(existing, l) }) {
			continue
		}
		lm.Add(l)
	}
}

func (b *BaseScene) instantiate(e registry.Entry[layer.Factory]) layer.Layer {
	if b.deps.Layers.HasKey(e.Key) {
		return nil
	}

	l := e.Factory(b.deps.Font, b.deps.Runtime)
	if l == nil {
		b.deps.Logger.Warnf("scene", "%s: layer %q could not be built, skipping", b.name, e.Key)
		return nil
	}

	if k, ok := l.(layer.Keyed); ok {
		k.SetRegistryKey(e.Key)
	}
	b.deps.Layers.Add(l)
	return l
}

// Spawn builds the layer registered under key and adds it.
// It returns nil when the key is unknown or the factory fails.
func (b *BaseScene) Spawn(key string) layer.Layer {
	if b.deps.Table == nil {
		return nil
	}
	e, ok := b.deps.Table.Lookup(key)
	if !ok {
		b.deps.Logger.Warnf("scene", "%s: no layer registered as %q", b.name, key)
		return nil
	}
	return b.instantiate(e)
}

// OnEnter populates the scene
func (b *BaseScene) OnEnter() {
	b.Populate()
}

func (b *BaseScene) OnExit() {}

func (b *BaseScene) Update(dt float64) {
	b.deps.Layers.Update(dt)
}

func (b *BaseScene) Draw(s render.Surface) {
	s.Fill(b.Background())
	b.DrawDynamic(s)
	b.DrawPersistent(s)
}

func (b *BaseScene) DrawDynamic(s render.Surface) {
	b.deps.Layers.DrawDynamic(s)
}

func (b *BaseScene) DrawPersistent(s render.Surface) {
	b.deps.Layers.DrawPersistent(s)
}

// OnInput offers ev to input-capable layers from the highest order key down
func (b *BaseScene) OnInput(ev input.Event) bool {
	for _, l := range b.deps.Layers.Sorted(true) {
		h, ok := l.(layer.InputHandler)
		if !ok {
			continue
		}
		if h.OnInput(ev) {
			return true
		}
	}
	return false
}
