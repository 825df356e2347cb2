package scene

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/application/layer"
	"github.com/younwookim/retroshell/internal/application/registry"
	"github.com/younwookim/retroshell/internal/domain/theme"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

type recordingLogger struct {
	warns []string
}

func (r *recordingLogger) Infof(component, format string, args ...any) {}
func (r *recordingLogger) Warnf(component, format string, args ...any) {
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Errorf(component, format string, args ...any) {}

type stubLayer struct {
	layer.Base
	name    string
	consume bool
	inputs  int
	updates int
}

func (s *stubLayer) Update(dt float64) { s.updates++ }

type inputLayer struct {
	stubLayer
}

func (l *inputLayer) OnInput(ev input.Event) bool {
	l.inputs++
	return l.consume
}

func stubFactory(name string, z int, persist bool, built *int) layer.Factory {
	return func(font render.Font, cfg *config.Runtime) layer.Layer {
		*built++
		return &stubLayer{Base: layer.Base{Z: z, Persist: persist}, name: name}
	}
}

func layerNames(m *layer.Manager) []string {
	var out []string
	for _, l := range m.Sorted(false) {
		switch v := l.(type) {
		case *stubLayer:
			out = append(out, v.name)
		case *inputLayer:
			out = append(out, v.name)
		}
	}
	return out
}

func newDeps(logger *recordingLogger) (Deps, *registry.Table[layer.Factory], *registry.Table[layer.Factory]) {
	table := registry.NewTable[layer.Factory]("layer", nil)
	effects := registry.NewTable[layer.Factory]("effect", nil)
	return Deps{
		Layers:  layer.NewManager(),
		Table:   table,
		Effects: effects,
		Font:    render.DefaultFont(),
		Runtime: config.NewRuntime(config.Defaults(), theme.Default()),
		Logger:  logger,
	}, table, effects
}

func TestBaseScene_PopulateOrderAndCategories(t *testing.T) {
	deps, table, effects := newDeps(&recordingLogger{})
	var built int
	table.Register("star_art", "background", stubFactory("stars", layer.ZStarArt, true, &built))
	table.Register("border", "foreground", stubFactory("border", layer.ZBorder, true, &built))
	table.Register("instruction", "", stubFactory("instr", layer.ZInstructions, false, &built))
	table.Register("menu_layer", "menu_only", stubFactory("menu", layer.ZMenu, false, &built))
	effects.Register("rain_effect", "effect", stubFactory("rain", layer.ZRainEffect, true, &built))

	s := NewBaseScene("menu", deps)
	s.OnEnter()

	assert.Equal(t, []string{"stars", "rain", "instr", "border"}, layerNames(deps.Layers))
	assert.Equal(t, 4, built)
}

func TestBaseScene_PersistentLayersNotDuplicated(t *testing.T) {
	deps, table, effects := newDeps(&recordingLogger{})
	var built int
	table.Register("star_art", "background", stubFactory("stars", layer.ZStarArt, true, &built))
	table.Register("instruction", "", stubFactory("instr", layer.ZInstructions, false, &built))
	effects.Register("rain_effect", "", stubFactory("rain", layer.ZRainEffect, true, &built))

	a := NewBaseScene("a", deps)
	b := NewBaseScene("b", deps)
	a.OnEnter()
	b.OnEnter()
	a.OnEnter()

	assert.Equal(t, 3, deps.Layers.Len())
	// persistent layers built once, instruction rebuilt per entry
	assert.Equal(t, 5, built)
}

func TestBaseScene_NilFactorySkippedAndLogged(t *testing.T) {
	logger := &recordingLogger{}
	deps, table, _ := newDeps(logger)
	table.Register("broken", "foreground", func(render.Font, *config.Runtime) layer.Layer { return nil })
	var built int
	table.Register("border", "foreground", stubFactory("border", layer.ZBorder, true, &built))

	s := NewBaseScene("menu", deps)
	assert.NotPanics(t, s.OnEnter)
	assert.Equal(t, []string{"border"}, layerNames(deps.Layers))
	require.Len(t, logger.warns, 1)
	assert.Contains(t, logger.warns[0], "broken")
}

func TestBaseScene_ExtraLayersAppended(t *testing.T) {
	deps, _, _ := newDeps(&recordingLogger{})
	s := NewBaseScene("test", deps)
	extra := &stubLayer{Base: layer.Base{Z: layer.ZTest}, name: "extra"}
	s.AddExtra(extra)

	s.OnEnter()
	s.OnEnter()
	assert.Equal(t, []string{"extra"}, layerNames(deps.Layers))
	assert.Len(t, s.Extra(), 1)
}

func TestBaseScene_SpawnByKey(t *testing.T) {
	logger := &recordingLogger{}
	deps, table, _ := newDeps(logger)
	var built int
	table.Register("menu_layer", "menu_only", stubFactory("menu", layer.ZMenu, false, &built))

	s := NewBaseScene("menu", deps)
	s.OnEnter()
	assert.Equal(t, 0, deps.Layers.Len())

	l := s.Spawn("MENU_LAYER")
	require.NotNil(t, l)
	assert.True(t, deps.Layers.HasKey("menu_layer"))

	assert.Nil(t, s.Spawn("missing"))
	assert.Len(t, logger.warns, 1)
}

func TestBaseScene_InputTopmostFirst(t *testing.T) {
	deps, _, _ := newDeps(&recordingLogger{})
	low := &inputLayer{stubLayer{Base: layer.Base{Z: 1}, name: "low", consume: true}}
	high := &inputLayer{stubLayer{Base: layer.Base{Z: 5}, name: "high", consume: true}}
	passive := &stubLayer{Base: layer.Base{Z: 9}, name: "passive"}
	deps.Layers.Add(low)
	deps.Layers.Add(high)
	deps.Layers.Add(passive)

	s := NewBaseScene("x", deps)
	assert.True(t, s.OnInput(input.KeyPress(input.KeyW)))
	assert.Equal(t, 1, high.inputs)
	assert.Equal(t, 0, low.inputs)

	high.consume = false
	assert.True(t, s.OnInput(input.KeyPress(input.KeyW)))
	assert.Equal(t, 2, high.inputs)
	assert.Equal(t, 1, low.inputs)

	low.consume = false
	assert.False(t, s.OnInput(input.KeyPress(input.KeyW)))
}

func TestBaseScene_DrawFillsBackgroundFirst(t *testing.T) {
	deps, _, _ := newDeps(&recordingLogger{})
	s := NewBaseScene("x", deps)
	rec := render.NewRecorder(100, 100)
	s.Draw(rec)

	ops := rec.Ops()
	require.Len(t, ops, 1)
	assert.Equal(t, render.OpFill, ops[0].Kind)
	assert.Equal(t, uint8(0), ops[0].Color.R)
}

func TestBaseScene_UpdateDelegates(t *testing.T) {
	deps, _, _ := newDeps(&recordingLogger{})
	l := &stubLayer{name: "l"}
	deps.Layers.Add(l)
	s := NewBaseScene("x", deps)
	s.Update(0.1)
	assert.Equal(t, 1, l.updates)
}

// valueLayer is a layer whose value cannot be compared
type valueLayer []string

func (valueLayer) OrderKey() int         { return layer.ZTest }
func (valueLayer) Persistent() bool      { return false }
func (valueLayer) Update(dt float64)     {}
func (valueLayer) Draw(s render.Surface) {}

func TestBaseScene_UncomparableExtraLayer(t *testing.T) {
	deps, _, _ := newDeps(&recordingLogger{})
	s := NewBaseScene("test", deps)
	s.AddExtra(valueLayer{"a"})
	s.AddExtra(&stubLayer{Base: layer.Base{Z: layer.ZTest}, name: "extra"})

	assert.NotPanics(t, s.OnEnter)
	assert.NotPanics(t, s.OnEnter)
	assert.Equal(t, 2, deps.Layers.Len())
	assert.Equal(t, []string{"extra"}, layerNames(deps.Layers))
}
