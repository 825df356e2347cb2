package playmode

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/application/registry"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

type mockMode struct {
	area        image.Rectangle
	enterCount  int
	updateCount int
	drawCount   int
	inputCount  int
}

func (m *mockMode) OnEnter()              { m.enterCount++ }
func (m *mockMode) Update(dt float64)     { m.updateCount++ }
func (m *mockMode) Draw(s render.Surface) { m.drawCount++ }
func (m *mockMode) OnInput(ev input.Event) bool {
	m.inputCount++
	return true
}

func newModes(built *[]*mockMode) *registry.Table[Factory] {
	modes := registry.NewTable[Factory]("play mode", nil)
	factory := func(ctx Context) PlayMode {
		m := &mockMode{area: ctx.Area}
		*built = append(*built, m)
		return m
	}
	modes.Register("Space Shooter", "", factory)
	modes.Register("Tower Defense", "", factory)
	modes.Register("broken", "", func(Context) PlayMode { return nil })
	return modes
}

func TestGameManager_Load(t *testing.T) {
	var built []*mockMode
	area := image.Rect(50, 50, 750, 550)
	g := NewGameManager(newModes(&built), Context{Area: area})

	assert.True(t, g.Load("SPACE SHOOTER"))
	assert.Equal(t, "space shooter", g.Key())
	assert.Len(t, built, 1)
	assert.Equal(t, 1, built[0].enterCount)
	assert.Equal(t, area, built[0].area)

	g.Update(0.1)
	g.Draw(render.NewRecorder(1, 1))
	assert.True(t, g.OnInput(input.KeyPress(input.KeyW)))
	assert.Equal(t, 1, built[0].updateCount)
	assert.Equal(t, 1, built[0].drawCount)
	assert.Equal(t, 1, built[0].inputCount)
}

func TestGameManager_UnknownKeepsCurrent(t *testing.T) {
	var built []*mockMode
	g := NewGameManager(newModes(&built), Context{})
	g.Load("space shooter")

	assert.False(t, g.Switch("pong"))
	assert.False(t, g.Switch("broken"))
	assert.Equal(t, "space shooter", g.Key())
	assert.Same(t, built[0], g.Current())

	assert.True(t, g.Switch("tower defense"))
	assert.Equal(t, "tower defense", g.Key())
}

func TestGameManager_EmptyIsSafe(t *testing.T) {
	var built []*mockMode
	g := NewGameManager(newModes(&built), Context{})
	assert.NotPanics(t, func() {
		g.Update(0.1)
		g.Draw(render.NewRecorder(1, 1))
	})
	assert.False(t, g.OnInput(input.KeyPress(input.KeyW)))
	assert.Nil(t, g.Current())
}

type resizingMode struct {
	mockMode
	resized []image.Rectangle
}

func (m *resizingMode) Resize(area image.Rectangle) { m.resized = append(m.resized, area) }

func TestGameManager_ResizeFollowsResizer(t *testing.T) {
	modes := registry.NewTable[Factory]("play mode", nil)
	var built []*resizingMode
	modes.Register("grow", "", func(ctx Context) PlayMode {
		m := &resizingMode{mockMode: mockMode{area: ctx.Area}}
		built = append(built, m)
		return m
	})
	g := NewGameManager(modes, Context{Area: image.Rect(0, 0, 100, 100)})
	g.Load("grow")

	small := image.Rect(10, 10, 60, 60)
	g.Resize(small)
	g.Resize(small)

	assert.Len(t, built, 1)
	assert.Equal(t, []image.Rectangle{small}, built[0].resized)
	assert.Equal(t, small, g.Area())
}

func TestGameManager_ResizeRebuildsOtherModes(t *testing.T) {
	var built []*mockMode
	g := NewGameManager(newModes(&built), Context{Area: image.Rect(0, 0, 100, 100)})
	g.Load("space shooter")

	small := image.Rect(10, 10, 60, 60)
	g.Resize(small)

	assert.Len(t, built, 2)
	assert.Equal(t, small, built[1].area)
	assert.Equal(t, 1, built[1].enterCount)
	assert.Same(t, built[1], g.Current())
	assert.Equal(t, "space shooter", g.Key())
}

func TestGameManager_ResizeWithoutModeKeepsArea(t *testing.T) {
	var built []*mockMode
	g := NewGameManager(newModes(&built), Context{})
	g.Resize(image.Rect(0, 0, 20, 20))

	assert.Empty(t, built)
	assert.Equal(t, image.Rect(0, 0, 20, 20), g.Area())
}
