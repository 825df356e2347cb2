package transition

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

type mockTarget struct {
	updates    int
	updateDt   float64
	dynamic    int
	persistent int
	bg         color.RGBA
}

func (m *mockTarget) Update(dt float64) {
	m.updates++
	m.updateDt += dt
}

func (m *mockTarget) DrawDynamic(s render.Surface) {
	m.dynamic++
	s.Text("dynamic", 0, 0, color.White)
}

func (m *mockTarget) DrawPersistent(s render.Surface) {
	m.persistent++
	s.Text("persistent", 0, 0, color.White)
}

func (m *mockTarget) Background() color.Color { return m.bg }

func TestCrossFade_Completion(t *testing.T) {
	to := &mockTarget{}
	tr := NewCrossFade(&mockTarget{}, to, 1.0).(*CrossFade)

	assert.False(t, tr.IsComplete())
	assert.Equal(t, uint8(255), tr.Alpha())

	tr.Update(0.4)
	assert.False(t, tr.IsComplete())
	assert.InDelta(t, 0.4, tr.Progress(), 1e-9)
	assert.Equal(t, uint8(153), tr.Alpha())

	tr.Update(0.7)
	assert.True(t, tr.IsComplete())
	assert.Equal(t, 1.0, tr.Progress())
	assert.Equal(t, uint8(0), tr.Alpha())

	// incoming scene is advanced with the transition
	assert.Equal(t, 2, to.updates)
	assert.InDelta(t, 1.1, to.updateDt, 1e-9)
}

func TestCrossFade_AlphaAtExactDuration(t *testing.T) {
	tr := NewCrossFade(nil, &mockTarget{}, 1.0).(*CrossFade)
	tr.Update(1.0)
	assert.True(t, tr.IsComplete())
	assert.Equal(t, uint8(0), tr.Alpha())
}

func TestCrossFade_ZeroDuration(t *testing.T) {
	for _, d := range []float64{0, -1} {
		tr := NewCrossFade(nil, &mockTarget{}, d)
		assert.True(t, tr.IsComplete())
		assert.Equal(t, 1.0, tr.Progress())
	}
}

func TestCrossFade_DrawOrder(t *testing.T) {
	to := &mockTarget{bg: color.RGBA{10, 20, 30, 255}}
	tr := NewCrossFade(nil, to, 1.0)
	tr.Update(0.5)

	rec := render.NewRecorder(800, 600)
	tr.Draw(rec)

	ops := rec.Ops()
	require.Len(t, ops, 4)
	assert.Equal(t, render.OpFill, ops[0].Kind)
	assert.Equal(t, "dynamic", ops[1].Text)
	assert.Equal(t, render.OpFillRect, ops[2].Kind)
	assert.Equal(t, color.NRGBA{10, 20, 30, 128}, ops[2].Color)
	assert.Equal(t, 800.0, ops[2].W)
	assert.Equal(t, "persistent", ops[3].Text)
}

func TestCrossFade_NoOverlayWhenDone(t *testing.T) {
	to := &mockTarget{}
	tr := NewCrossFade(nil, to, 0.5)
	tr.Update(0.5)

	rec := render.NewRecorder(10, 10)
	tr.Draw(rec)
	assert.Equal(t, 0, rec.Count(render.OpFillRect))
	assert.Equal(t, 1, to.dynamic)
	assert.Equal(t, 1, to.persistent)
}
