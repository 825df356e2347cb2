package spaceshooter

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/retroshell/internal/application/event"
	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/application/playmode"
	"github.com/younwookim/retroshell/internal/ecs"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

func newShooter(t *testing.T, bus *event.Bus) *Shooter {
	t.Helper()
	s := New(playmode.Context{Area: image.Rect(50, 50, 750, 550), Bus: bus}).(*Shooter)
	s.OnEnter()
	return s
}

func TestShooter_StartsCentered(t *testing.T) {
	s := newShooter(t, nil)
	w := s.World()
	require.NotNil(t, w)
	assert.Equal(t, ecs.Position{X: 350, Y: 250}, w.Position[w.ShipID])
}

func TestShooter_KeyMapping(t *testing.T) {
	s := newShooter(t, nil)
	w := s.World()
	ship := w.ShipID

	assert.True(t, s.OnInput(input.KeyPress(input.KeyA)))
	assert.Equal(t, ecs.TurnLeft, w.Heading[ship].Turn)
	assert.True(t, s.OnInput(input.KeyPress(input.KeyD)))
	assert.Equal(t, ecs.TurnRight, w.Heading[ship].Turn)

	assert.True(t, s.OnInput(input.KeyPress(input.KeyW)))
	assert.Equal(t, ecs.ThrustDuration, w.Thruster[ship].Forward)
	assert.True(t, s.OnInput(input.KeyPress(input.KeyS)))
	assert.Equal(t, ecs.ThrustDuration, w.Thruster[ship].Reverse)

	// key-ups and unrelated keys pass through
	assert.False(t, s.OnInput(input.KeyRelease(input.KeyW)))
	assert.False(t, s.OnInput(input.KeyPress(input.KeyEnter)))
}

func TestShooter_FirePublishesShot(t *testing.T) {
	bus := event.NewBus()
	var shots int
	event.Subscribe(bus, event.ShotFiredEvent, func(ev event.ShotFired) {
		shots++
		assert.Equal(t, Key, ev.Mode)
	})

	s := newShooter(t, bus)
	s.OnInput(input.KeyPress(input.KeySpace))
	s.OnInput(input.KeyPress(input.KeySpace))
	bus.Flush()

	assert.Equal(t, 2, shots)
	assert.Equal(t, 2, s.World().BulletCount())
}

func TestShooter_DrawOffsetsByArea(t *testing.T) {
	s := newShooter(t, nil)
	s.OnInput(input.KeyPress(input.KeySpace))

	rec := render.NewRecorder(800, 600)
	s.Draw(rec)

	assert.Equal(t, 3, rec.Count(render.OpLine))
	assert.Equal(t, 1, rec.Count(render.OpCircle))
	assert.Equal(t, []string{Label}, rec.Texts())

	for _, op := range rec.Ops() {
		if op.Kind == render.OpCircle {
			assert.Equal(t, 400.0, op.X)
			assert.Equal(t, 300.0, op.Y)
		}
		if op.Kind == render.OpText {
			assert.Equal(t, 60.0, op.X)
		}
	}
}

func TestShooter_UpdateBeforeEnterIsSafe(t *testing.T) {
	s := New(playmode.Context{}).(*Shooter)
	assert.NotPanics(t, func() {
		s.Update(0.1)
		s.Draw(render.NewRecorder(1, 1))
	})
	assert.False(t, s.OnInput(input.KeyPress(input.KeySpace)))
}
