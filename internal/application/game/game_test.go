package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// mockFrame is a test double for Frame
type mockFrame struct {
	steps     int
	lastDT    float64
	events    []input.Event
	quitAfter int
}

func (m *mockFrame) Step(dt float64, events []input.Event) {
	m.steps++
	m.lastDT = dt
	m.events = append(m.events, events...)
}

func (m *mockFrame) Draw(s render.Surface) {}

func (m *mockFrame) Quitting() bool {
	return m.quitAfter > 0 && m.steps >= m.quitAfter
}

type mockPoller struct {
	frames [][]input.Event
}

func (p *mockPoller) Poll() []input.Event {
	if len(p.frames) == 0 {
		return nil
	}
	ev := p.frames[0]
	p.frames = p.frames[1:]
	return ev
}

func TestGame_Update_StepsWithPolledEvents(t *testing.T) {
	frame := &mockFrame{}
	poller := &mockPoller{frames: [][]input.Event{
		{input.KeyPress(input.KeyW)},
		nil,
		{input.KeyRelease(input.KeyW)},
	}}
	g := New(frame, poller, render.DefaultFont(), 320, 240, 30)

	for i := 0; i < 3; i++ {
		assert.NoError(t, g.Update())
	}
	assert.Equal(t, 3, frame.steps)
	assert.InDelta(t, 1.0/30, frame.lastDT, 1e-12)
	assert.Equal(t, []input.Event{input.KeyPress(input.KeyW), input.KeyRelease(input.KeyW)}, frame.events)
}

func TestGame_Update_Terminates(t *testing.T) {
	frame := &mockFrame{quitAfter: 2}
	g := New(frame, &mockPoller{}, render.DefaultFont(), 320, 240, 60)

	assert.NoError(t, g.Update())
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, 2, frame.steps, "no steps after quitting")
}

func TestGame_DefaultDT(t *testing.T) {
	frame := &mockFrame{}
	g := New(frame, &mockPoller{}, render.DefaultFont(), 320, 240, 0)
	assert.NoError(t, g.Update())
	assert.InDelta(t, 1.0/60, frame.lastDT, 1e-12)

	g.SetDT(0.5)
	assert.NoError(t, g.Update())
	assert.Equal(t, 0.5, frame.lastDT)
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockFrame{}, &mockPoller{}, render.DefaultFont(), 320, 240, 60)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}
