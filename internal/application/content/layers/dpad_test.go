package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

type padCall struct {
	button  PadButton
	pressed bool
}

func newTestPad(t *testing.T) (*DPad, *[]padCall) {
	t.Helper()
	l := NewDPad(testFont, newRuntime(t))
	require.NotNil(t, l)
	d := l.(*DPad)
	var calls []padCall
	d.SetHandler(func(b PadButton, pressed bool) { calls = append(calls, padCall{b, pressed}) })
	return d, &calls
}

// At 800x600 the pad center is (200, 420), buttons are 100px with 120px
// between centers, A sits at (700, 350) and B at (590, 500), radius 60.
func TestDPad_HitTest(t *testing.T) {
	d, _ := newTestPad(t)

	tests := []struct {
		name string
		x, y int
		want PadButton
		hit  bool
	}{
		{"up center", 200, 300, PadUp, true},
		{"down center", 200, 540, PadDown, true},
		{"left center", 80, 420, PadLeft, true},
		{"right center", 320, 420, PadRight, true},
		{"up inflated edge", 145, 300, PadUp, true},
		{"between buttons", 135, 300, 0, false},
		{"pad center", 200, 420, 0, false},
		{"A center", 700, 350, PadA, true},
		{"A inflated", 770, 350, PadA, true},
		{"A beyond inflation", 775, 350, 0, false},
		{"B center", 590, 500, PadB, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.HitTest(tt.x, tt.y)
			assert.Equal(t, tt.hit, ok)
			if tt.hit {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDPad_Keys(t *testing.T) {
	d, calls := newTestPad(t)

	assert.True(t, d.OnInput(input.KeyPress(input.KeyW)))
	assert.True(t, d.OnInput(input.KeyPress(input.KeyW)), "repeat is swallowed")
	assert.True(t, d.Pressed(PadUp))
	assert.True(t, d.OnInput(input.KeyRelease(input.KeyW)))
	assert.False(t, d.Pressed(PadUp))

	d.OnInput(input.KeyPress(input.KeyEnter))
	d.OnInput(input.KeyPress(input.KeyQ))
	assert.False(t, d.OnInput(input.KeyPress(input.KeyX)))

	assert.Equal(t, []padCall{
		{PadUp, true},
		{PadUp, false},
		{PadA, true},
		{PadB, true},
	}, *calls)
}

func TestDPad_PointerReleaseAnywhere(t *testing.T) {
	d, calls := newTestPad(t)

	assert.True(t, d.OnInput(input.Pointer(input.PointerDown, 700, 350)))
	assert.True(t, d.Pressed(PadA))
	assert.False(t, d.OnInput(input.Pointer(input.PointerDown, 10, 10)))

	assert.True(t, d.OnInput(input.Pointer(input.PointerUp, 10, 10)))
	assert.False(t, d.Pressed(PadA))
	assert.False(t, d.OnInput(input.Pointer(input.PointerUp, 10, 10)), "nothing left to release")

	assert.Equal(t, []padCall{{PadA, true}, {PadA, false}}, *calls)
}

func TestDPad_NoHandler(t *testing.T) {
	d := NewDPad(nil, newRuntime(t)).(*DPad)
	assert.NotPanics(t, func() { d.OnInput(input.KeyPress(input.KeyD)) })
	assert.True(t, d.Pressed(PadRight))
	assert.True(t, d.Persistent())
}

func TestDPad_Draw(t *testing.T) {
	d, _ := newTestPad(t)
	rec := render.NewRecorder(800, 600)
	d.Draw(rec)

	assert.Equal(t, 4, rec.Count(render.OpFillRect))
	assert.Equal(t, 2, rec.Count(render.OpCircle))
	assert.Equal(t, []string{"A", "B"}, rec.Texts())
}

func TestPadButton_String(t *testing.T) {
	assert.Equal(t, "up", PadUp.String())
	assert.Equal(t, "B", PadB.String())
	assert.Equal(t, "Unknown", PadButton(42).String())
}
