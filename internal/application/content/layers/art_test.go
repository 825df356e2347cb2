package layers

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/retroshell/internal/application/layer"
	"github.com/younwookim/retroshell/internal/domain/theme"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

func TestStretchLine(t *testing.T) {
	// the 7x13 face is 7px per character
	assert.Equal(t, "a      b", StretchLine("ab", testFont, 50))
	assert.Equal(t, "abc", StretchLine("abc", testFont, 10), "already wide enough")
	assert.Equal(t, "a", StretchLine("a", testFont, 100), "nothing to spread")

	w, _ := testFont.Measure(StretchLine("a.b.c", testFont, 300))
	assert.GreaterOrEqual(t, w, 300)
}

func TestStarArt_Draw(t *testing.T) {
	l := NewStarArt(testFont, newRuntime(t))
	require.NotNil(t, l)
	assert.True(t, l.Persistent())
	assert.Equal(t, layer.ZStarArt, l.OrderKey())

	rec := render.NewRecorder(800, 600)
	l.Draw(rec)

	ops := rec.Ops()
	require.Len(t, ops, len(starArt))
	// first line sits on the top margin, last on the bottom margin
	assert.Equal(t, float64(20-testFont.LineHeight()/2), ops[0].Y)
	assert.Equal(t, float64(580-testFont.LineHeight()/2), ops[len(ops)-1].Y)
	for _, op := range ops {
		w, _ := testFont.Measure(op.Text)
		assert.GreaterOrEqual(t, w, 800, "lines are stretched to the screen width")
	}
}

func TestBackgroundArt_Draw(t *testing.T) {
	l := NewBackgroundArt(testFont, newRuntime(t))
	rec := render.NewRecorder(800, 600)
	l.Draw(rec)

	ops := rec.Ops()
	require.Len(t, ops, len(backgroundArt))
	lh := testFont.LineHeight()
	assert.Equal(t, float64(300-lh/2), ops[0].Y)
	assert.Equal(t, float64(300-lh/2+lh), ops[1].Y)
}

func TestInstruction_Draw(t *testing.T) {
	cfg := newRuntime(t)
	l := NewInstruction(testFont, cfg)
	assert.False(t, l.Persistent())

	rec := render.NewRecorder(800, 600)
	l.Draw(rec)

	require.Len(t, rec.Ops(), 1)
	op := rec.Ops()[0]
	assert.Equal(t, InstructionText, op.Text)
	assert.Equal(t, 20.0, op.X)
	assert.Equal(t, 560.0, op.Y)
}

func TestBorder_FollowsTheme(t *testing.T) {
	cfg := newRuntime(t)
	l := NewBorder(nil, cfg)
	assert.True(t, l.Persistent())

	rec := render.NewRecorder(800, 600)
	l.Draw(rec)
	cfg.SetTheme(theme.Halloween())
	l.Draw(rec)

	ops := rec.Ops()
	require.Len(t, ops, 2)
	assert.Equal(t, render.OpStrokeRect, ops[0].Kind)
	assert.Equal(t, 800.0, ops[0].W)
	assert.Equal(t, 600.0, ops[0].H)

	want := theme.Halloween().Border
	assert.Equal(t, color.NRGBA{want.R, want.G, want.B, want.A}, ops[1].Color)
}
