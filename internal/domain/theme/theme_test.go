package theme

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	names := BuiltinNames()
	assert.Equal(t, []string{"christmas", "default", "halloween", "light", "pastel", "retro80", "starwars"}, names)

	for _, name := range names {
		th := Builtins()[name]()
		assert.Equal(t, name, th.Name)
		assert.Len(t, th.Particles, 2, name)
		assert.Equal(t, uint8(255), th.Background.A, name)
	}
}

func TestDefaultColors(t *testing.T) {
	th := Default()
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, th.Background)
	assert.Equal(t, color.RGBA{57, 255, 20, 255}, th.Title)
	assert.Equal(t, color.RGBA{200, 0, 200, 255}, th.ButtonNormal)
}

func TestLerp(t *testing.T) {
	a := Default()
	b := Light()

	t.Run("endpoints", func(t *testing.T) {
		assert.Equal(t, a, Lerp(a, b, 0))
		assert.Equal(t, b, Lerp(a, b, 1))
		assert.Equal(t, a, Lerp(a, b, -1))
		assert.Equal(t, b, Lerp(a, b, 2))
	})

	t.Run("midpoint", func(t *testing.T) {
		mid := Lerp(a, b, 0.5)
		// (0 + 245) / 2 rounds up
		assert.Equal(t, color.RGBA{123, 123, 123, 255}, mid.Background)
		assert.Equal(t, "light", mid.Name)
		require.Len(t, mid.Particles, 2)
		assert.Equal(t, color.RGBA{190, 165, 218, 255}, mid.Particles[0])
	})

	t.Run("palette length mismatch snaps", func(t *testing.T) {
		c := b
		c.Particles = []color.RGBA{{1, 2, 3, 255}}
		mid := Lerp(a, c, 0.5)
		assert.Equal(t, c.Particles, mid.Particles)
	})
}

func TestBlender(t *testing.T) {
	from := Default()
	to := Light()

	b := NewBlender(from, to, 1.0)
	assert.Equal(t, from, b.Current())
	assert.False(t, b.Done)

	mid := b.Update(0.5)
	assert.False(t, b.Done)
	assert.Equal(t, color.RGBA{123, 123, 123, 255}, mid.Background)

	end := b.Update(0.6)
	assert.True(t, b.Done)
	assert.Equal(t, to, end)
	assert.Equal(t, to, b.Target())

	// further updates stay on target
	assert.Equal(t, to, b.Update(1))
}

func TestBlender_ZeroDurationSnaps(t *testing.T) {
	b := NewBlender(Default(), Pastel(), 0)
	assert.True(t, b.Done)
	assert.Equal(t, Pastel(), b.Current())
}

func TestLerpPalette(t *testing.T) {
	a := []color.RGBA{{0, 0, 0, 255}, {100, 100, 100, 255}}
	b := []color.RGBA{{200, 200, 200, 255}, {100, 100, 100, 255}}

	mid := LerpPalette(a, b, 0.5)
	assert.Equal(t, color.RGBA{100, 100, 100, 255}, mid[0])
	assert.Equal(t, color.RGBA{100, 100, 100, 255}, mid[1])

	short := []color.RGBA{{1, 2, 3, 255}}
	assert.Equal(t, short, LerpPalette(a, short, 0.1), "length mismatch snaps to target")

	out := LerpPalette(a, b, 1)
	out[0] = color.RGBA{}
	assert.Equal(t, uint8(200), b[0].R, "result must not alias the target")
}
