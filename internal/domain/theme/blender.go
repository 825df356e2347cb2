package theme

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Blender moves a theme toward a target over a fixed duration.
// Call Update(dt) each frame and read Current().
type Blender struct {
	from    Theme
	to      Theme
	current Theme
	tween   *gween.Tween
	Done    bool
}

// NewBlender creates a blender starting at from. A non-positive duration
// snaps straight to the target.
func NewBlender(from, to Theme, duration float64) *Blender {
	b := &Blender{from: from, to: to, current: from}
	if duration <= 0 {
		b.current = to
		b.Done = true
		return b
	}
	b.tween = gween.New(0, 1, float32(duration), ease.Linear)
	return b
}

// Update advances the blend by dt seconds
func (b *Blender) Update(dt float64) Theme {
	if b.Done {
		return b.current
	}

	t, finished := b.tween.Update(float32(dt))
	if finished {
		b.current = b.to
		b.Done = true
		return b.current
	}

	b.current = Lerp(b.from, b.to, float64(t))
	return b.current
}

// Current returns the blended theme for this frame
func (b *Blender) Current() Theme {
	return b.current
}

// Target returns the theme the blend ends on
func (b *Blender) Target() Theme {
	return b.to
}
