// Package transition animates the switch from one scene to the next.
package transition

import (
	"image/color"
	"math"

	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// Target is the part of a scene a transition drives
type Target interface {
	Update(dt float64)
	DrawDynamic(s render.Surface)
	DrawPersistent(s render.Surface)
	Background() color.Color
}

// Transition is an in-flight scene change
type Transition interface {
	Update(dt float64)
	Draw(s render.Surface)
	IsComplete() bool
	Progress() float64
}

// Factory builds a transition between two scenes. from is nil on the first scene.
type Factory func(from, to Target, duration float64) Transition

// CrossFade fades the incoming scene in from its background color.
// Persistent layers are drawn above the fade so they never flicker.
type CrossFade struct {
	from     Target
	to       Target
	duration float64
	elapsed  float64
}

// NewCrossFade creates a cross-fade. It satisfies Factory.
func NewCrossFade(from, to Target, duration float64) Transition {
	return &CrossFade{from: from, to: to, duration: duration}
}

// Update advances the fade and the incoming scene
func (c *CrossFade) Update(dt float64) {
	c.elapsed += dt
	if c.to != nil {
		c.to.Update(dt)
	}
}

// Progress returns elapsed/duration clamped to [0, 1]
func (c *CrossFade) Progress() float64 {
	if c.duration <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, c.elapsed/c.duration))
}

// IsComplete reports whether the full duration has elapsed
func (c *CrossFade) IsComplete() bool {
	return c.elapsed >= c.duration
}

// Alpha is the opacity of the overlay covering the incoming scene
func (c *CrossFade) Alpha() uint8 {
	return uint8(math.Round((1 - c.Progress()) * 255))
}

func (c *CrossFade) Draw(s render.Surface) {
	if c.to == nil {
		return
	}
	bg := c.to.Background()
	s.Fill(bg)
	c.to.DrawDynamic(s)

	if a := c.Alpha(); a > 0 {
		b := s.Bounds()
		s.FillRect(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()), render.WithAlpha(bg, a))
	}

	c.to.DrawPersistent(s)
}
