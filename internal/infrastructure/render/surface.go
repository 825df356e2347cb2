// Package render defines the drawing surface layers paint on and its
// ebiten, terminal and in-memory implementations.
package render

import (
	"image"
	"image/color"
)

// Surface is a drawing target in screen pixel coordinates.
// Coordinates stay absolute on a Sub surface; drawing outside it is clipped.
type Surface interface {
	Bounds() image.Rectangle
	Fill(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, width float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	Line(x1, y1, x2, y2, width float64, c color.Color)
	// Text draws s with its top-left corner at (x, y)
	Text(s string, x, y int, c color.Color)
	Sub(r image.Rectangle) Surface
}

// Font measures text for layout
type Font interface {
	Measure(s string) (w, h int)
	LineHeight() int
}

// Size returns the width and height of a surface
func Size(s Surface) (int, int) {
	b := s.Bounds()
	return b.Dx(), b.Dy()
}

// WithAlpha returns c with its alpha channel replaced
func WithAlpha(c color.Color, a uint8) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}
