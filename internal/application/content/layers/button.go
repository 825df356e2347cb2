package layers

import (
	"image"
	"image/color"

	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// drawButton draws a label centered in rect. The selected button gets an
// outline.
func drawButton(dst render.Surface, font render.Font, rect image.Rectangle, label string, selected bool, normal, active, outline color.Color) {
	c := normal
	if selected {
		c = active
		dst.StrokeRect(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), 2, outline)
	}

	w, h := font.Measure(label)
	x := rect.Min.X + (rect.Dx()-w)/2
	y := rect.Min.Y + (rect.Dy()-h)/2
	dst.Text(label, x, y, c)
}
