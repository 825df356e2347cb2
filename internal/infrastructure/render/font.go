package render

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// BitmapFont measures text set in a fixed x/image font face
type BitmapFont struct {
	Face font.Face

	// built on first draw; keeps ebiten's glyph cache across frames
	goX *text.GoXFace
}

// DefaultFont returns the 7x13 face used by every backend
func DefaultFont() *BitmapFont {
	return &BitmapFont{Face: basicfont.Face7x13}
}

// Measure returns the advance width and line height of s
func (f *BitmapFont) Measure(s string) (int, int) {
	return font.MeasureString(f.Face, s).Ceil(), f.LineHeight()
}

func (f *BitmapFont) LineHeight() int {
	return f.Face.Metrics().Height.Ceil()
}

// Ascent is the distance from the top of a line to the baseline
func (f *BitmapFont) Ascent() int {
	return f.Face.Metrics().Ascent.Ceil()
}

// textFace adapts Face for ebiten's text renderer
func (f *BitmapFont) textFace() *text.GoXFace {
	if f.goX == nil {
		f.goX = text.NewGoXFace(f.Face)
	}
	return f.goX
}
