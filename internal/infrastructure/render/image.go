package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface draws onto an ebiten image
type ImageSurface struct {
	img  *ebiten.Image
	font *BitmapFont
}

// NewImageSurface wraps dst. Text is set in f.
func NewImageSurface(dst *ebiten.Image, f *BitmapFont) *ImageSurface {
	return &ImageSurface{img: dst, font: f}
}

func (s *ImageSurface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

func (s *ImageSurface) Fill(c color.Color) {
	s.img.Fill(c)
}

func (s *ImageSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *ImageSurface) StrokeRect(x, y, w, h, width float64, c color.Color) {
	vector.StrokeRect(s.img, float32(x), float32(y), float32(w), float32(h), float32(width), c, false)
}

func (s *ImageSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *ImageSurface) Line(x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

func (s *ImageSurface) Text(str string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.img, str, s.font.textFace(), op)
}

func (s *ImageSurface) Sub(r image.Rectangle) Surface {
	sub, ok := s.img.SubImage(r).(*ebiten.Image)
	if !ok {
		return s
	}
	return &ImageSurface{img: sub, font: s.font}
}
