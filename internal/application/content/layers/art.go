package layers

import (
	"math"
	"strings"

	"github.com/younwookim/retroshell/internal/application/layer"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

var starArt = []string{
	"     .       +  ':.  .      *              '            *  '",
	"                  '::._                                      ",
	"                    '._)                 * +              ' ",
	"                          .              .        |         ",
	"           .      o.               +            - o -.      ",
	" o'          '    .    /  .         o             |         ",
	"    .  *   '          /                         +           ",
	"   .                 *          '                      .    ",
	"                 .             .             .  .           ",
	"   *         .   .       .                   | '.           ",
	"  +          '+                .           - o -            ",
	"          .                                . |              ",
	"            '  '     ..                   +  .  . +.        ",
	"  .                              |          .-.             ",
	" '                 .'  * '     - o -         ) )            ",
	" +        '   .                   |          '-'         '  ",
	"                       +      .'                   '.       ",
	" .           .           o      .       . .      .          ",
	"                       '       . +~~                       .",
}

var backgroundArt = []string{
	"        /\\                 /\\        ",
	"   /\\  /  \\    /\\     /\\  /  \\   /\\  ",
	"  /  \\/    \\__/  \\___/  \\/    \\_/  \\ ",
}

// StretchLine spreads the characters of line apart with spaces until it is
// at least width pixels wide
func StretchLine(line string, font render.Font, width int) string {
	current, _ := font.Measure(line)
	if current >= width {
		return line
	}
	runes := []rune(line)
	gaps := len(runes) - 1
	if gaps <= 0 {
		return line
	}
	space, _ := font.Measure(" ")
	if space <= 0 {
		return line
	}

	extra := int(math.Ceil(float64(width-current) / float64(gaps*space)))
	pad := strings.Repeat(" ", extra)

	var b strings.Builder
	b.WriteRune(runes[0])
	for _, r := range runes[1:] {
		b.WriteString(pad)
		b.WriteRune(r)
	}
	return b.String()
}

// StarArt spreads the star field over the whole screen
type StarArt struct {
	layer.Base
	font render.Font
	cfg  *config.Runtime
}

// NewStarArt is the star_art factory
func NewStarArt(font render.Font, cfg *config.Runtime) layer.Layer {
	if font == nil || cfg == nil {
		return nil
	}
	return &StarArt{
		Base: layer.Base{Z: layer.ZStarArt, Persist: true},
		font: font,
		cfg:  cfg,
	}
}

func (s *StarArt) Draw(dst render.Surface) {
	w, h := s.cfg.ScreenWidth(), s.cfg.ScreenHeight()
	margin := s.cfg.ScaleValue(StarMargin)
	available := float64(h - 2*margin)

	spacing := available
	if len(starArt) > 1 {
		spacing = available / float64(len(starArt)-1)
	}

	half := s.font.LineHeight() / 2
	for i, line := range starArt {
		stretched := StretchLine(line, s.font, w)
		lw, _ := s.font.Measure(stretched)
		y := margin + int(math.Round(float64(i)*spacing))
		dst.Text(stretched, (w-lw)/2, y-half, StarTextColor)
	}
}

// BackgroundArt draws a block of art centered on the screen
type BackgroundArt struct {
	layer.Base
	font render.Font
	cfg  *config.Runtime
	art  []string
}

// NewBackgroundArt is the background_art factory
func NewBackgroundArt(font render.Font, cfg *config.Runtime) layer.Layer {
	if font == nil || cfg == nil {
		return nil
	}
	return &BackgroundArt{
		Base: layer.Base{Z: layer.ZBackgroundArt, Persist: true},
		font: font,
		cfg:  cfg,
		art:  backgroundArt,
	}
}

func (b *BackgroundArt) Draw(dst render.Surface) {
	w := b.cfg.ScreenWidth()
	lh := b.font.LineHeight()
	y := int(float64(b.cfg.ScreenHeight()) * BackgroundArtY)

	for _, line := range b.art {
		lw, _ := b.font.Measure(line)
		dst.Text(line, (w-lw)/2, y-lh/2, BackgroundTextColor)
		y += lh
	}
}
