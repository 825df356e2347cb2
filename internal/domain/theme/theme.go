// Package theme defines the color themes the shell can switch between.
package theme

import (
	"image/color"
	"sort"
)

// Theme is an immutable color record. Layers read the live theme every frame.
type Theme struct {
	Name           string
	Background     color.RGBA
	Title          color.RGBA
	ButtonNormal   color.RGBA
	ButtonSelected color.RGBA
	Highlight      color.RGBA
	Border         color.RGBA
	Instruction    color.RGBA
	Font           color.RGBA
	Particles      []color.RGBA
}

// Factory produces a theme for the theme table
type Factory func() Theme

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

var white = rgb(255, 255, 255)

// Default is the neon-on-black theme used when nothing else is configured
func Default() Theme {
	return Theme{
		Name:           "default",
		Background:     rgb(0, 0, 0),
		Title:          rgb(57, 255, 20),
		ButtonNormal:   rgb(200, 0, 200),
		ButtonSelected: rgb(57, 255, 20),
		Highlight:      rgb(57, 255, 20),
		Border:         rgb(57, 255, 20),
		Instruction:    white,
		Font:           white,
		Particles:      []color.RGBA{rgb(200, 150, 255), rgb(150, 200, 255)},
	}
}

func Light() Theme {
	return Theme{
		Name:           "light",
		Background:     rgb(245, 245, 245),
		Title:          rgb(50, 50, 50),
		ButtonNormal:   rgb(200, 200, 200),
		ButtonSelected: rgb(70, 70, 70),
		Highlight:      rgb(70, 70, 70),
		Border:         rgb(150, 150, 150),
		Instruction:    rgb(50, 50, 50),
		Font:           rgb(50, 50, 50),
		Particles:      []color.RGBA{rgb(180, 180, 180), rgb(160, 160, 160)},
	}
}

func Retro80() Theme {
	return Theme{
		Name:           "retro80",
		Background:     rgb(0, 0, 0),
		Title:          rgb(255, 20, 147),
		ButtonNormal:   rgb(75, 0, 130),
		ButtonSelected: rgb(0, 255, 127),
		Highlight:      rgb(0, 255, 255),
		Border:         rgb(255, 105, 180),
		Instruction:    white,
		Font:           white,
		Particles:      []color.RGBA{rgb(255, 105, 180), rgb(0, 255, 127)},
	}
}

func Pastel() Theme {
	return Theme{
		Name:           "pastel",
		Background:     rgb(255, 250, 240),
		Title:          rgb(135, 206, 250),
		ButtonNormal:   rgb(152, 251, 152),
		ButtonSelected: rgb(255, 182, 193),
		Highlight:      rgb(221, 160, 221),
		Border:         rgb(216, 191, 216),
		Instruction:    rgb(105, 105, 105),
		Font:           rgb(47, 79, 79),
		Particles:      []color.RGBA{rgb(255, 182, 193), rgb(152, 251, 152)},
	}
}

func Halloween() Theme {
	return Theme{
		Name:           "halloween",
		Background:     rgb(20, 20, 20),
		Title:          rgb(255, 140, 0),
		ButtonNormal:   rgb(139, 69, 19),
		ButtonSelected: rgb(255, 69, 0),
		Highlight:      rgb(255, 140, 0),
		Border:         rgb(255, 140, 0),
		Instruction:    white,
		Font:           white,
		Particles:      []color.RGBA{rgb(255, 140, 0), rgb(128, 0, 128)},
	}
}

func Christmas() Theme {
	return Theme{
		Name:           "christmas",
		Background:     rgb(0, 128, 0),
		Title:          rgb(255, 0, 0),
		ButtonNormal:   rgb(34, 139, 34),
		ButtonSelected: rgb(255, 0, 0),
		Highlight:      rgb(255, 215, 0),
		Border:         rgb(255, 0, 0),
		Instruction:    white,
		Font:           white,
		Particles:      []color.RGBA{rgb(255, 0, 0), rgb(0, 255, 0)},
	}
}

func StarWars() Theme {
	silver := rgb(192, 192, 192)
	return Theme{
		Name:           "starwars",
		Background:     rgb(0, 0, 0),
		Title:          silver,
		ButtonNormal:   rgb(64, 64, 64),
		ButtonSelected: silver,
		Highlight:      rgb(0, 191, 255),
		Border:         silver,
		Instruction:    silver,
		Font:           silver,
		Particles:      []color.RGBA{silver, rgb(0, 191, 255)},
	}
}

// Builtins returns the bundled themes keyed by name
func Builtins() map[string]Factory {
	return map[string]Factory{
		"default":   Default,
		"light":     Light,
		"retro80":   Retro80,
		"pastel":    Pastel,
		"halloween": Halloween,
		"christmas": Christmas,
		"starwars":  StarWars,
	}
}

// BuiltinNames returns the bundled theme names in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(Builtins()))
	for name := range Builtins() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lerp blends a toward b channel by channel. t is clamped to [0, 1].
// Palettes of different length snap to b's palette.
func Lerp(a, b Theme, t float64) Theme {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	out := Theme{
		Name:           b.Name,
		Background:     LerpColor(a.Background, b.Background, t),
		Title:          LerpColor(a.Title, b.Title, t),
		ButtonNormal:   LerpColor(a.ButtonNormal, b.ButtonNormal, t),
		ButtonSelected: LerpColor(a.ButtonSelected, b.ButtonSelected, t),
		Highlight:      LerpColor(a.Highlight, b.Highlight, t),
		Border:         LerpColor(a.Border, b.Border, t),
		Instruction:    LerpColor(a.Instruction, b.Instruction, t),
		Font:           LerpColor(a.Font, b.Font, t),
		Particles:      LerpPalette(a.Particles, b.Particles, t),
	}
	return out
}

// LerpPalette blends two palettes entry by entry. Palettes of different
// length snap to b. The result never aliases b.
func LerpPalette(a, b []color.RGBA, t float64) []color.RGBA {
	if len(a) != len(b) || t >= 1 {
		return append([]color.RGBA(nil), b...)
	}
	if t <= 0 {
		return append([]color.RGBA(nil), a...)
	}
	out := make([]color.RGBA, len(b))
	for i := range b {
		out[i] = LerpColor(a[i], b[i], t)
	}
	return out
}

// LerpColor blends two colors linearly
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
