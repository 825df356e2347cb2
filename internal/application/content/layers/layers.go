// Package layers holds the built-in layers of the shell and registers the
// reusable ones in the layer and effect tables.
package layers

import (
	"image/color"
	"math/rand"

	"github.com/younwookim/retroshell/internal/application/event"
	"github.com/younwookim/retroshell/internal/application/plugin"
	"github.com/younwookim/retroshell/internal/application/scene"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
)

// Registry keys
const (
	KeyStarArt       = "star_art"
	KeyBackgroundArt = "background_art"
	KeyRain          = "rain_effect"
	KeySnow          = "snow_effect"
	KeyInstruction   = "instruction"
	KeyBorder        = "border"
	KeyMenu          = "menu_layer"
	KeyMenuParticles = "menu_particle_effect"
	KeyDPad          = "directional_button_layer"
)

// Categories used by the registrations in this package
const (
	CategoryBackground   = "background"
	CategoryEffect       = "effect"
	CategoryForeground   = "foreground"
	CategoryMenuOnly     = "menu_only"
	CategoryGameControls = "game_controls"
)

// Layout, in base pixels before scaling
const (
	ButtonWidth       = 300
	ButtonHeight      = 70
	ButtonMargin      = 30
	TitleYOffset      = 40
	BorderThickness   = 4
	StarMargin        = 20
	BackgroundArtY    = 0.5 // fraction of the screen height
	InstructionLeft   = 20
	InstructionBottom = 40
	PlayAreaMargin    = 50
	MenuDebounce      = 0.1 // seconds
)

// Fixed colors of the art and weather layers. Everything else follows the theme.
var (
	StarTextColor       = color.RGBA{180, 180, 220, 255}
	BackgroundTextColor = color.RGBA{110, 110, 150, 255}
	RainColor           = color.RGBA{100, 149, 237, 255}
	SnowColor           = color.RGBA{255, 255, 255, 255}
)

// Services are the shell hooks interactive layers call back into
type Services struct {
	Navigator scene.Navigator
	Bus       *event.Bus
	// Quit asks the host to stop. It may be nil.
	Quit func()
}

func (s Services) quit() {
	if s.Quit != nil {
		s.Quit()
	}
}

// Plugin registers the built-in layers and effects
func Plugin(svc Services) plugin.Plugin {
	return plugin.Func("layers", func(p *plugin.Plugins) {
		p.Layers.Register(KeyStarArt, CategoryBackground, NewStarArt)
		p.Layers.Register(KeyBackgroundArt, CategoryBackground, NewBackgroundArt)
		p.Layers.Register(KeySnow, CategoryEffect, NewSnow)
		p.Layers.Register(KeyInstruction, CategoryForeground, NewInstruction)
		p.Layers.Register(KeyBorder, CategoryForeground, NewBorder)
		p.Layers.Register(KeyMenu, CategoryMenuOnly, MainMenuFactory(svc))
		p.Layers.Register(KeyMenuParticles, CategoryMenuOnly, NewMenuParticles)
		p.Layers.Register(KeyDPad, CategoryGameControls, NewDPad)

		p.Effects.Register(KeyRain, CategoryEffect, NewRain)
	})
}

// newRand gives every layer its own stream seeded from the config, so
// replays see the same weather
func newRand(cfg *config.Runtime) *rand.Rand {
	return rand.New(rand.NewSource(cfg.Seed()))
}
