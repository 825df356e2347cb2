// Package layer holds the z-ordered drawables a scene is composed of.
package layer

import (
	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// Order keys of the built-in layers, drawn lowest first
const (
	ZStarArt = iota
	ZRainEffect
	ZBackgroundArt
	ZInstructions
	ZMenu
	ZBorder
	ZTest
	ZControls
)

// Layer is one drawable slice of a scene
type Layer interface {
	OrderKey() int
	Persistent() bool
	Update(dt float64)
	Draw(s render.Surface)
}

// InputHandler is implemented by layers that accept input
type InputHandler interface {
	OnInput(ev input.Event) bool
}

// Keyed is implemented by layers created from a registry entry.
// Population uses the key to avoid adding the same persistent layer twice.
type Keyed interface {
	RegistryKey() string
	SetRegistryKey(key string)
}

// Factory builds a layer. It may return nil when the layer cannot be built
// with the current configuration.
type Factory func(font render.Font, cfg *config.Runtime) Layer

// Base carries the order key, persistence and registry key of a layer
type Base struct {
	Z       int
	Persist bool
	key     string
}

func (b *Base) OrderKey() int             { return b.Z }
func (b *Base) SetOrderKey(z int)         { b.Z = z }
func (b *Base) Persistent() bool          { return b.Persist }
func (b *Base) RegistryKey() string       { return b.key }
func (b *Base) SetRegistryKey(key string) { b.key = key }
func (b *Base) Update(dt float64)         {}
func (b *Base) Draw(s render.Surface)     {}
