// Package scene defines the Scene interface, the layer-populating BaseScene
// and the Manager that switches between scenes.
//
// Each screen (menu, settings, play, etc.) implements Scene and composes
// itself from layers held by a shared layer.Manager.
package scene

import (
	"image/color"

	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// Scene represents a screen of the shell (menu, settings, play, etc.)
//
// The scene manager delegates Update, Draw and input to the current scene.
type Scene interface {
	// Name returns the key the scene is registered under.
	Name() string

	// OnEnter is called when the scene becomes current.
	// Layers are (re)built here.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this to remove layers the scene owns that would otherwise persist.
	OnExit()

	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	Update(dt float64)

	// Draw renders the full scene: background, dynamic then persistent layers.
	Draw(s render.Surface)

	// DrawDynamic renders only the layers that are rebuilt on every entry.
	DrawDynamic(s render.Surface)

	// DrawPersistent renders only the layers that survive scene changes.
	DrawPersistent(s render.Surface)

	// OnInput offers an event to the scene's layers, topmost first.
	OnInput(ev input.Event) bool

	// Background is the color the scene clears to.
	Background() color.Color
}

// Navigator switches scenes on behalf of layers and scenes
type Navigator interface {
	SetScene(name string, opts ...Option)
	Back()
}
