package config

import (
	"strings"

	"github.com/younwookim/retroshell/internal/domain/theme"
)

// Runtime is the live configuration threaded through layers and scenes.
// Unlike ShellConfig it changes while the shell runs (theme, selected mode, window size).
type Runtime struct {
	cfg          ShellConfig
	screenW      int
	screenH      int
	scale        float64
	theme        theme.Theme
	blender      *theme.Blender
	selectedMode string
}

// NewRuntime creates the runtime view of cfg with the given starting theme
func NewRuntime(cfg ShellConfig, th theme.Theme) *Runtime {
	r := &Runtime{
		cfg:          cfg,
		theme:        th,
		selectedMode: strings.ToLower(cfg.SelectedGameMode),
	}
	r.UpdateDimensions(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	return r
}

// UpdateDimensions recomputes the scale for a new screen size
func (r *Runtime) UpdateDimensions(w, h int) {
	r.screenW = w
	r.screenH = h

	sx := float64(w) / float64(r.cfg.Display.BaseWidth)
	sy := float64(h) / float64(r.cfg.Display.BaseHeight)
	r.scale = min(sx, sy)
}

func (r *Runtime) ScreenWidth() int  { return r.screenW }
func (r *Runtime) ScreenHeight() int { return r.screenH }
func (r *Runtime) Scale() float64    { return r.scale }

// ScaleValue scales a base-resolution measurement to the current screen
func (r *Runtime) ScaleValue(base int) int {
	return int(float64(base) * r.scale)
}

// FontSize returns the scaled base font size
func (r *Runtime) FontSize() int {
	return r.ScaleValue(r.cfg.Display.BaseFontSize)
}

func (r *Runtime) FPS() int { return r.cfg.Display.Framerate }

// Theme returns the theme layers should draw with this frame
func (r *Runtime) Theme() theme.Theme {
	if r.blender != nil {
		return r.blender.Current()
	}
	return r.theme
}

// SetTheme swaps the theme immediately and cancels any blend in progress
func (r *Runtime) SetTheme(t theme.Theme) {
	r.theme = t
	r.blender = nil
}

// BlendTheme starts moving the live theme toward t over duration seconds
func (r *Runtime) BlendTheme(t theme.Theme, duration float64) {
	r.blender = theme.NewBlender(r.Theme(), t, duration)
	if r.blender.Done {
		r.SetTheme(t)
	}
}

// Blending reports whether a theme blend is in progress
func (r *Runtime) Blending() bool {
	return r.blender != nil
}

// Advance steps time-based runtime state such as theme blending
func (r *Runtime) Advance(dt float64) {
	if r.blender == nil {
		return
	}
	r.blender.Update(dt)
	if r.blender.Done {
		r.SetTheme(r.blender.Target())
	}
}

func (r *Runtime) GlobalKeys() []string {
	return append([]string(nil), r.cfg.Controls.GlobalKeys...)
}

func (r *Runtime) EnableGlobalControls() bool { return r.cfg.Controls.EnableGlobalControls }

func (r *Runtime) SelectedGameMode() string { return r.selectedMode }

// SetSelectedGameMode records the play mode the play scene should load next
func (r *Runtime) SetSelectedGameMode(key string) {
	r.selectedMode = strings.ToLower(key)
}

func (r *Runtime) Transition() TransitionConfig { return r.cfg.Transition }

func (r *Runtime) Home() string { return r.cfg.Home }

func (r *Runtime) Seed() int64 { return r.cfg.Seed }

// Config returns a copy of the static configuration
func (r *Runtime) Config() ShellConfig { return r.cfg }
