package config

import (
	"errors"
	"fmt"
)

// ErrInvalidDisplay is returned when a display dimension is not positive
var ErrInvalidDisplay = errors.New("invalid display dimensions")

// ShellConfig is the root config for shell.json
type ShellConfig struct {
	Display          DisplayConfig    `json:"display"`
	Controls         ControlsConfig   `json:"controls"`
	Theme            string           `json:"theme"`
	SelectedGameMode string           `json:"selectedGameMode"`
	Transition       TransitionConfig `json:"transition"`
	Audio            AudioConfig      `json:"audio"`
	Home             string           `json:"home"`
	Seed             int64            `json:"seed"`
}

type DisplayConfig struct {
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	BaseWidth    int     `json:"baseWidth"`
	BaseHeight   int     `json:"baseHeight"`
	Scale        float64 `json:"scale"`
	Framerate    int     `json:"framerate"`
	BaseFontSize int     `json:"baseFontSize"`
}

type ControlsConfig struct {
	GlobalKeys           []string `json:"globalKeys"`
	EnableGlobalControls bool     `json:"enableGlobalControls"`
}

type TransitionConfig struct {
	Kind     string  `json:"kind"`
	Duration float64 `json:"duration"`
}

type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	SampleRate int     `json:"sampleRate"`
	Volume     float64 `json:"volume"` // 0..1
}

// Defaults returns the configuration used when shell.json omits a field
func Defaults() ShellConfig {
	return ShellConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			BaseWidth:    800,
			BaseHeight:   600,
			Scale:        1,
			Framerate:    60,
			BaseFontSize: 32,
		},
		Controls: ControlsConfig{
			GlobalKeys:           []string{"escape"},
			EnableGlobalControls: true,
		},
		Theme:      "default",
		Transition: TransitionConfig{Kind: "simple", Duration: 1.0},
		Audio:      AudioConfig{Enabled: false, SampleRate: 44100, Volume: 0.5},
		Home:       "menu",
		Seed:       1,
	}
}

// Validate checks the values the shell cannot run without
func (c *ShellConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 || d.BaseWidth <= 0 || d.BaseHeight <= 0 {
		return fmt.Errorf("%w: screen %dx%d base %dx%d", ErrInvalidDisplay,
			d.ScreenWidth, d.ScreenHeight, d.BaseWidth, d.BaseHeight)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalidDisplay, d.Framerate)
	}
	return nil
}
