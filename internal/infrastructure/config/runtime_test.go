package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/retroshell/internal/domain/theme"
)

func TestRuntime_Scale(t *testing.T) {
	cfg := Defaults()
	r := NewRuntime(cfg, theme.Default())

	assert.Equal(t, 1.0, r.Scale())
	assert.Equal(t, 20, r.ScaleValue(20))
	assert.Equal(t, 32, r.FontSize())

	// letterboxed: the smaller axis wins
	r.UpdateDimensions(1600, 900)
	assert.Equal(t, 1.5, r.Scale())
	assert.Equal(t, 30, r.ScaleValue(20))
	assert.Equal(t, 1600, r.ScreenWidth())
	assert.Equal(t, 900, r.ScreenHeight())
}

func TestRuntime_SelectedGameModeLowercased(t *testing.T) {
	cfg := Defaults()
	cfg.SelectedGameMode = "Space Shooter"
	r := NewRuntime(cfg, theme.Default())
	assert.Equal(t, "space shooter", r.SelectedGameMode())

	r.SetSelectedGameMode("Tower Defense")
	assert.Equal(t, "tower defense", r.SelectedGameMode())
}

func TestRuntime_ThemeBlend(t *testing.T) {
	r := NewRuntime(Defaults(), theme.Default())

	r.BlendTheme(theme.Light(), 1.0)
	assert.True(t, r.Blending())
	assert.Equal(t, theme.Default().Background, r.Theme().Background)

	r.Advance(0.5)
	assert.True(t, r.Blending())
	assert.NotEqual(t, theme.Default().Background, r.Theme().Background)
	assert.NotEqual(t, theme.Light().Background, r.Theme().Background)

	r.Advance(0.6)
	assert.False(t, r.Blending())
	assert.Equal(t, theme.Light(), r.Theme())
}

func TestRuntime_SetThemeCancelsBlend(t *testing.T) {
	r := NewRuntime(Defaults(), theme.Default())
	r.BlendTheme(theme.Light(), 1.0)
	r.SetTheme(theme.Pastel())
	assert.False(t, r.Blending())
	assert.Equal(t, "pastel", r.Theme().Name)

	r.BlendTheme(theme.Retro80(), 0)
	assert.False(t, r.Blending())
	assert.Equal(t, "retro80", r.Theme().Name)
}

func TestRuntime_GlobalKeysIsCopy(t *testing.T) {
	r := NewRuntime(Defaults(), theme.Default())
	keys := r.GlobalKeys()
	keys[0] = "x"
	assert.Equal(t, []string{"escape"}, r.GlobalKeys())
}
