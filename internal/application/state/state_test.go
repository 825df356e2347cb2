package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSceneState_String(t *testing.T) {
	tests := []struct {
		state    SceneState
		expected string
	}{
		{Idle, "Idle"},
		{Active, "Active"},
		{Transitioning, "Transitioning"},
		{SceneState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestSceneStateConstants(t *testing.T) {
	// Zero value must be Idle so a fresh manager has no scene
	assert.Equal(t, SceneState(0), Idle)
	assert.Equal(t, SceneState(1), Active)
	assert.Equal(t, SceneState(2), Transitioning)
}
