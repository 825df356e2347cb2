package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/retroshell/internal/application/input"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		in   ebiten.Key
		want input.Key
	}{
		{ebiten.KeyA, input.KeyA},
		{ebiten.KeyW, input.KeyW},
		{ebiten.KeyZ, input.KeyZ},
		{ebiten.KeyEscape, input.KeyEscape},
		{ebiten.KeyEnter, input.KeyEnter},
		{ebiten.KeyNumpadEnter, input.KeyEnter},
		{ebiten.KeySpace, input.KeySpace},
		{ebiten.KeyArrowUp, input.KeyArrowUp},
		{ebiten.KeyArrowRight, input.KeyArrowRight},
		{ebiten.KeyF5, input.KeyNone},
		{ebiten.Key1, input.KeyNone},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateKey(tt.in))
		})
	}
}

func TestPointerEvents(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur pointerState
		want      []input.Event
	}{
		{"idle", pointerState{x: 5, y: 5}, pointerState{x: 5, y: 5}, nil},
		{"move", pointerState{x: 5, y: 5}, pointerState{x: 6, y: 5},
			[]input.Event{input.Pointer(input.PointerMove, 6, 5)}},
		{"press in place", pointerState{x: 5, y: 5}, pointerState{down: true, x: 5, y: 5},
			[]input.Event{input.Pointer(input.PointerDown, 5, 5)}},
		{"drag", pointerState{down: true, x: 5, y: 5}, pointerState{down: true, x: 9, y: 1},
			[]input.Event{input.Pointer(input.PointerMove, 9, 1)}},
		{"move then release", pointerState{down: true, x: 5, y: 5}, pointerState{x: 7, y: 7},
			[]input.Event{input.Pointer(input.PointerMove, 7, 7), input.Pointer(input.PointerUp, 7, 7)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pointerEvents(tt.prev, tt.cur))
		})
	}
}
