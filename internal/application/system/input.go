// Package system polls ebiten's input state into backend-neutral events.
package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/retroshell/internal/application/input"
)

// keyMap lists the ebiten keys the shell reacts to
var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyEscape:      input.KeyEscape,
	ebiten.KeyEnter:       input.KeyEnter,
	ebiten.KeyNumpadEnter: input.KeyEnter,
	ebiten.KeySpace:       input.KeySpace,
	ebiten.KeyBackspace:   input.KeyBackspace,
	ebiten.KeyTab:         input.KeyTab,
	ebiten.KeyArrowUp:     input.KeyArrowUp,
	ebiten.KeyArrowDown:   input.KeyArrowDown,
	ebiten.KeyArrowLeft:   input.KeyArrowLeft,
	ebiten.KeyArrowRight:  input.KeyArrowRight,
}

var letterKeys = []ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM,
	ebiten.KeyN, ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
}

func init() {
	for i, k := range letterKeys {
		keyMap[k] = input.KeyA + input.Key(i)
	}
}

// TranslateKey maps an ebiten key to a shell key, or KeyNone
func TranslateKey(k ebiten.Key) input.Key {
	return keyMap[k]
}

// pointerState is the single pointer the shell tracks. Mouse and the first
// touch both drive it.
type pointerState struct {
	down bool
	x, y int
}

// pointerEvents compares two pointer samples and returns what changed
func pointerEvents(prev, cur pointerState) []input.Event {
	var out []input.Event
	if cur.x != prev.x || cur.y != prev.y {
		out = append(out, input.Pointer(input.PointerMove, cur.x, cur.y))
	}
	switch {
	case cur.down && !prev.down:
		out = append(out, input.Pointer(input.PointerDown, cur.x, cur.y))
	case !cur.down && prev.down:
		out = append(out, input.Pointer(input.PointerUp, cur.x, cur.y))
	}
	return out
}

// InputSystem turns ebiten's per-frame input state into events
type InputSystem struct {
	pointer  pointerState
	keys     []ebiten.Key
	touchIDs []ebiten.TouchID
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll returns this frame's events: key releases, key presses, then pointer
func (s *InputSystem) Poll() []input.Event {
	var events []input.Event

	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		if key := TranslateKey(k); key != input.KeyNone {
			events = append(events, input.KeyRelease(key))
		}
	}
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if key := TranslateKey(k); key != input.KeyNone {
			events = append(events, input.KeyPress(key))
		}
	}

	cur := s.samplePointer()
	events = append(events, pointerEvents(s.pointer, cur)...)
	s.pointer = cur
	return events
}

func (s *InputSystem) samplePointer() pointerState {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(s.touchIDs[0])
		return pointerState{down: true, x: x, y: y}
	}
	x, y := ebiten.CursorPosition()
	return pointerState{down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x: x, y: y}
}
