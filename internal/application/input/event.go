// Package input routes backend-neutral input events to handlers.
package input

import (
	"fmt"
	"strings"
)

// Kind identifies what an Event describes
type Kind int

const (
	KeyDown Kind = iota
	KeyUp
	PointerDown
	PointerUp
	PointerMove
)

// String returns the string representation of the event kind
func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case PointerDown:
		return "PointerDown"
	case PointerUp:
		return "PointerUp"
	case PointerMove:
		return "PointerMove"
	default:
		return "Unknown"
	}
}

// Key is a backend-neutral key code
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyBackspace
	KeyTab
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

var keyNames = map[Key]string{
	KeyEscape:     "escape",
	KeyEnter:      "enter",
	KeySpace:      "space",
	KeyBackspace:  "backspace",
	KeyTab:        "tab",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
}

var keyAliases = map[string]Key{
	"esc":    KeyEscape,
	"return": KeyEnter,
	" ":      KeySpace,
}

// String returns the config name of the key
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= KeyA && k <= KeyZ {
		return string(rune('a' + int(k-KeyA)))
	}
	return "none"
}

// KeyFromRune maps a letter to its key. Case is ignored.
func KeyFromRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r == ' ':
		return KeySpace
	}
	return KeyNone
}

// ParseKey resolves a key name from configuration such as "escape" or "q"
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" && name != "" {
		n = " "
	}
	if k, ok := keyAliases[n]; ok {
		return k, nil
	}
	for k, kn := range keyNames {
		if kn == n {
			return k, nil
		}
	}
	if r := []rune(n); len(r) == 1 {
		if k := KeyFromRune(r[0]); k != KeyNone {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("unknown key %q", name)
}

// Button is a pointer button
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Event is a single input occurrence
type Event struct {
	Kind   Kind   `json:"kind"`
	Key    Key    `json:"key,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Button Button `json:"button,omitempty"`
}

// KeyPress builds a key-down event
func KeyPress(k Key) Event {
	return Event{Kind: KeyDown, Key: k}
}

// KeyRelease builds a key-up event
func KeyRelease(k Key) Event {
	return Event{Kind: KeyUp, Key: k}
}

// Pointer builds a pointer event at (x, y) for the left button
func Pointer(kind Kind, x, y int) Event {
	return Event{Kind: kind, X: x, Y: y, Button: ButtonLeft}
}

// IsKey reports whether ev is a key event of the given kind for any of keys
func (ev Event) IsKey(kind Kind, keys ...Key) bool {
	if ev.Kind != kind {
		return false
	}
	for _, k := range keys {
		if ev.Key == k {
			return true
		}
	}
	return false
}

// IsPointer reports whether ev came from a mouse or touch
func (ev Event) IsPointer() bool {
	return ev.Kind == PointerDown || ev.Kind == PointerUp || ev.Kind == PointerMove
}
