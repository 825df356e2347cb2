package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyUp:         input.KeyArrowUp,
	tcell.KeyDown:       input.KeyArrowDown,
	tcell.KeyLeft:       input.KeyArrowLeft,
	tcell.KeyRight:      input.KeyArrowRight,
}

// TranslateKey maps a tcell key event to a shell key, or KeyNone
func TranslateKey(ev *tcell.EventKey) input.Key {
	if ev.Key() == tcell.KeyRune {
		return input.KeyFromRune(ev.Rune())
	}
	return specialKeys[ev.Key()]
}

// mouse tracks the button state between tcell mouse events
type mouse struct {
	down bool
	x, y int
}

// translate converts one tcell event into shell events. Terminals report
// no key releases, so every key press is followed by its release.
func (m *mouse) translate(ev tcell.Event) []input.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k := TranslateKey(ev)
		if k == input.KeyNone {
			return nil
		}
		return []input.Event{input.KeyPress(k), input.KeyRelease(k)}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := col*render.CellWidth+render.CellWidth/2, row*render.CellHeight+render.CellHeight/2
		down := ev.Buttons()&tcell.Button1 != 0

		var out []input.Event
		if x != m.x || y != m.y {
			out = append(out, input.Pointer(input.PointerMove, x, y))
		}
		if down && !m.down {
			out = append(out, input.Pointer(input.PointerDown, x, y))
		} else if !down && m.down {
			out = append(out, input.Pointer(input.PointerUp, x, y))
		}
		m.down, m.x, m.y = down, x, y
		return out
	}
	return nil
}
