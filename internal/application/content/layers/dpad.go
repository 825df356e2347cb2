package layers

import (
	"image"
	"math"

	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/application/layer"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// PadButton is one of the on-screen controller buttons
type PadButton int

const (
	PadUp PadButton = iota
	PadDown
	PadLeft
	PadRight
	PadA
	PadB
)

// String returns the string representation of the button
func (b PadButton) String() string {
	switch b {
	case PadUp:
		return "up"
	case PadDown:
		return "down"
	case PadLeft:
		return "left"
	case PadRight:
		return "right"
	case PadA:
		return "A"
	case PadB:
		return "B"
	default:
		return "Unknown"
	}
}

// PadHandler receives button presses and releases
type PadHandler func(b PadButton, pressed bool)

// D-pad layout, in base pixels
const (
	PadButtonSize   = 100
	PadMargin       = 20
	PadLeftMargin   = 30
	PadRightMargin  = 30
	PadActionSize   = 120
	PadActionShift  = 10
	PadCenterY      = 0.7 // fraction of the screen height
	PadHitInflation = 0.2
)

var padKeys = map[input.Key]PadButton{
	input.KeyW:     PadUp,
	input.KeyS:     PadDown,
	input.KeyA:     PadLeft,
	input.KeyD:     PadRight,
	input.KeyEnter: PadA,
	input.KeyQ:     PadB,
}

var allPadButtons = []PadButton{PadUp, PadDown, PadLeft, PadRight, PadA, PadB}

type padGeometry struct {
	rects   map[PadButton]image.Rectangle
	centers map[PadButton][2]float64
	radius  float64
}

// DPad is an on-screen controller: a diamond of direction buttons and two
// round action buttons. Keys and pointer presses both drive it.
type DPad struct {
	layer.Base
	font    render.Font
	cfg     *config.Runtime
	handler PadHandler
	pressed map[PadButton]bool
}

// NewDPad is the directional_button_layer factory. Presses are dropped
// until SetHandler is called.
func NewDPad(font render.Font, cfg *config.Runtime) layer.Layer {
	if cfg == nil {
		return nil
	}
	return &DPad{
		Base:    layer.Base{Z: layer.ZControls, Persist: true},
		font:    font,
		cfg:     cfg,
		pressed: make(map[PadButton]bool),
	}
}

func (d *DPad) SetHandler(h PadHandler) { d.handler = h }

// Pressed reports whether b is held down
func (d *DPad) Pressed(b PadButton) bool { return d.pressed[b] }

func (d *DPad) geometry() padGeometry {
	size := d.cfg.ScaleValue(PadButtonSize)
	margin := d.cfg.ScaleValue(PadMargin)
	offset := size + margin

	cx := d.cfg.ScaleValue(PadLeftMargin) + offset + size/2
	cy := int(float64(d.cfg.ScreenHeight()) * PadCenterY)

	square := func(x, y int) image.Rectangle {
		return image.Rect(x-size/2, y-size/2, x-size/2+size, y-size/2+size)
	}

	action := float64(d.cfg.ScaleValue(PadActionSize))
	shift := float64(d.cfg.ScaleValue(PadActionShift))
	ax := float64(d.cfg.ScreenWidth()-d.cfg.ScaleValue(PadRightMargin)) - action/2
	ay := float64(cy) - action/2

	return padGeometry{
		rects: map[PadButton]image.Rectangle{
			PadUp:    square(cx, cy-offset),
			PadDown:  square(cx, cy+offset),
			PadLeft:  square(cx-offset, cy),
			PadRight: square(cx+offset, cy),
		},
		centers: map[PadButton][2]float64{
			PadA: {ax - shift, ay - shift},
			PadB: {ax - action, ay + action + float64(margin)},
		},
		radius: action / 2,
	}
}

// HitTest returns the button under (x, y). Hit areas are inflated so
// near misses still count.
func (d *DPad) HitTest(x, y int) (PadButton, bool) {
	g := d.geometry()
	pt := image.Pt(x, y)

	for _, b := range allPadButtons[:4] {
		r := g.rects[b]
		grow := int(float64(r.Dx()) * PadHitInflation / 2)
		if pt.In(r.Inset(-grow)) {
			return b, true
		}
	}

	reach := g.radius * (1 + PadHitInflation)
	for _, b := range allPadButtons[4:] {
		c := g.centers[b]
		if math.Hypot(float64(x)-c[0], float64(y)-c[1]) <= reach {
			return b, true
		}
	}
	return 0, false
}

func (d *DPad) set(b PadButton, down bool) {
	if d.pressed[b] == down {
		return
	}
	d.pressed[b] = down
	if d.handler != nil {
		d.handler(b, down)
	}
}

func (d *DPad) OnInput(ev input.Event) bool {
	switch ev.Kind {
	case input.KeyDown, input.KeyUp:
		b, ok := padKeys[ev.Key]
		if !ok {
			return false
		}
		d.set(b, ev.Kind == input.KeyDown)
		return true

	case input.PointerDown:
		b, ok := d.HitTest(ev.X, ev.Y)
		if !ok {
			return false
		}
		d.set(b, true)
		return true

	case input.PointerUp:
		// release everything regardless of where the pointer is
		handled := false
		for _, b := range allPadButtons {
			if d.pressed[b] {
				d.set(b, false)
				handled = true
			}
		}
		return handled
	}
	return false
}

func (d *DPad) Draw(dst render.Surface) {
	th := d.cfg.Theme()
	g := d.geometry()

	for _, b := range allPadButtons[:4] {
		c := th.ButtonNormal
		if d.pressed[b] {
			c = th.ButtonSelected
		}
		r := g.rects[b]
		dst.FillRect(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), c)
	}

	for _, b := range allPadButtons[4:] {
		c := th.ButtonNormal
		if d.pressed[b] {
			c = th.ButtonSelected
		}
		center := g.centers[b]
		dst.FillCircle(center[0], center[1], g.radius, c)

		if d.font != nil {
			w, h := d.font.Measure(b.String())
			dst.Text(b.String(), int(center[0])-w/2, int(center[1])-h/2, th.Font)
		}
	}
}
