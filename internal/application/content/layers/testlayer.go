package layers

import (
	"image/color"
	"math"

	"github.com/younwookim/retroshell/internal/application/layer"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// TestText is drawn in the middle of the test scene
const TestText = "TEST SCENE"

// TestSpinSpeed is the spinner speed in degrees per second
const TestSpinSpeed = 120.0

// TestLayer shows a label and a spinner to check that scenes update
type TestLayer struct {
	layer.Base
	font  render.Font
	cfg   *config.Runtime
	angle float64
}

func NewTestLayer(font render.Font, cfg *config.Runtime) *TestLayer {
	return &TestLayer{Base: layer.Base{Z: layer.ZTest}, font: font, cfg: cfg}
}

func (t *TestLayer) Angle() float64 { return t.angle }

func (t *TestLayer) Update(dt float64) {
	t.angle = math.Mod(t.angle+TestSpinSpeed*dt, 360)
}

func (t *TestLayer) Draw(dst render.Surface) {
	cx, cy := t.cfg.ScreenWidth()/2, t.cfg.ScreenHeight()/2
	w, h := t.font.Measure(TestText)
	dst.Text(TestText, cx-w/2, cy-h/2, color.White)

	r := float64(w) / 2
	rad := t.angle * math.Pi / 180
	x, y := float64(cx), float64(cy+h*2)
	dst.Line(x, y, x+math.Cos(rad)*r, y-math.Sin(rad)*r, 2, t.cfg.Theme().Highlight)
}
