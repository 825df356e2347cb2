package render

import (
	"image"
	"image/color"
)

// OpKind names a recorded draw call
type OpKind string

const (
	OpFill       OpKind = "fill"
	OpFillRect   OpKind = "fillRect"
	OpStrokeRect OpKind = "strokeRect"
	OpCircle     OpKind = "circle"
	OpLine       OpKind = "line"
	OpText       OpKind = "text"
)

// Op is one recorded draw call
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64 // for lines: the end point
	Text  string
	Color color.NRGBA
	Clip  image.Rectangle
}

// Recorder is a Surface that logs draw calls instead of rasterizing them
type Recorder struct {
	bounds image.Rectangle
	ops    *[]Op
}

// NewRecorder creates a recorder of the given size
func NewRecorder(w, h int) *Recorder {
	return &Recorder{bounds: image.Rect(0, 0, w, h), ops: &[]Op{}}
}

// Ops returns every call recorded on this recorder and its sub surfaces
func (r *Recorder) Ops() []Op {
	return append([]Op(nil), (*r.ops)...)
}

// Texts returns the strings drawn, in order
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range *r.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Count returns how many calls of kind were recorded
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range *r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops the recorded calls
func (r *Recorder) Reset() {
	*r.ops = (*r.ops)[:0]
}

func (r *Recorder) add(op Op, c color.Color) {
	op.Color = color.NRGBAModel.Convert(c).(color.NRGBA)
	op.Clip = r.bounds
	*r.ops = append(*r.ops, op)
}

func (r *Recorder) Bounds() image.Rectangle { return r.bounds }

func (r *Recorder) Fill(c color.Color) {
	b := r.bounds
	r.add(Op{Kind: OpFill, X: float64(b.Min.X), Y: float64(b.Min.Y), W: float64(b.Dx()), H: float64(b.Dy())}, c)
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.add(Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h}, c)
}

func (r *Recorder) StrokeRect(x, y, w, h, width float64, c color.Color) {
	r.add(Op{Kind: OpStrokeRect, X: x, Y: y, W: w, H: h}, c)
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.add(Op{Kind: OpCircle, X: cx, Y: cy, W: rad, H: rad}, c)
}

func (r *Recorder) Line(x1, y1, x2, y2, width float64, c color.Color) {
	r.add(Op{Kind: OpLine, X: x1, Y: y1, W: x2, H: y2}, c)
}

func (r *Recorder) Text(s string, x, y int, c color.Color) {
	r.add(Op{Kind: OpText, X: float64(x), Y: float64(y), Text: s}, c)
}

func (r *Recorder) Sub(rect image.Rectangle) Surface {
	return &Recorder{bounds: rect.Intersect(r.bounds), ops: r.ops}
}
