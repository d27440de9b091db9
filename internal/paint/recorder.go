package paint

import (
	"fmt"
	"image/color"
)

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpRect OpKind = iota
	OpText
	OpArc
)

// String returns the drawing call name.
func (k OpKind) String() string {
	switch k {
	case OpRect:
		return "rect"
	case OpText:
		return "text"
	case OpArc:
		return "arc"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one recorded drawing call. Ops are comparable with ==.
type Op struct {
	Kind   OpKind
	Bounds Rect // rect and arc bounds
	Text   string
	Origin Point
	Size   float32
	Start  float32
	Sweep  float32
	Color  color.NRGBA
}

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops    []Op
	width  int
	height int
}

// Ops returns a copy of the recorded operations.
func (d *DisplayList) Ops() []Op {
	ops := make([]Op, len(d.ops))
	copy(ops, d.ops)
	return ops
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Size returns the surface size recorded with the list.
func (d *DisplayList) Size() (int, int) {
	return d.width, d.height
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(c Canvas) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpRect:
			c.DrawRect(op.Bounds, op.Color)
		case OpText:
			c.DrawText(op.Text, op.Origin, op.Size, op.Color)
		case OpArc:
			c.DrawArc(op.Bounds, op.Start, op.Sweep, op.Color)
		}
	}
}

// Recorder is a Canvas that records drawing commands into a display list.
type Recorder struct {
	measurer TextMeasurer
	width    int
	height   int
	ops      []Op
}

// NewRecorder creates a recorder for a surface of the given size. A nil
// measurer falls back to DefaultMetrics.
func NewRecorder(width, height int, measurer TextMeasurer) *Recorder {
	if measurer == nil {
		measurer = DefaultMetrics
	}
	return &Recorder{measurer: measurer, width: width, height: height}
}

// MeasureText implements Canvas.
func (r *Recorder) MeasureText(text string, size float32) TextMetrics {
	return r.measurer.MeasureText(text, size)
}

// DrawRect implements Canvas.
func (r *Recorder) DrawRect(rect Rect, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpRect, Bounds: rect, Color: toNRGBA(c)})
}

// DrawText implements Canvas.
func (r *Recorder) DrawText(text string, origin Point, size float32, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpText, Text: text, Origin: origin, Size: size, Color: toNRGBA(c)})
}

// DrawArc implements Canvas.
func (r *Recorder) DrawArc(bounds Rect, startDeg, sweepDeg float32, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpArc, Bounds: bounds, Start: startDeg, Sweep: sweepDeg, Color: toNRGBA(c)})
}

// Reset discards recorded operations, keeping the surface size.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// DisplayList returns the operations recorded so far.
func (r *Recorder) DisplayList() *DisplayList {
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops, width: r.width, height: r.height}
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
