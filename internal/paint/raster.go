package paint

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// arcSegmentDegrees bounds the angle covered by one polygon edge of an arc.
const arcSegmentDegrees = 5

// FaceMetrics measures text with a bitmap font face. The face has a fixed
// size, so the requested text size is ignored.
type FaceMetrics struct {
	Face font.Face
}

// MeasureText implements TextMeasurer.
func (m FaceMetrics) MeasureText(text string, _ float32) TextMetrics {
	metrics := m.Face.Metrics()
	return TextMetrics{
		Width:   fixedToFloat(font.MeasureString(m.Face, text)),
		Ascent:  fixedToFloat(metrics.Ascent),
		Descent: fixedToFloat(metrics.Descent),
	}
}

// DefaultFace is the font used by Rasterize when none is given.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// Rasterize paints a display list into a new RGBA image of the list's size.
// Text is drawn with face; a nil face uses DefaultFace.
func Rasterize(list *DisplayList, face font.Face) *image.RGBA {
	w, h := list.Size()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return dst
	}
	if face == nil {
		face = DefaultFace()
	}

	c := &rasterCanvas{dst: dst, face: face, z: vector.NewRasterizer(w, h)}
	list.Paint(c)
	return dst
}

// rasterCanvas is a Canvas drawing straight into an image.
type rasterCanvas struct {
	dst  *image.RGBA
	face font.Face
	z    *vector.Rasterizer
}

func (c *rasterCanvas) MeasureText(text string, size float32) TextMetrics {
	return FaceMetrics{Face: c.face}.MeasureText(text, size)
}

func (c *rasterCanvas) DrawRect(rect Rect, col color.Color) {
	if rect.IsEmpty() {
		return
	}
	c.begin()
	c.z.MoveTo(rect.Left, rect.Top)
	c.z.LineTo(rect.Right, rect.Top)
	c.z.LineTo(rect.Right, rect.Bottom)
	c.z.LineTo(rect.Left, rect.Bottom)
	c.z.ClosePath()
	c.fill(col)
}

func (c *rasterCanvas) DrawText(text string, origin Point, _ float32, col color.Color) {
	d := font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(int(math.Round(float64(origin.X))), int(math.Round(float64(origin.Y)))),
	}
	d.DrawString(text)
}

func (c *rasterCanvas) DrawArc(bounds Rect, startDeg, sweepDeg float32, col color.Color) {
	if bounds.IsEmpty() || sweepDeg <= 0 {
		return
	}
	if sweepDeg > 360 {
		sweepDeg = 360
	}

	center := bounds.Center()
	rx, ry := bounds.Width()/2, bounds.Height()/2
	point := func(deg float64) (float32, float32) {
		rad := deg * math.Pi / 180
		return center.X + rx*float32(math.Cos(rad)), center.Y + ry*float32(math.Sin(rad))
	}

	segments := int(math.Ceil(float64(sweepDeg) / arcSegmentDegrees))
	step := float64(sweepDeg) / float64(segments)

	c.begin()
	c.z.MoveTo(center.X, center.Y)
	for i := 0; i <= segments; i++ {
		x, y := point(float64(startDeg) + float64(i)*step)
		c.z.LineTo(x, y)
	}
	c.z.ClosePath()
	c.fill(col)
}

func (c *rasterCanvas) begin() {
	b := c.dst.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
}

func (c *rasterCanvas) fill(col color.Color) {
	c.z.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{})
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
