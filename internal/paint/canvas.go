package paint

import "image/color"

// Point is a position in device pixels.
type Point struct {
	X, Y float32
}

// Rect is an axis aligned rectangle in device pixels.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// RectXYWH creates a rectangle from its origin and size.
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent, never negative.
func (r Rect) Width() float32 {
	if r.Right < r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the vertical extent, never negative.
func (r Rect) Height() float32 {
	if r.Bottom < r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// IsEmpty reports whether the rectangle covers no area.
func (r Rect) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// TextMetrics describes a measured text run. Ascent and Descent are both
// positive distances from the baseline.
type TextMetrics struct {
	Width   float32
	Ascent  float32
	Descent float32
}

// Height returns the line height of the run.
func (m TextMetrics) Height() float32 {
	return m.Ascent + m.Descent
}

// TextMeasurer measures text with the font a canvas will draw it in.
type TextMeasurer interface {
	MeasureText(text string, size float32) TextMetrics
}

// Canvas records or renders drawing commands.
type Canvas interface {
	TextMeasurer

	// DrawRect fills a rectangle.
	DrawRect(rect Rect, c color.Color)

	// DrawText draws text with its left edge at origin.X and its baseline at origin.Y.
	DrawText(text string, origin Point, size float32, c color.Color)

	// DrawArc fills the pie slice of the oval inscribed in bounds, from
	// startDeg sweeping clockwise by sweepDeg degrees. Zero degrees points
	// along the positive x axis.
	DrawArc(bounds Rect, startDeg, sweepDeg float32, c color.Color)
}

// FixedMetrics measures text as if every rune had the same advance. It stands
// in for real font metrics where none are available.
type FixedMetrics struct {
	// Advance is the width of one rune as a fraction of the text size.
	Advance float32
	// Ascent is the ascent as a fraction of the text size.
	Ascent float32
	// Descent is the descent as a fraction of the text size.
	Descent float32
}

// DefaultMetrics approximates a proportional sans-serif face.
var DefaultMetrics = FixedMetrics{Advance: 0.5, Ascent: 0.8, Descent: 0.2}

// MeasureText implements TextMeasurer.
func (m FixedMetrics) MeasureText(text string, size float32) TextMetrics {
	n := float32(len([]rune(text)))
	return TextMetrics{
		Width:   n * m.Advance * size,
		Ascent:  m.Ascent * size,
		Descent: m.Descent * size,
	}
}
