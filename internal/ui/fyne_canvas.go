package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/ytget/loadbutton/internal/paint"
)

// textMeasurer measures text with the current fyne driver's fonts
type textMeasurer struct {
	style fyne.TextStyle
}

// MeasureText implements paint.TextMeasurer
func (m textMeasurer) MeasureText(text string, size float32) paint.TextMetrics {
	app := fyne.CurrentApp()
	if app == nil || app.Driver() == nil {
		return paint.DefaultMetrics.MeasureText(text, size)
	}
	sz, baseline := app.Driver().RenderedTextSize(text, size, m.style, nil)
	return paint.TextMetrics{
		Width:   sz.Width,
		Ascent:  baseline,
		Descent: sz.Height - baseline,
	}
}

// objectCanvas is a paint.Canvas backed by a fixed set of fyne canvas
// objects. Rect calls fill the background then the progress rectangle.
type objectCanvas struct {
	textMeasurer

	background *canvas.Rectangle
	progress   *canvas.Rectangle
	label      *canvas.Text
	arc        *canvas.Raster

	arcColor color.Color
	arcStart float32
	arcSweep float32

	rects int
}

func newObjectCanvas() *objectCanvas {
	c := &objectCanvas{
		background: canvas.NewRectangle(color.Transparent),
		progress:   canvas.NewRectangle(color.Transparent),
		label:      canvas.NewText("", color.White),
		arcColor:   color.Transparent,
	}
	c.arc = canvas.NewRasterWithPixels(func(x, y, w, h int) color.Color {
		if pieContains(x, y, w, h, c.arcStart, c.arcSweep) {
			return c.arcColor
		}
		return color.Transparent
	})
	c.reset()
	return c
}

func (c *objectCanvas) objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{c.background, c.progress, c.label, c.arc}
}

// reset hides everything until the next replay draws it
func (c *objectCanvas) reset() {
	c.rects = 0
	for _, o := range c.objects() {
		o.Hide()
	}
}

// DrawRect implements paint.Canvas
func (c *objectCanvas) DrawRect(rect paint.Rect, col color.Color) {
	target := c.progress
	if c.rects == 0 {
		target = c.background
	}
	c.rects++
	target.FillColor = col
	place(target, rect)
	target.Show()
	target.Refresh()
}

// DrawText implements paint.Canvas
func (c *objectCanvas) DrawText(text string, origin paint.Point, size float32, col color.Color) {
	m := c.MeasureText(text, size)
	c.label.Text = text
	c.label.TextSize = size
	c.label.Color = col
	c.label.TextStyle = c.style
	// fyne positions text by its top edge
	place(c.label, paint.RectXYWH(origin.X, origin.Y-m.Ascent, m.Width, m.Height()))
	c.label.Show()
	c.label.Refresh()
}

// DrawArc implements paint.Canvas
func (c *objectCanvas) DrawArc(bounds paint.Rect, startDeg, sweepDeg float32, col color.Color) {
	c.arcColor = col
	c.arcStart = startDeg
	c.arcSweep = sweepDeg
	place(c.arc, bounds)
	c.arc.Show()
	c.arc.Refresh()
}

func place(o fyne.CanvasObject, r paint.Rect) {
	o.Move(fyne.NewPos(r.Left, r.Top))
	o.Resize(fyne.NewSize(r.Width(), r.Height()))
}

// pieContains reports whether pixel (x, y) of a w×h raster lies in the pie
// slice of the inscribed oval starting at startDeg and sweeping clockwise.
func pieContains(x, y, w, h int, startDeg, sweepDeg float32) bool {
	if sweepDeg <= 0 || w <= 0 || h <= 0 {
		return false
	}
	rx, ry := float64(w)/2, float64(h)/2
	dx := (float64(x) + 0.5 - rx) / rx
	dy := (float64(y) + 0.5 - ry) / ry
	if dx*dx+dy*dy > 1 {
		return false
	}
	if sweepDeg >= 360 {
		return true
	}
	// y grows downwards, so positive angles run clockwise on screen
	angle := math.Atan2(dy, dx) * 180 / math.Pi
	rel := math.Mod(angle-float64(startDeg), 360)
	if rel < 0 {
		rel += 360
	}
	return rel <= float64(sweepDeg)
}
