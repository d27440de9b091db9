package button

import (
	"github.com/ytget/loadbutton/internal/model"
	"github.com/ytget/loadbutton/internal/paint"
)

// Draw paints v onto c using the colors and text size in o. It always issues
// the same four calls in the same order (background, progress, label, arc)
// unless v has no area, in which case it draws nothing.
func Draw(c paint.Canvas, v model.VisualState, o Options) {
	if !v.HasArea() {
		return
	}
	w, h := float32(v.Width), float32(v.Height)
	size := o.TextSize

	c.DrawRect(paint.RectXYWH(0, 0, w, h), o.BackgroundColor)
	c.DrawRect(paint.RectXYWH(0, 0, float32(v.ProgressWidth()), h), o.ProgressColor)

	// Metrics come from the canvas on every call, the label may have changed
	m := c.MeasureText(v.Label, size)
	textLeft := w/2 - m.Width/2
	baseline := h/2 + (m.Ascent-m.Descent)/2
	c.DrawText(v.Label, paint.Point{X: textLeft, Y: baseline}, size, TextColor)

	arcLeft := w/2 + m.Width/2 + size/2
	arcTop := h/2 - size/2
	c.DrawArc(paint.RectXYWH(arcLeft, arcTop, size, size), 0, float32(v.SweepDegrees()), o.ArcColor)
}
