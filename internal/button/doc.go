// Package button implements the animated loading button independent of any
// UI toolkit.
//
// A [Button] owns a [model.ButtonState], the animation run that fills the
// button while loading, and the drawing procedure that turns the current
// [model.VisualState] into four primitives on a [paint.Canvas]. Hosts call
// Measure during layout, Render during paint, and SetState in response to
// clicks and completion signals. The button's only outward call is the
// invalidate callback asking the host to repaint.
package button
