package model

// VisualState is what the button draws on a given frame. It is derived from
// ButtonState and animation progress and never stored by hosts.
type VisualState struct {
	Label        string
	FillFraction float64 // 0.0 to 1.0, share of the width covered by the progress color
	ArcFraction  float64 // 0.0 to 1.0, share of a full circle swept by the arc
	Width        int     // from the last measurement pass
	Height       int
}

// HasArea reports whether the button has been measured to a drawable size
func (v VisualState) HasArea() bool {
	return v.Width > 0 && v.Height > 0
}

// ProgressWidth returns the width in pixels covered by the progress fill
func (v VisualState) ProgressWidth() float64 {
	return v.FillFraction * float64(v.Width)
}

// SweepDegrees returns the arc sweep angle in degrees
func (v VisualState) SweepDegrees() float64 {
	return v.ArcFraction * 360
}
