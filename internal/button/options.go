package button

import (
	"image/color"
	"math"
	"time"
)

// Default option values
const (
	DefaultInitialLabel = "Download"
	DefaultLoadingLabel = "Loading…"
	DefaultTextSize     = 21
	DefaultDuration     = 3000 * time.Millisecond
	DefaultArcMultiple  = 1.0
	DefaultPadding      = 16
	DefaultMinHeight    = 48 // touch target height
)

// Default colors
var (
	DefaultBackgroundColor color.Color = color.NRGBA{R: 0x07, G: 0xC2, B: 0xAA, A: 0xFF}
	DefaultProgressColor   color.Color = color.NRGBA{R: 0x00, G: 0x43, B: 0x49, A: 0xFF}
	DefaultArcColor        color.Color = color.NRGBA{R: 0xF9, G: 0xA8, B: 0x25, A: 0xFF}

	// TextColor is the fixed foreground the label is painted in.
	TextColor color.Color = color.White
)

// Options configures a Button at construction time. Zero or invalid fields
// fall back to the package defaults, except MinWidth whose default is zero.
type Options struct {
	InitialLabel    string // call-to-action shown while idle
	LoadingLabel    string // shown while an animation run is active
	BackgroundColor color.Color
	ProgressColor   color.Color
	ArcColor        color.Color
	TextSize        float32

	// Duration of one animation run from empty to full
	Duration time.Duration
	// ArcMultiple scales the fill fraction into the arc fraction before clamping to 1
	ArcMultiple float64

	Padding   int // applied on every side when measuring
	MinWidth  int // enforced minimum content width
	MinHeight int // enforced minimum total height
}

// DefaultOptions returns the options used for any unset field.
func DefaultOptions() Options {
	return Options{
		InitialLabel:    DefaultInitialLabel,
		LoadingLabel:    DefaultLoadingLabel,
		BackgroundColor: DefaultBackgroundColor,
		ProgressColor:   DefaultProgressColor,
		ArcColor:        DefaultArcColor,
		TextSize:        DefaultTextSize,
		Duration:        DefaultDuration,
		ArcMultiple:     DefaultArcMultiple,
		Padding:         DefaultPadding,
		MinHeight:       DefaultMinHeight,
	}
}

// Normalize returns a copy of o with every invalid field replaced by its default.
func (o Options) Normalize() Options {
	d := DefaultOptions()

	if o.InitialLabel == "" {
		o.InitialLabel = d.InitialLabel
	}
	if o.LoadingLabel == "" {
		o.LoadingLabel = d.LoadingLabel
	}
	if o.BackgroundColor == nil {
		o.BackgroundColor = d.BackgroundColor
	}
	if o.ProgressColor == nil {
		o.ProgressColor = d.ProgressColor
	}
	if o.ArcColor == nil {
		o.ArcColor = d.ArcColor
	}
	if !(o.TextSize > 0) || math.IsInf(float64(o.TextSize), 0) {
		o.TextSize = d.TextSize
	}
	if o.Duration <= 0 {
		o.Duration = d.Duration
	}
	if !(o.ArcMultiple > 0) || math.IsInf(o.ArcMultiple, 0) {
		o.ArcMultiple = d.ArcMultiple
	}
	if o.Padding <= 0 {
		o.Padding = d.Padding
	}
	if o.MinWidth < 0 {
		o.MinWidth = 0
	}
	if o.MinHeight <= 0 {
		o.MinHeight = d.MinHeight
	}
	return o
}
