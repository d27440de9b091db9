package button

import "math"

// MeasureMode says how a layout constraint bounds a dimension.
type MeasureMode int

const (
	// Unspecified lets the button take its desired size
	Unspecified MeasureMode = iota
	// Exactly forces the given size
	Exactly
	// AtMost caps the desired size
	AtMost
)

// MeasureSpec is the constraint a host layout pass places on one dimension.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// ExactSize returns a spec forcing n pixels.
func ExactSize(n int) MeasureSpec { return MeasureSpec{Mode: Exactly, Size: n} }

// AtMostSize returns a spec allowing up to n pixels.
func AtMostSize(n int) MeasureSpec { return MeasureSpec{Mode: AtMost, Size: n} }

// AnySize returns an unconstrained spec.
func AnySize() MeasureSpec { return MeasureSpec{Mode: Unspecified} }

// ResolveSize reconciles a desired size with a constraint. The result is
// never negative.
func ResolveSize(desired int, spec MeasureSpec) int {
	var size int
	switch spec.Mode {
	case Exactly:
		size = spec.Size
	case AtMost:
		size = desired
		if spec.Size < desired {
			size = spec.Size
		}
	default:
		size = desired
	}
	if size < 0 {
		return 0
	}
	return size
}

// desiredSize is the intrinsic minimum: padding plus the enforced minimums,
// with enough height for one line of text.
func desiredSize(o Options) (int, int) {
	w := 2*o.Padding + o.MinWidth
	h := 2*o.Padding + int(math.Ceil(float64(o.TextSize)))
	if h < o.MinHeight {
		h = o.MinHeight
	}
	return w, h
}
