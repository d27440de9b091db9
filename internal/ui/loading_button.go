package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/loadbutton/internal/anim"
	"github.com/ytget/loadbutton/internal/button"
	"github.com/ytget/loadbutton/internal/model"
	"github.com/ytget/loadbutton/internal/paint"
)

// LoadingButton is a fyne widget wrapping button.Button. It draws through
// four canvas objects that are repositioned on every refresh.
type LoadingButton struct {
	widget.BaseWidget

	OnTapped func() `json:"-"`

	button *button.Button
}

// NewLoadingButton creates a loading button animated by fyne's animation runner
func NewLoadingButton(opts button.Options, tapped func()) *LoadingButton {
	clock := anim.SystemClock{}
	return NewLoadingButtonWithFrames(opts, NewAnimationFrames(clock), clock, tapped)
}

// NewLoadingButtonWithFrames creates a loading button with an explicit frame
// source and clock
func NewLoadingButtonWithFrames(opts button.Options, frames anim.FrameSource, clock anim.Clock, tapped func()) *LoadingButton {
	lb := &LoadingButton{OnTapped: tapped}
	lb.button = button.New(opts, frames, clock, lb.Refresh)
	lb.ExtendBaseWidget(lb)
	return lb
}

// SetState forwards a transition to the underlying button
func (lb *LoadingButton) SetState(s model.ButtonState) {
	lb.button.SetState(s)
}

// State returns the underlying button state
func (lb *LoadingButton) State() model.ButtonState {
	return lb.button.State()
}

// Visual returns what the widget currently shows
func (lb *LoadingButton) Visual() model.VisualState {
	return lb.button.Visual()
}

// Runs returns how many animation runs have started
func (lb *LoadingButton) Runs() int {
	return lb.button.Runs()
}

// Destroy stops the animation. Call it when the owning window closes.
func (lb *LoadingButton) Destroy() {
	lb.button.Destroy()
}

// Tapped implements fyne.Tappable
func (lb *LoadingButton) Tapped(*fyne.PointEvent) {
	if lb.OnTapped != nil {
		lb.OnTapped()
	}
}

// CreateRenderer implements fyne.Widget
func (lb *LoadingButton) CreateRenderer() fyne.WidgetRenderer {
	lb.ExtendBaseWidget(lb)
	return &loadingButtonRenderer{lb: lb, canvas: newObjectCanvas()}
}

type loadingButtonRenderer struct {
	lb     *LoadingButton
	canvas *objectCanvas

	rec       *paint.Recorder
	recWidth  int
	recHeight int
}

// Layout measures the button to exactly the allotted size
func (r *loadingButtonRenderer) Layout(size fyne.Size) {
	r.lb.button.Measure(
		button.ExactSize(int(math.Round(float64(size.Width)))),
		button.ExactSize(int(math.Round(float64(size.Height)))),
	)
	r.Refresh()
}

// MinSize is the button's desired size, widened so the longer label and the
// arc beside it fit
func (r *loadingButtonRenderer) MinSize() fyne.Size {
	w, h := r.lb.button.DesiredSize()
	o := r.lb.button.Options()
	width := float32(w)
	for _, label := range []string{o.InitialLabel, o.LoadingLabel} {
		m := r.canvas.MeasureText(label, o.TextSize)
		// label centered, arc offset by half a text size and one text size wide
		need := m.Width + 3*o.TextSize + float32(2*o.Padding)
		if need > width {
			width = need
		}
	}
	height := float32(h)
	if height < MinTouchTargetSize {
		height = MinTouchTargetSize
	}
	return fyne.NewSize(float32(math.Ceil(float64(width))), height)
}

// Refresh replays the button's display list onto the canvas objects
func (r *loadingButtonRenderer) Refresh() {
	v := r.lb.button.Visual()
	rec := r.recorder(v.Width, v.Height)
	r.lb.button.Render(rec)

	r.canvas.reset()
	rec.DisplayList().Paint(r.canvas)
}

// recorder returns an empty recorder for the given surface, reused across
// frames until the size changes
func (r *loadingButtonRenderer) recorder(width, height int) *paint.Recorder {
	if r.rec == nil || r.recWidth != width || r.recHeight != height {
		r.rec = paint.NewRecorder(width, height, r.canvas.textMeasurer)
		r.recWidth, r.recHeight = width, height
		return r.rec
	}
	r.rec.Reset()
	return r.rec
}

func (r *loadingButtonRenderer) Objects() []fyne.CanvasObject {
	return r.canvas.objects()
}

func (r *loadingButtonRenderer) Destroy() {}
