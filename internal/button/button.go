package button

import (
	"log"
	"time"

	"github.com/ytget/loadbutton/internal/anim"
	"github.com/ytget/loadbutton/internal/model"
	"github.com/ytget/loadbutton/internal/paint"
)

// Button is the toolkit independent loading button.
//
// Button is not safe for concurrent use. SetState, Measure, Render and frame
// ticks must all happen on the host's UI goroutine.
type Button struct {
	opts         Options
	frames       anim.FrameSource
	clock        anim.Clock
	onInvalidate func()

	state  model.ButtonState
	label  string
	fill   float64
	arc    float64
	width  int
	height int

	ticker    anim.Ticker
	runStart  time.Time
	runs      int
	destroyed bool
}

// New creates a button in StateReady. Invalid options fall back to defaults.
// frames delivers animation ticks and clock timestamps runs; a nil clock uses
// system time and nil frames use an anim.Loop that only ticks when stepped.
// onInvalidate is called once per visual change and may be nil.
func New(opts Options, frames anim.FrameSource, clock anim.Clock, onInvalidate func()) *Button {
	if clock == nil {
		clock = anim.SystemClock{}
	}
	if frames == nil {
		frames = anim.NewLoop(clock)
	}
	opts = opts.Normalize()
	return &Button{
		opts:         opts,
		frames:       frames,
		clock:        clock,
		onInvalidate: onInvalidate,
		state:        model.StateReady,
		label:        opts.InitialLabel,
	}
}

// Options returns the normalized construction options.
func (b *Button) Options() Options {
	return b.opts
}

// State returns the current button state.
func (b *Button) State() model.ButtonState {
	return b.state
}

// Visual returns what the next Render will draw.
func (b *Button) Visual() model.VisualState {
	return model.VisualState{
		Label:        b.label,
		FillFraction: b.fill,
		ArcFraction:  b.arc,
		Width:        b.width,
		Height:       b.height,
	}
}

// IsAnimating reports whether a frame ticker is currently running.
func (b *Button) IsAnimating() bool {
	return b.ticker != nil
}

// Runs returns how many animation runs have started, loop restarts included.
func (b *Button) Runs() int {
	return b.runs
}

// SetState moves the button to s and performs the transition's effects.
// Setting the current state again is a no-op.
func (b *Button) SetState(s model.ButtonState) {
	if b.destroyed {
		return
	}
	if !s.IsValid() {
		log.Printf("LoadingButton: ignoring unknown state %s", s)
		return
	}
	from := b.state
	if from == s {
		return
	}

	switch s {
	case model.StateClicked:
		if from == model.StateLoading {
			// A press while loading must not interrupt the run
			log.Printf("LoadingButton: ignoring %s while %s", s, from)
			return
		}
		b.state = s
	case model.StateLoading:
		b.state = s
		b.label = b.opts.LoadingLabel
		b.startRun()
	case model.StateCompleted:
		if from != model.StateLoading {
			// Completed only ends a run
			log.Printf("LoadingButton: ignoring %s while %s", s, from)
			return
		}
		b.stopRun()
		b.state = s
		b.label = b.opts.InitialLabel
		b.setProgress(0)
	case model.StateReady:
		b.stopRun()
		b.state = s
		b.label = b.opts.InitialLabel
		b.setProgress(0)
	}

	log.Printf("LoadingButton: %s -> %s", from, s)
	b.invalidate()
}

// Measure resolves the button size against the layout constraints and caches
// it for rendering. It does not touch animation state.
func (b *Button) Measure(width, height MeasureSpec) (int, int) {
	dw, dh := desiredSize(b.opts)
	b.width = ResolveSize(dw, width)
	b.height = ResolveSize(dh, height)
	return b.width, b.height
}

// DesiredSize returns the size Measure resolves to when unconstrained.
func (b *Button) DesiredSize() (int, int) {
	return desiredSize(b.opts)
}

// Render draws the current visual state onto c. It does not mutate the button.
func (b *Button) Render(c paint.Canvas) {
	Draw(c, b.Visual(), b.opts)
}

// Destroy stops any running animation. The button ignores all later state
// changes and never invalidates again.
func (b *Button) Destroy() {
	b.stopRun()
	b.destroyed = true
}

func (b *Button) startRun() {
	b.runStart = b.clock.Now()
	b.runs++
	b.setProgress(0)
	if b.ticker == nil {
		b.ticker = b.frames.Start(b.onFrame)
	}
}

func (b *Button) stopRun() {
	if b.ticker != nil {
		b.ticker.Stop()
		b.ticker = nil
	}
}

func (b *Button) onFrame(now time.Time) {
	if b.state != model.StateLoading || b.ticker == nil {
		return
	}

	d := b.opts.Duration
	elapsed := now.Sub(b.runStart)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= d {
		// The run ended while still loading: start over from empty
		finished := elapsed / d
		b.runStart = b.runStart.Add(finished * d)
		b.runs += int(finished)
		elapsed -= finished * d
		log.Printf("LoadingButton: animation run finished while loading, restarting (run %d)", b.runs)
	}

	b.setProgress(float64(elapsed) / float64(d))
	b.invalidate()
}

func (b *Button) setProgress(fill float64) {
	b.fill = clamp01(fill)
	b.arc = clamp01(fill * b.opts.ArcMultiple)
}

func (b *Button) invalidate() {
	if b.onInvalidate != nil && !b.destroyed {
		b.onInvalidate()
	}
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
