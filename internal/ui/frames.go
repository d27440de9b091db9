package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/loadbutton/internal/anim"
)

// AnimationFrames is an anim.FrameSource driven by fyne's animation runner.
// Ticks arrive on the fyne main goroutine once per display refresh.
type AnimationFrames struct {
	clock anim.Clock
}

// NewAnimationFrames creates a frame source stamping ticks with clock
func NewAnimationFrames(clock anim.Clock) *AnimationFrames {
	if clock == nil {
		clock = anim.SystemClock{}
	}
	return &AnimationFrames{clock: clock}
}

// Start implements anim.FrameSource
func (f *AnimationFrames) Start(fn anim.FrameFunc) anim.Ticker {
	t := &animationTicker{}
	t.animation = fyne.NewAnimation(FramePeriod, func(float32) {
		// The runner may deliver one more tick after Stop
		if t.stopped {
			return
		}
		fn(f.clock.Now())
	})
	t.animation.Curve = fyne.AnimationLinear
	t.animation.RepeatCount = fyne.AnimationRepeatForever
	t.animation.Start()
	return t
}

type animationTicker struct {
	animation *fyne.Animation
	stopped   bool
}

// Stop implements anim.Ticker
func (t *animationTicker) Stop() {
	if t.stopped {
		return
	}
	t.stopped = true
	t.animation.Stop()
}
