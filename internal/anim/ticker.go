package anim

import "time"

// DefaultFrameInterval is the cadence used when a host does not supply one.
const DefaultFrameInterval = 16 * time.Millisecond

// FrameFunc receives the clock time of the frame being produced.
type FrameFunc func(now time.Time)

// Ticker is a running subscription to frame ticks.
type Ticker interface {
	// Stop cancels the subscription. No tick is delivered after Stop returns.
	Stop()
}

// FrameSource starts tick subscriptions.
type FrameSource interface {
	Start(fn FrameFunc) Ticker
}

// Loop is a FrameSource stepped explicitly by its owner, once per frame.
//
// Loop is not safe for concurrent use; it must be stepped on the same
// goroutine that starts and stops its tickers.
type Loop struct {
	clock   Clock
	tickers []*loopTicker
}

// NewLoop creates a loop that stamps frames with the given clock.
func NewLoop(clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{clock: clock}
}

// Start registers fn to be called on every Step until the ticker is stopped.
func (l *Loop) Start(fn FrameFunc) Ticker {
	t := &loopTicker{loop: l, fn: fn, active: true}
	l.tickers = append(l.tickers, t)
	return t
}

// Step delivers one frame to every active ticker and returns how many were
// called. Tickers stopped by an earlier callback in the same step are skipped.
func (l *Loop) Step() int {
	if len(l.tickers) == 0 {
		return 0
	}
	now := l.clock.Now()

	// Copy so callbacks may start or stop tickers
	tickers := make([]*loopTicker, len(l.tickers))
	copy(tickers, l.tickers)

	fired := 0
	for _, t := range tickers {
		if t.active && t.fn != nil {
			t.fn(now)
			fired++
		}
	}
	return fired
}

// Active returns the number of running tickers.
func (l *Loop) Active() int {
	return len(l.tickers)
}

func (l *Loop) remove(t *loopTicker) {
	for i, other := range l.tickers {
		if other == t {
			l.tickers = append(l.tickers[:i], l.tickers[i+1:]...)
			return
		}
	}
}

type loopTicker struct {
	loop   *Loop
	fn     FrameFunc
	active bool
}

func (t *loopTicker) Stop() {
	if !t.active {
		return
	}
	t.active = false
	t.loop.remove(t)
}

// Pump advances clock by total in steps of at most frame, stepping loop after
// each advance. It returns the number of frames produced.
func Pump(loop *Loop, clock *FakeClock, total, frame time.Duration) int {
	if frame <= 0 {
		frame = DefaultFrameInterval
	}
	frames := 0
	for elapsed := time.Duration(0); elapsed < total; {
		step := frame
		if remaining := total - elapsed; remaining < step {
			step = remaining
		}
		clock.Advance(step)
		elapsed += step
		loop.Step()
		frames++
	}
	return frames
}
