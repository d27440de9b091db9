package anim

import (
	"testing"
	"time"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestLoop_StepDeliversClockTime(t *testing.T) {
	clk := NewFakeClock()
	loop := NewLoop(clk)

	var got []time.Time
	loop.Start(func(now time.Time) { got = append(got, now) })

	clk.Advance(16 * time.Millisecond)
	loop.Step()
	clk.Advance(16 * time.Millisecond)
	loop.Step()

	if len(got) != 2 {
		t.Fatalf("expected 2 ticks, got %d", len(got))
	}
	if d := got[1].Sub(got[0]); d != 16*time.Millisecond {
		t.Errorf("expected 16ms between ticks, got %v", d)
	}
}

func TestLoop_StopPreventsFurtherTicks(t *testing.T) {
	clk := NewFakeClock()
	loop := NewLoop(clk)

	calls := 0
	ticker := loop.Start(func(time.Time) { calls++ })
	loop.Step()
	ticker.Stop()
	ticker.Stop()
	loop.Step()

	if calls != 1 {
		t.Errorf("expected 1 tick before stop, got %d", calls)
	}
	if loop.Active() != 0 {
		t.Errorf("expected no active tickers, got %d", loop.Active())
	}
}

func TestLoop_StopFromEarlierCallback(t *testing.T) {
	loop := NewLoop(NewFakeClock())

	var second Ticker
	secondCalls := 0
	loop.Start(func(time.Time) { second.Stop() })
	second = loop.Start(func(time.Time) { secondCalls++ })

	if fired := loop.Step(); fired != 1 {
		t.Errorf("expected 1 callback fired, got %d", fired)
	}
	if secondCalls != 0 {
		t.Errorf("stopped ticker was called %d times", secondCalls)
	}
}

func TestPump(t *testing.T) {
	clk := NewFakeClock()
	loop := NewLoop(clk)
	start := clk.Now()

	ticks := 0
	loop.Start(func(time.Time) { ticks++ })

	frames := Pump(loop, clk, 100*time.Millisecond, 30*time.Millisecond)
	if frames != 4 || ticks != 4 {
		t.Errorf("expected 4 frames and ticks, got %d frames %d ticks", frames, ticks)
	}
	if elapsed := clk.Now().Sub(start); elapsed != 100*time.Millisecond {
		t.Errorf("expected clock to advance exactly 100ms, got %v", elapsed)
	}
}
