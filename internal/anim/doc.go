// Package anim provides the timing primitives that drive the loading button.
//
// A [FrameSource] delivers ticks at the host's frame cadence until the
// returned [Ticker] is stopped. Hosts with their own animation facility
// adapt it to FrameSource; hosts without one step a [Loop] once per frame.
// Tests pair a Loop with a [FakeClock] and advance time with [Pump].
package anim
