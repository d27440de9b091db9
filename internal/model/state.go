package model

import "fmt"

// ButtonState is the discrete lifecycle stage of a loading button
type ButtonState int

const (
	// StateReady is the initial state: call-to-action label, no progress
	StateReady ButtonState = iota

	// StateClicked acknowledges a user press; no animation yet
	StateClicked

	// StateLoading means an animation run is in progress
	StateLoading

	// StateCompleted means the animation stopped and the label was reset.
	// It looks like StateReady but is only entered from StateLoading.
	StateCompleted
)

// String returns the string representation of ButtonState
func (s ButtonState) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateClicked:
		return "Clicked"
	case StateLoading:
		return "Loading"
	case StateCompleted:
		return "Completed"
	default:
		return fmt.Sprintf("ButtonState(%d)", int(s))
	}
}

// IsIdle returns true if the button shows the call-to-action with no progress
func (s ButtonState) IsIdle() bool {
	return s == StateReady || s == StateCompleted
}

// IsAnimating returns true if the button owns a running animation
func (s ButtonState) IsAnimating() bool {
	return s == StateLoading
}

// IsValid reports whether s is one of the declared states
func (s ButtonState) IsValid() bool {
	return s >= StateReady && s <= StateCompleted
}
