package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLanguage = "🌐"
	IconError    = "❌"
	IconSuccess  = "✔"
)

// Layout sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 360

	// Touch target minimum size (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	ButtonMinWidth float32 = 280
)

// Animation
const (
	// FramePeriod is the length of one pass of the fyne animation driving
	// button frames. Ticks arrive once per display refresh regardless.
	FramePeriod = time.Second
)
