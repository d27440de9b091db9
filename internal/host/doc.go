// Package host holds the toolkit independent part of the screen that owns a
// loading button: repository selection, click handling, and mapping the
// completion signal of an external operation onto button state transitions.
// The external operation itself is opaque behind the Operations interface.
package host
