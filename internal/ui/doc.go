// Package ui contains the Fyne-based desktop host for the loading button.
// LoadingButton adapts the toolkit independent button to a fyne widget, and
// RootUI lays out the repository choices, the button and a status line.
// All UI strings are localized via locale.Localization.
package ui
