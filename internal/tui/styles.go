package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	accentColor  = lipgloss.Color("#07C2AA")
	textColor    = lipgloss.Color("#c0caf5")
	dimColor     = lipgloss.Color("#565f89")
	successColor = lipgloss.Color("#9ece6a")
	errorColor   = lipgloss.Color("#f7768e")

	titleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			MarginBottom(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(textColor)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(accentColor).
				Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(textColor).
			MarginTop(1)

	successStyle = statusStyle.Foreground(successColor)

	errorStyle = statusStyle.Foreground(errorColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			MarginTop(1)

	buttonMargin = lipgloss.NewStyle().MarginTop(1).PaddingLeft(2)
)
