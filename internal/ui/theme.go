package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/loadbutton/internal/button"
)

// LoadTheme is the application theme. Its primary color follows the loading
// button so radio selections and focus rings match it.
type LoadTheme struct {
	primary color.Color
}

// NewLoadTheme creates a theme accented with the button's background color
func NewLoadTheme(opts button.Options) fyne.Theme {
	return &LoadTheme{primary: opts.Normalize().BackgroundColor}
}

// Color returns theme colors
func (t *LoadTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for success
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for failures
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return t.primary
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *LoadTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *LoadTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *LoadTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6 // Increased from default 4
	case theme.SizeNameInnerPadding:
		return 10 // Increased from default 8
	case theme.SizeNameHeadingText:
		return 20 // Increased from default 18
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
