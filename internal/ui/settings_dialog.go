package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/loadbutton/internal/config"
	"github.com/ytget/loadbutton/internal/locale"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *locale.Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(lang string)

	// UI components
	languageSelect *widget.Select
	codes          map[string]string // display name -> language code
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *locale.Localization, window fyne.Window, onSaved func(lang string)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.codes = make(map[string]string)
	names := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.codes[name] = code
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	form := container.NewVBox(
		widget.NewLabel(IconLanguage+" "+sd.localization.GetText(locale.KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(locale.KeySettings),
		sd.localization.GetText(locale.KeySave),
		sd.localization.GetText(locale.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(360, 200))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for name, code := range sd.codes {
		if code == current {
			sd.languageSelect.SetSelected(name)
			return
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed || sd.languageSelect.Selected == "" {
		return
	}

	lang := sd.codes[sd.languageSelect.Selected]
	sd.settings.SetLanguage(lang)
	if sd.onSaved != nil {
		sd.onSaved(lang)
	}
}
