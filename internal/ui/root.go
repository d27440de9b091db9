package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/loadbutton/internal/button"
	"github.com/ytget/loadbutton/internal/config"
	"github.com/ytget/loadbutton/internal/host"
	"github.com/ytget/loadbutton/internal/locale"
	"github.com/ytget/loadbutton/internal/model"
)

// RootUI represents the main window: repository choices, the loading button
// and a status line standing in for the details screen.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *locale.Localization
	screen       *host.Screen

	titleLabel  *widget.Label
	repoGroup   *widget.RadioGroup
	button      *LoadingButton
	statusLabel *widget.Label
	repoKeys    map[string]string // radio option -> repository key
}

// NewRootUI creates and initializes the main UI. Labels left empty in opts
// are filled from the current language.
func NewRootUI(window fyne.Window, app fyne.App, ops host.Operations, opts button.Options) *RootUI {
	settings := config.NewSettings(app)

	localization := locale.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if opts.InitialLabel == "" {
		opts.InitialLabel = localization.GetText(locale.KeyDownload)
	}
	if opts.LoadingLabel == "" {
		opts.LoadingLabel = localization.GetText(locale.KeyLoading)
	}

	ui := newRootUI(window, app, ops, NewLoadingButton(opts, nil), settings, localization, fyne.Do)
	window.SetOnClosed(ui.onClosed)
	return ui
}

func newRootUI(window fyne.Window, app fyne.App, ops host.Operations, lb *LoadingButton,
	settings *config.Settings, localization *locale.Localization, dispatch host.Dispatcher) *RootUI {
	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		button:       lb,
	}
	ui.screen = host.NewScreen(lb, ops, localization, dispatch)
	ui.screen.SetNoticeCallback(ui.onNotice)
	lb.OnTapped = ui.screen.Click

	window.SetTitle(localization.GetText(locale.KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleLabel = widget.NewLabel(ui.localization.GetText(locale.KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Alignment = fyne.TextAlignCenter

	ui.repoKeys = make(map[string]string)
	options := []string{}
	for _, repo := range ui.screen.Repositories() {
		ui.repoKeys[repo.Name] = repo.Key
		options = append(options, repo.Name)
	}
	ui.repoGroup = widget.NewRadioGroup(options, ui.onRepositorySelected)

	// Restore the previous selection
	if last := ui.settings.GetLastRepository(); last != "" {
		for _, repo := range ui.screen.Repositories() {
			if repo.Key == last {
				ui.repoGroup.SetSelected(repo.Name)
			}
		}
	}

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	ui.statusLabel.Alignment = fyne.TextAlignCenter

	buttonRow := container.NewCenter(container.NewGridWrap(
		fyne.NewSize(ButtonMinWidth, ui.button.MinSize().Height), ui.button))

	content := container.NewBorder(
		ui.titleLabel,                                // top
		container.NewVBox(buttonRow, ui.statusLabel), // bottom
		nil,                                          // left
		nil,                                          // right
		container.NewPadded(ui.repoGroup),            // center
	)

	ui.window.SetContent(content)
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(IconSettings+" "+ui.localization.GetText(locale.KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(locale.KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	quitItem := fyne.NewMenuItem(ui.localization.GetText(locale.KeyQuit), ui.onQuit)
	quitItem.IsQuit = true

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(locale.KeyFile), settingsItem, fyne.NewMenuItemSeparator(), quitItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onRepositorySelected handles a radio selection
func (ui *RootUI) onRepositorySelected(name string) {
	key, ok := ui.repoKeys[name]
	if !ok {
		return
	}
	if err := ui.screen.Select(key); err != nil {
		log.Printf("Select repository: %v", err)
		return
	}
	ui.settings.SetLastRepository(key)
}

// onNotice shows screen messages in the status line
func (ui *RootUI) onNotice(n host.Notice) {
	text := n.Text
	if n.Kind == host.NoticeResult && n.Operation != nil {
		icon := IconSuccess
		if n.Operation.Status != model.OperationSucceeded {
			icon = IconError
		}
		text = icon + " " + text
		ui.sendCompletionNotification(n)
	}
	ui.statusLabel.SetText(text)
}

// sendCompletionNotification sends a system notification for finished operations
func (ui *RootUI) sendCompletionNotification(n host.Notice) {
	if ui.app == nil {
		return
	}
	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(locale.KeyDownloadComplete),
		Content: n.Operation.GetDisplayName(),
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onLanguageChange).Show()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.localization.GetText(locale.KeyAppTitle))
	ui.titleLabel.SetText(ui.localization.GetText(locale.KeyAppTitle))
	// Button labels are fixed at construction
	ui.statusLabel.SetText(ui.localization.GetText(locale.KeyRestartRequired))

	ui.createMenu()
}

// onQuit stops background work and exits the app
func (ui *RootUI) onQuit() {
	ui.onClosed()
	if ui.app != nil {
		ui.app.Quit()
	}
}

// onClosed stops background work when the window goes away
func (ui *RootUI) onClosed() {
	ui.screen.Close()
	ui.button.Destroy()
}
