package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage       = "app_language"
	KeyLastRepository = "last_repository"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings manages per-user preferences of the desktop host
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLastRepository returns the key of the repository selected last time,
// or an empty string if none was selected
func (s *Settings) GetLastRepository() string {
	return s.app.Preferences().String(KeyLastRepository)
}

// SetLastRepository remembers the selected repository key
func (s *Settings) SetLastRepository(key string) {
	s.app.Preferences().SetString(KeyLastRepository, key)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
