package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}

	// Empty resets to default
	settings.SetLanguage("")
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected empty language to reset to %s, got %s", DefaultLanguage, lang)
	}
}

func TestLastRepository(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if key := settings.GetLastRepository(); key != "" {
		t.Errorf("Expected no last repository, got %s", key)
	}

	settings.SetLastRepository("retrofit")
	if key := settings.GetLastRepository(); key != "retrofit" {
		t.Errorf("Expected last repository retrofit, got %s", key)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, code := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[code]; !ok {
			t.Errorf("Expected language option %s", code)
		}
	}
}
