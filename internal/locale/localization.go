package locale

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyDownload         = "download"
	KeyLoading          = "loading"
	KeySelectFile       = "select_file"
	KeyDownloadStarted  = "download_started"
	KeyDownloadComplete = "download_complete"
	KeyStatusSuccess    = "status_success"
	KeyStatusFailed     = "status_failed"
	KeyFileName         = "file_name"
	KeyStatus           = "status"
	KeyLanguage         = "language"
	KeyFile             = "file"
	KeyQuit             = "quit"
	KeyRepoGlide        = "repo_glide"
	KeyRepoLoadApp      = "repo_load_app"
	KeyRepoRetrofit     = "repo_retrofit"
	KeyTUIHelp          = "tui_help"
	KeySettings         = "settings"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyRestartRequired  = "restart_required"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Load App",
		KeyDownload:         "Download",
		KeyLoading:          "Loading…",
		KeySelectFile:       "Please select the file to download",
		KeyDownloadStarted:  "Download started",
		KeyDownloadComplete: "Download Complete",
		KeyStatusSuccess:    "Success",
		KeyStatusFailed:     "Failed",
		KeyFileName:         "File name",
		KeyStatus:           "Status",
		KeyLanguage:         "Language",
		KeyFile:             "File",
		KeyQuit:             "Quit",
		KeyRepoGlide:        "Glide - Image Loading Library by BumpTech",
		KeyRepoLoadApp:      "LoadApp - Current repository by Udacity",
		KeyRepoRetrofit:     "Retrofit - Type-safe HTTP client for Android and Java by Square, Inc",
		KeyTUIHelp:          "1-3 select · enter download · q quit",
		KeySettings:         "Settings",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyRestartRequired:  "Restart the app to update the button label",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Load App",
		KeyDownload:         "Скачать",
		KeyLoading:          "Загрузка…",
		KeySelectFile:       "Пожалуйста, выберите файл для загрузки",
		KeyDownloadStarted:  "Загрузка начата",
		KeyDownloadComplete: "Загрузка завершена",
		KeyStatusSuccess:    "Успешно",
		KeyStatusFailed:     "Ошибка",
		KeyFileName:         "Имя файла",
		KeyStatus:           "Статус",
		KeyLanguage:         "Язык",
		KeyFile:             "Файл",
		KeyQuit:             "Выход",
		KeyRepoGlide:        "Glide - библиотека загрузки изображений от BumpTech",
		KeyRepoLoadApp:      "LoadApp - текущий репозиторий от Udacity",
		KeyRepoRetrofit:     "Retrofit - типобезопасный HTTP клиент для Android и Java от Square, Inc",
		KeyTUIHelp:          "1-3 выбор · enter скачать · q выход",
		KeySettings:         "Настройки",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyRestartRequired:  "Перезапустите приложение, чтобы обновить надпись кнопки",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Load App",
		KeyDownload:         "Baixar",
		KeyLoading:          "Carregando…",
		KeySelectFile:       "Por favor, selecione o arquivo para baixar",
		KeyDownloadStarted:  "Download iniciado",
		KeyDownloadComplete: "Download concluído",
		KeyStatusSuccess:    "Sucesso",
		KeyStatusFailed:     "Falhou",
		KeyFileName:         "Nome do arquivo",
		KeyStatus:           "Status",
		KeyLanguage:         "Idioma",
		KeyFile:             "Arquivo",
		KeyQuit:             "Sair",
		KeyRepoGlide:        "Glide - Biblioteca de carregamento de imagens da BumpTech",
		KeyRepoLoadApp:      "LoadApp - Repositório atual da Udacity",
		KeyRepoRetrofit:     "Retrofit - Cliente HTTP com tipagem segura para Android e Java da Square, Inc",
		KeyTUIHelp:          "1-3 selecionar · enter baixar · q sair",
		KeySettings:         "Configurações",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyRestartRequired:  "Reinicie o aplicativo para atualizar o rótulo do botão",
	}
}
