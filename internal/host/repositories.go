package host

import (
	"github.com/ytget/loadbutton/internal/locale"
	"github.com/ytget/loadbutton/internal/model"
)

// Repository keys
const (
	RepoGlide    = "glide"
	RepoLoadApp  = "load_app"
	RepoRetrofit = "retrofit"
)

// Repository archive URLs
const (
	GlideURL    = "https://github.com/bumptech/glide/archive/master.zip"
	LoadAppURL  = "https://github.com/udacity/nd940-c3-advanced-android-programming-project-starter/archive/master.zip"
	RetrofitURL = "https://github.com/square/retrofit/archive/master.zip"
)

// DefaultRepositories returns the choices offered on the main screen with
// names in the current language.
func DefaultRepositories(loc *locale.Localization) []model.Repository {
	return []model.Repository{
		{Key: RepoGlide, Name: loc.GetText(locale.KeyRepoGlide), URL: GlideURL},
		{Key: RepoLoadApp, Name: loc.GetText(locale.KeyRepoLoadApp), URL: LoadAppURL},
		{Key: RepoRetrofit, Name: loc.GetText(locale.KeyRepoRetrofit), URL: RetrofitURL},
	}
}
