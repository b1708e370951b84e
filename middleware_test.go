package localize_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
)

func newTestLocalizer(t *testing.T) *localize.Localizer {
	t.Helper()
	loc, err := localize.New(
		localize.WithCatalog("fr", map[string]any{"Remove": "Retirer"}),
		localize.WithCatalog("de", map[string]any{"Remove": "Entfernen"}),
	)
	require.NoError(t, err)
	return loc
}

func serveLanguage(t *testing.T, loc *localize.Localizer, req *http.Request, sources ...localize.LanguageSource) (string, string) {
	t.Helper()

	var lang, translated string
	handler := loc.Middleware(sources...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang = loc.CurrentLanguage(r.Context()).Locale().String()
		translated = loc.T(r.Context(), "Remove")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return lang, translated
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("query parameter wins over everything", func(t *testing.T) {
		t.Parallel()
		loc := newTestLocalizer(t)

		req := httptest.NewRequest(http.MethodGet, "/?lang=fr_FR", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "de_DE"})
		req.Header.Set("Accept-Language", "de-DE")

		lang, translated := serveLanguage(t, loc, req)
		require.Equal(t, "fr_FR", lang)
		require.Equal(t, "Retirer", translated)
	})

	t.Run("cookie beats the header", func(t *testing.T) {
		t.Parallel()
		loc := newTestLocalizer(t)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "de_DE"})
		req.Header.Set("Accept-Language", "fr-FR")

		lang, translated := serveLanguage(t, loc, req)
		require.Equal(t, "de_DE", lang)
		require.Equal(t, "Entfernen", translated)
	})

	t.Run("accept-language header as last resort", func(t *testing.T) {
		t.Parallel()
		loc := newTestLocalizer(t)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "fr-CA,fr;q=0.9,en;q=0.8")

		lang, translated := serveLanguage(t, loc, req)
		require.Equal(t, "fr_CA", lang)
		require.Equal(t, "Retirer", translated, "fr_CA serves from the fr catalog")
	})

	t.Run("no signal leaves the default locale", func(t *testing.T) {
		t.Parallel()
		loc := newTestLocalizer(t)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		lang, translated := serveLanguage(t, loc, req)
		require.Equal(t, "en_US", lang)
		require.Equal(t, "Remove", translated)
	})

	t.Run("custom source chain", func(t *testing.T) {
		t.Parallel()
		loc := newTestLocalizer(t)

		req := httptest.NewRequest(http.MethodGet, "/?locale=de", nil)
		req.Header.Set("Accept-Language", "fr-FR")

		lang, _ := serveLanguage(t, loc, req, localize.FromQuery("locale"))
		require.Equal(t, "de_US", lang)
	})

	t.Run("matching against an available set", func(t *testing.T) {
		t.Parallel()
		loc := newTestLocalizer(t)
		available := []localize.Locale{
			localize.NewLocale("en", "US"),
			localize.NewLocale("fr", "FR"),
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "fr-CA")

		lang, _ := serveLanguage(t, loc, req, localize.FromAcceptLanguage(available))
		require.Equal(t, "fr_FR", lang, "fr_CA narrows to the available fr_FR")
	})
}
