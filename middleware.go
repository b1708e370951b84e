package localize

import "net/http"

// LanguageSource extracts a locale code from a request. Returns ("", false)
// when the source has nothing to say, letting the next source in the chain
// try.
type LanguageSource func(r *http.Request) (string, bool)

// FromQuery reads the locale code from a query parameter.
func FromQuery(name string) LanguageSource {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromCookie reads the locale code from a plain cookie.
func FromCookie(name string) LanguageSource {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromAcceptLanguage matches the Accept-Language header against the
// available locales.
func FromAcceptLanguage(available []Locale) LanguageSource {
	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return "", false
		}
		loc := MatchLocale(header, available)
		if loc.IsZero() {
			return "", false
		}
		return loc.String(), true
	}
}

// FromAcceptHeader reads the highest-quality tag of the Accept-Language
// header without matching it against a known set. Unsupported locales
// degrade to source-text passthrough downstream.
func FromAcceptHeader() LanguageSource {
	return func(r *http.Request) (string, bool) {
		prefs := parseAcceptHeader(r.Header.Get("Accept-Language"))
		if len(prefs) == 0 {
			return "", false
		}
		return prefs[0].locale.String(), true
	}
}

// Middleware resolves the request's locale and records it on the request
// context, so handlers can call the translation and formatting methods with
// r.Context() directly. Sources are tried in order; the first hit wins, and
// a full miss leaves the default locale in effect.
//
// Without explicit sources the chain is query parameter "lang", cookie
// "lang", then the Accept-Language header.
func (l *Localizer) Middleware(sources ...LanguageSource) func(http.Handler) http.Handler {
	if len(sources) == 0 {
		sources = []LanguageSource{
			FromQuery("lang"),
			FromCookie("lang"),
			FromAcceptHeader(),
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, src := range sources {
				if code, ok := src(r); ok && code != "" {
					r = r.WithContext(l.SetLanguage(r.Context(), code))
					break
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
