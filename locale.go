package localize

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies a language with an optional region, e.g. "en", "en_AU",
// "fr_FR". It is a value type: two locales are equal iff their normalized
// string forms match. The zero value is the empty locale.
type Locale struct {
	lang   string
	region string
}

// NewLocale builds a locale from a language code and an optional region.
// The language is lowercased and the region uppercased, so NewLocale("FR", "ca")
// and NewLocale("fr", "CA") are the same locale.
func NewLocale(lang, region string) Locale {
	return Locale{
		lang:   strings.ToLower(strings.TrimSpace(lang)),
		region: strings.ToUpper(strings.TrimSpace(region)),
	}
}

// ParseLocale parses "lang", "lang_REGION" or "lang-REGION" into a Locale.
// Parsing is tolerant: anything after the first separator is taken as the
// region, and an empty input yields the zero locale.
func ParseLocale(s string) Locale {
	s = strings.TrimSpace(s)
	if s == "" {
		return Locale{}
	}
	if i := strings.IndexAny(s, "_-"); i >= 0 {
		return NewLocale(s[:i], s[i+1:])
	}
	return NewLocale(s, "")
}

// String returns the normalized form: "fr_FR", or just "de" when no region is set.
func (l Locale) String() string {
	if l.region == "" {
		return l.lang
	}
	return l.lang + "_" + l.region
}

// Language returns the language code, e.g. "fr" for "fr_CA".
func (l Locale) Language() string { return l.lang }

// Region returns the region code, or "" when the locale is language-only.
func (l Locale) Region() string { return l.region }

// WithoutRegion drops the region. The projection is idempotent: a
// language-only locale returns itself.
func (l Locale) WithoutRegion() Locale {
	if l.region == "" {
		return l
	}
	return Locale{lang: l.lang}
}

// IsZero reports whether the locale carries no language at all.
func (l Locale) IsZero() bool { return l.lang == "" }

// Tag converts the locale to a BCP 47 tag for the x/text formatting engines.
// Unrecognized input maps to language.Und rather than failing.
func (l Locale) Tag() language.Tag {
	if l.IsZero() {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(l.String(), "_", "-"))
	if err != nil {
		tag, err = language.Parse(l.lang)
		if err != nil {
			return language.Und
		}
	}
	return tag
}
