package localize

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
)

// Localizer is the entry point for translation and locale-sensitive
// formatting. It composes the catalog cache, the date format vendor and a
// settings provider, and is safe for concurrent use: registries are written
// at configuration time and read on every call, and the active locale is
// tracked per logical context by the provider strategy.
type Localizer struct {
	vendor        *DateFormatVendor
	cache         *catalogCache
	provider      SettingsProvider
	logger        *slog.Logger
	defaultLocale Locale
	defaultRegion string

	loaders        multiLoader
	static         *StaticLoader
	custom         SettingsProvider
	globalProvider bool
}

// Option configures the Localizer during construction.
type Option func(*Localizer) error

// New creates a Localizer. Without options it scopes the active locale to
// the context, defaults to en_US and has no translations, so every lookup
// falls through to the source text.
func New(opts ...Option) (*Localizer, error) {
	l := &Localizer{
		vendor:        NewDateFormatVendor(),
		logger:        slog.Default(),
		defaultLocale: NewLocale("en", "US"),
		defaultRegion: "US",
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	var loader CatalogLoader
	switch len(l.loaders) {
	case 0:
	case 1:
		loader = l.loaders[0]
	default:
		loader = l.loaders
	}
	l.cache = newCatalogCache(loader, l.logger)

	factory := settingFactory(func(loc Locale) *Setting {
		return newSetting(loc, l.cache.Resolve(loc))
	})
	switch {
	case l.custom != nil:
		l.provider = l.custom
	case l.globalProvider:
		l.provider = newGlobalProvider(factory, l.defaultLocale)
	default:
		l.provider = newContextProvider(factory, l.defaultLocale)
	}

	return l, nil
}

// WithDefaultLocale sets the locale observed by callers that never set one.
func WithDefaultLocale(locale string) Option {
	return func(l *Localizer) error {
		loc := ParseLocale(locale)
		if loc.IsZero() {
			return ErrEmptyLocale
		}
		l.defaultLocale = loc
		return nil
	}
}

// WithDefaultRegion sets the region assumed when SetLanguage receives a bare
// language code. The out-of-the-box default is "US".
func WithDefaultRegion(region string) Option {
	return func(l *Localizer) error {
		region = strings.TrimSpace(region)
		if region == "" {
			return ErrEmptyLocale
		}
		l.defaultRegion = strings.ToUpper(region)
		return nil
	}
}

// WithLoader adds a catalog loader. Loaders are consulted in registration
// order; the first hit wins.
func WithLoader(loader CatalogLoader) Option {
	return func(l *Localizer) error {
		if loader == nil {
			return ErrNilLoader
		}
		l.loaders = append(l.loaders, loader)
		return nil
	}
}

// WithCatalog registers in-memory messages for a locale key. The message map
// follows the NewCatalog conventions (plain strings, plural-form maps,
// context maps).
func WithCatalog(localeKey string, messages map[string]any) Option {
	return func(l *Localizer) error {
		if strings.TrimSpace(localeKey) == "" {
			return ErrEmptyLocale
		}
		if l.static == nil {
			l.static = NewStaticLoader()
			l.loaders = append(l.loaders, l.static)
		}
		l.static.Add(localeKey, messages)
		return nil
	}
}

// WithGlobalLocale switches to the process-wide provider strategy: one
// current locale shared by every caller, for single-tenant batch or CLI
// programs.
func WithGlobalLocale() Option {
	return func(l *Localizer) error {
		l.globalProvider = true
		return nil
	}
}

// WithProvider plugs in a custom settings provider strategy.
func WithProvider(p SettingsProvider) Option {
	return func(l *Localizer) error {
		if p == nil {
			return ErrNilProvider
		}
		l.custom = p
		return nil
	}
}

// WithLogger sets the logger used for catalog load diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Localizer) error {
		if logger != nil {
			l.logger = logger
		}
		return nil
	}
}

// SetLanguage sets the active locale from a "lang" or "lang_COUNTRY" code.
// A bare language code gets the configured default region, so "fr" becomes
// fr_FR's sibling fr_US under the stock configuration; catalog resolution
// still finds the "fr" catalog through language-only fallback. Unknown or
// ill-formed codes degrade to the empty catalog, they never fail the call.
//
// With the context-scoped strategy the locale is recorded on the returned
// context; use that context for subsequent calls.
func (l *Localizer) SetLanguage(ctx context.Context, name string) context.Context {
	return l.SetLocale(ctx, l.parseLanguage(name))
}

// SetLocale is SetLanguage for an already-parsed locale.
func (l *Localizer) SetLocale(ctx context.Context, locale Locale) context.Context {
	if locale.IsZero() {
		locale = l.defaultLocale
	}
	return l.provider.SetLocale(ctx, locale)
}

func (l *Localizer) parseLanguage(name string) Locale {
	name = strings.TrimSpace(name)
	if name == "" {
		return l.defaultLocale
	}
	if strings.ContainsAny(name, "_-") {
		return ParseLocale(name)
	}
	return NewLocale(name, l.defaultRegion)
}

// CurrentLanguage returns the Setting active for the caller's context.
// Never nil.
func (l *Localizer) CurrentLanguage(ctx context.Context) *Setting {
	return l.provider.Vend(ctx)
}

// Language returns the active language code, e.g. "fr".
func (l *Localizer) Language(ctx context.Context) string {
	return l.provider.Vend(ctx).locale.Language()
}

// Supports reports whether translations exist for the given locale code, at
// least at the language level.
func (l *Localizer) Supports(code string) bool {
	loc := ParseLocale(code)
	if loc.IsZero() {
		return false
	}
	return !l.cache.Resolve(loc).IsEmpty()
}

// T translates a source-language message. Missing translations return the
// source text unchanged.
func (l *Localizer) T(ctx context.Context, msg string) string {
	if tr, ok := l.provider.Vend(ctx).catalog.Lookup(msg); ok && tr != "" {
		return tr
	}
	return msg
}

// Tc translates a message qualified by a disambiguation context, resolving
// e.g. noun and verb forms of the same word separately.
func (l *Localizer) Tc(ctx context.Context, msgctx, msg string) string {
	if tr, ok := l.provider.Vend(ctx).catalog.LookupContext(msgctx, msg); ok && tr != "" {
		return tr
	}
	return msg
}

// Tf translates a format string and renders it with the locale's printer,
// so numeric verbs pick up locale digit grouping.
func (l *Localizer) Tf(ctx context.Context, msg string, args ...any) string {
	s := l.provider.Vend(ctx)
	tr, ok := s.catalog.Lookup(msg)
	if !ok || tr == "" {
		tr = msg
	}
	return s.printer.Sprintf(tr, args...)
}

// Tcf combines Tc and Tf.
func (l *Localizer) Tcf(ctx context.Context, msgctx, msg string, args ...any) string {
	s := l.provider.Vend(ctx)
	tr, ok := s.catalog.LookupContext(msgctx, msg)
	if !ok || tr == "" {
		tr = msg
	}
	return s.printer.Sprintf(tr, args...)
}

// TPlural translates a message that varies with a count. The catalog is
// consulted for the language's plural category of n (with CLDR category
// fallback); absent any translation the English two-form source is used.
// The count is not substituted automatically; include it in args when the
// message displays it.
func (l *Localizer) TPlural(ctx context.Context, singular, plural string, n int, args ...any) string {
	s := l.provider.Vend(ctx)
	category := pluralCategory(s.locale.Language(), n)

	tr, ok := s.catalog.LookupPlural(singular, category)
	if !ok {
		for _, fb := range pluralFallbacks(category) {
			if tr, ok = s.catalog.LookupPlural(singular, fb); ok {
				break
			}
		}
	}
	if !ok {
		if n == 1 || n == -1 {
			tr = singular
		} else {
			tr = plural
		}
	}
	if len(args) == 0 {
		return tr
	}
	return s.printer.Sprintf(tr, args...)
}

// Th is T escaped for safe embedding in HTML.
func (l *Localizer) Th(ctx context.Context, msg string) string {
	return html.EscapeString(l.T(ctx, msg))
}

// Tfh is Tf escaped for safe embedding in HTML.
func (l *Localizer) Tfh(ctx context.Context, msg string, args ...any) string {
	return html.EscapeString(l.Tf(ctx, msg, args...))
}

// Tw is T with wiki markup expanded to HTML.
func (l *Localizer) Tw(ctx context.Context, msg string) string {
	return Wikify(l.T(ctx, msg))
}

// Tfw is Tf with wiki markup expanded to HTML.
func (l *Localizer) Tfw(ctx context.Context, msg string, args ...any) string {
	return Wikify(l.Tf(ctx, msg, args...))
}

// JoinList renders words as a natural-language list ("a, b, and c"), with
// the separators themselves translatable so languages that do not use the
// comma-and pattern can override them. inclusive selects and/or.
func (l *Localizer) JoinList(ctx context.Context, words []string, inclusive bool) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}

	s := l.provider.Vend(ctx)
	if len(words) == 2 {
		pair := "%s or %s"
		if inclusive {
			pair = "%s and %s"
		}
		return s.printer.Sprintf(l.Tc(ctx, "two-item list", pair), words[0], words[1])
	}

	comma := l.Tc(ctx, "list separator", ",")
	ending := "%s, or %s"
	if inclusive {
		ending = "%s, and %s"
	}
	head := strings.Join(words[:len(words)-1], comma+" ")
	return s.printer.Sprintf(l.Tc(ctx, "list ending", ending), head, words[len(words)-1])
}

// RegisterDateFormat registers a custom date format layout for a locale.
// The id must be DefaultFormatID or greater; set acceptForInput to have
// ParseDate try the layout after the standard parsers.
func (l *Localizer) RegisterDateFormat(id FormatID, locale Locale, layout string, acceptForInput bool) error {
	return l.vendor.Register(id, locale, NewDateFormat(layout, locale), acceptForInput)
}

// UnregisterDateFormat removes the exact (id, locale) registration.
func (l *Localizer) UnregisterDateFormat(id FormatID, locale Locale) {
	l.vendor.Unregister(id, locale)
}

// DateFormat resolves a date format for the active locale, falling back to
// alt and ultimately the short style. The returned format is the caller's
// to mutate.
func (l *Localizer) DateFormat(ctx context.Context, id, alt FormatID) *DateFormat {
	return l.vendor.Resolve(id, l.provider.Vend(ctx).locale, alt)
}

// Vendor exposes the date format vendor for advanced registration.
func (l *Localizer) Vendor() *DateFormatVendor { return l.vendor }

// Reset clears the catalog cache and the format registry. Intended for test
// isolation; production code configures once and never resets.
func (l *Localizer) Reset() {
	l.cache.Reset()
	l.vendor.Reset()
}
