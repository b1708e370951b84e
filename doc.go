// Package localize looks up translated strings and formats locale-sensitive
// dates, numbers, currency and percentages, with graceful fallback at every
// level: missing translations return the source text, unknown locales fall
// back to their language and then to an empty catalog, and date format
// resolution always ends in a usable built-in style.
//
// # Locale resolution
//
// Locales are "lang" or "lang_COUNTRY" tags ("de", "fr_CA"). Translation
// catalogs resolve exact-locale first, then language-only, then the empty
// catalog; whichever outcome wins is cached for the process lifetime, so a
// locale never retries a failed load.
//
//	loc, err := localize.New(
//		localize.WithLoader(localize.NewFSLoader(catalogFS)),
//		localize.WithDefaultLocale("en_US"),
//	)
//
//	ctx = loc.SetLanguage(ctx, "fr_CA") // finds messages_fr when fr_CA is absent
//	msg := loc.T(ctx, "Remove")         // "Retirer", or "Remove" untranslated
//
// # Current-locale scoping
//
// The active locale is tracked per logical context. The default strategy
// carries it on the context.Context, so concurrent requests with different
// locales never interfere; WithGlobalLocale switches to one process-wide
// locale for batch and CLI programs. Either way, callers that never set a
// locale observe the default locale, never an absent value.
//
// # Custom date formats
//
// Deployments register custom date formats under integer ids above
// DefaultFormatID; the built-in Short/Medium/Long styles always work.
// Resolution falls back from the exact locale to the language, then to an
// alternate id, and terminally to the short style, so it never fails:
//
//	_ = loc.RegisterDateFormat(100, localize.NewLocale("en", "AU"), "02/01/2006", true)
//	_ = loc.RegisterDateFormat(100, localize.NewLocale("en", ""), "01/02/2006", false)
//
//	f := loc.DateFormat(ctx, 100, localize.DefaultFormatID)
//	out := f.Format(time.Now()) // en_US resolves the language-only "en" entry
//
// Resolved formats are private copies: callers may adjust the layout without
// affecting the registry or other callers. Date input parsing accepts the
// standard styles plus ISO yyyy-MM-dd in every locale, then any formats
// registered as accepted-for-input.
//
// # Translation helpers
//
// T/Tc/Tf/Tcf translate plain, context-disambiguated and formatted
// messages; TPlural selects CLDR plural categories; Tw expands lightweight
// wiki markup to HTML; Th escapes for HTML embedding. Number, currency and
// percentage formatting go through golang.org/x/text, and tolerant parsing
// accepts anything a user would normally type in the locale.
//
// # HTTP integration
//
// Middleware resolves the request locale from a query parameter, cookie or
// the Accept-Language header and records it on the request context, so
// handlers pass r.Context() straight to the translation calls. MatchLocale
// is available on its own for servers with their own detection logic.
//
// The only operation that fails loudly is registering a date format id in
// the reserved built-in range; everything else degrades to a usable result.
package localize
