package localize

import (
	"time"
)

// FormatID identifies a date format style. The three built-in styles are
// always available for every locale and bypass the vendor registry entirely.
// Custom format ids live above the reserved range: DefaultFormatID is the
// smallest id a deployment may register.
type FormatID int

const (
	// Built-in locale-sensitive styles.
	StyleLong   FormatID = 1
	StyleMedium FormatID = 2
	StyleShort  FormatID = 3

	// DefaultFormatID denotes "the default date format for this deployment".
	// It is the minimum legal custom format id. When nothing is registered
	// under it, it resolves to the short style.
	DefaultFormatID FormatID = 9

	// StandardDateFormatID is the conventional id for the deployment-standard
	// date format (a 4-digit-year format in the reference deployment).
	// Nothing is registered under it by default.
	StandardDateFormatID FormatID = 100
)

// isBuiltinStyle reports whether id is one of the three built-in styles.
func (id FormatID) isBuiltinStyle() bool {
	return id == StyleShort || id == StyleMedium || id == StyleLong
}

// isoDateLayout is always accepted for date input, in every locale.
// Machine-generated dates (SQL, APIs) rely on it.
const isoDateLayout = "2006-01-02"

// DateFormat is a date pattern bound to a locale. Instances handed out by
// the vendor are private to the caller: mutating the layout of a resolved
// format never affects the registry's stored copy or any other caller.
type DateFormat struct {
	layout string
	locale Locale
}

// NewDateFormat builds a date format from a Go time layout and a locale.
func NewDateFormat(layout string, locale Locale) *DateFormat {
	return &DateFormat{layout: layout, locale: locale}
}

// ISODateFormat returns the cross-locale yyyy-MM-dd format.
func ISODateFormat(locale Locale) *DateFormat {
	return &DateFormat{layout: isoDateLayout, locale: locale}
}

// Layout returns the Go time layout of the format.
func (f *DateFormat) Layout() string { return f.layout }

// SetLayout replaces the layout. Safe on resolved formats: they are copies.
func (f *DateFormat) SetLayout(layout string) { f.layout = layout }

// Locale returns the locale the format was registered or resolved for.
func (f *DateFormat) Locale() Locale { return f.locale }

// Clone returns an independent copy of the format.
func (f *DateFormat) Clone() *DateFormat {
	if f == nil {
		return nil
	}
	cp := *f
	return &cp
}

// Format renders the time with the format's layout.
func (f *DateFormat) Format(t time.Time) string {
	return t.Format(f.layout)
}

// Parse parses the input with the format's layout.
func (f *DateFormat) Parse(s string) (time.Time, error) {
	return time.Parse(f.layout, s)
}

// styleLayouts maps a locale (exact first, then language-only) to its
// long/medium/short date layouts. Month and day names render through the
// time package and therefore stay English in textual layouts; locales where
// that reads poorly use numeric layouts instead. Unlisted locales fall back
// to the "en" row.
var styleLayouts = map[string][3]string{
	"en":    {"January 2, 2006", "Jan 2, 2006", "1/2/06"},
	"en_GB": {"2 January 2006", "2 Jan 2006", "02/01/2006"},
	"en_AU": {"2 January 2006", "2 Jan 2006", "2/01/2006"},
	"de":    {"2. January 2006", "02.01.2006", "02.01.06"},
	"fr":    {"2 January 2006", "02/01/2006", "02/01/06"},
	"es":    {"2 January 2006", "02/01/2006", "2/01/06"},
	"it":    {"2 January 2006", "02/01/2006", "02/01/06"},
	"pt":    {"2 January 2006", "02/01/2006", "02/01/06"},
	"nl":    {"2 January 2006", "02-01-2006", "02-01-06"},
	"pl":    {"2 January 2006", "02.01.2006", "02.01.2006"},
	"ru":    {"2 January 2006", "02.01.2006", "02.01.2006"},
	"ja":    {"2006年1月2日", "2006/01/02", "2006/01/02"},
	"zh":    {"2006年1月2日", "2006-01-02", "2006-1-2"},
	"ko":    {"2006년 1월 2일", "2006. 01. 02.", "06. 1. 2."},
}

// styleFormat returns the standard locale-correct format for a built-in
// style. It never fails: unknown locales use the "en" layouts, and ids
// outside the built-in styles are treated as short.
func styleFormat(style FormatID, l Locale) *DateFormat {
	layouts, ok := styleLayouts[l.String()]
	if !ok {
		layouts, ok = styleLayouts[l.Language()]
	}
	if !ok {
		layouts = styleLayouts["en"]
	}

	switch style {
	case StyleLong:
		return &DateFormat{layout: layouts[0], locale: l}
	case StyleMedium:
		return &DateFormat{layout: layouts[1], locale: l}
	default:
		return &DateFormat{layout: layouts[2], locale: l}
	}
}

// twelveHourLanguages lists languages that conventionally use 12-hour clocks.
var twelveHourLanguages = map[string]bool{"en": true}

// timeLayout returns the standard time-of-day layout for the locale.
func timeLayout(l Locale, withSeconds bool) string {
	if twelveHourLanguages[l.Language()] && l.String() != "en_GB" {
		if withSeconds {
			return "3:04:05 PM"
		}
		return "3:04 PM"
	}
	if withSeconds {
		return "15:04:05"
	}
	return "15:04"
}
