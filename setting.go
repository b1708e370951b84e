package localize

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Setting bundles everything the formatting and translation calls need for
// one locale: the resolved catalog and the locale-derived formatting
// artifacts. It is immutable after construction; replacing the active locale
// builds a fresh Setting and simply drops the old one, so callers holding a
// previous Setting keep a consistent snapshot.
type Setting struct {
	locale      Locale
	catalog     *Catalog
	printer     *message.Printer
	unit        currency.Unit
	symbol      string
	decimalSep  string
	groupSep    string
	scale       int
	symbolAfter bool
}

// NewSetting derives a Setting for the locale using an already-resolved
// catalog. Intended for custom SettingsProvider implementations; a nil
// catalog is treated as EmptyCatalog. The Localizer builds its settings
// through its own catalog cache.
func NewSetting(locale Locale, catalog *Catalog) *Setting {
	return newSetting(locale, catalog)
}

// newSetting derives a Setting for the locale using an already-resolved
// catalog. Every derivation is total: unknown locales fall back to und/USD
// rather than failing.
func newSetting(locale Locale, catalog *Catalog) *Setting {
	if catalog == nil {
		catalog = EmptyCatalog
	}
	tag := locale.Tag()

	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.USD
	}
	scale, _ := currency.Standard.Rounding(unit)

	dec, grp := numberSeparators(locale.Language())

	return &Setting{
		locale:      locale,
		catalog:     catalog,
		printer:     message.NewPrinter(tag),
		unit:        unit,
		symbol:      currencySymbol(unit),
		decimalSep:  dec,
		groupSep:    grp,
		scale:       scale,
		symbolAfter: currencySymbolAfter[locale.Language()],
	}
}

// Locale returns the locale the setting was built for.
func (s *Setting) Locale() Locale { return s.locale }

// Catalog returns the resolved translation catalog, possibly EmptyCatalog.
func (s *Setting) Catalog() *Catalog { return s.catalog }

// Printer returns the locale's message printer for number-aware formatting.
func (s *Setting) Printer() *message.Printer { return s.printer }

// Currency returns the locale's currency unit.
func (s *Setting) Currency() currency.Unit { return s.unit }

// CurrencySymbol returns the display symbol for the locale's currency,
// falling back to the ISO code when no symbol is known.
func (s *Setting) CurrencySymbol() string { return s.symbol }

// FractionDigits returns the number of fraction digits the locale's
// currency carries (2 for USD, 0 for JPY).
func (s *Setting) FractionDigits() int { return s.scale }

// currencySymbols maps ISO 4217 codes to display symbols. Unlisted
// currencies render as their code.
var currencySymbols = map[string]string{
	"USD": "$",
	"AUD": "$",
	"CAD": "$",
	"NZD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"RUB": "₽",
	"PLN": "zł",
	"BRL": "R$",
	"CHF": "CHF",
}

func currencySymbol(unit currency.Unit) string {
	if s, ok := currencySymbols[unit.String()]; ok {
		return s
	}
	return unit.String()
}

// currencySymbolAfter marks languages where the symbol trails the amount
// ("12,34 €" rather than "€12.34").
var currencySymbolAfter = map[string]bool{
	"de": true, "fr": true, "es": true, "it": true,
	"pl": true, "ru": true, "nl": false, "pt": false,
}

// numberSeparators returns the (decimal, group) separators used when parsing
// user-typed numbers in the language. Formatting goes through x/text, which
// has the authoritative data; parsing only needs to undo groupings and
// normalize the decimal mark, and is additionally tolerant of plain spaces.
func numberSeparators(lang string) (string, string) {
	switch lang {
	case "de", "es", "it", "pt", "nl", "id":
		return ",", "."
	case "fr", "ru", "pl", "cs", "sk", "uk", "sv", "fi", "nb", "no":
		return ",", " "
	default:
		return ".", ","
	}
}
