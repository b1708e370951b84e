package localize

import (
	"context"
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/number"
)

// CurrencySymbol returns the display symbol of the active locale's currency.
func (l *Localizer) CurrencySymbol(ctx context.Context) string {
	return l.provider.Vend(ctx).symbol
}

// FractionDigits returns how many fraction digits the active locale's
// currency uses (2 for USD, 0 for JPY).
func (l *Localizer) FractionDigits(ctx context.Context) int {
	return l.provider.Vend(ctx).scale
}

// FormatCurrency renders an amount of the active locale's currency,
// including the currency symbol: "$1,345.66" in en_US, "1 345,66 €" in fr.
func (l *Localizer) FormatCurrency(ctx context.Context, amount float64) string {
	return l.formatCurrency(ctx, amount, true)
}

// FormatCurrencyAmount renders a currency amount without the symbol.
func (l *Localizer) FormatCurrencyAmount(ctx context.Context, amount float64) string {
	return l.formatCurrency(ctx, amount, false)
}

func (l *Localizer) formatCurrency(ctx context.Context, amount float64, withSymbol bool) string {
	s := l.provider.Vend(ctx)

	negative := math.Signbit(amount)
	n := s.printer.Sprint(number.Decimal(math.Abs(amount),
		number.Scale(s.scale)))

	if withSymbol {
		if s.symbolAfter {
			n = n + " " + s.symbol
		} else {
			n = s.symbol + n
		}
	}
	if negative {
		n = "-" + n
	}
	return n
}

// CentsToCurrency renders a scaled-integer amount (e.g. cents) as currency.
// The scale follows the locale's currency: 134566 is $1,345.66 in en_US but
// ¥134,566 in ja_JP.
func (l *Localizer) CentsToCurrency(ctx context.Context, amount int64, withSymbol bool) string {
	s := l.provider.Vend(ctx)
	divisor := math.Pow(10, float64(s.scale))
	return l.formatCurrency(ctx, float64(amount)/divisor, withSymbol)
}

// htmlEntity matches residues like "&euro;" left by HTML-sourced input.
var htmlEntity = regexp.MustCompile(`&[^;]*;`)

// ParseCurrency parses a locale-formatted currency string, with or without
// the currency symbol, tolerating groupings, spaces and HTML entities:
// "$1,345.66", "1345.66", "1 345,66 €" all parse to 1345.66.
func (l *Localizer) ParseCurrency(ctx context.Context, amount string) (float64, error) {
	s := l.provider.Vend(ctx)

	amount = htmlEntity.ReplaceAllString(amount, "")
	amount = strings.ReplaceAll(amount, s.symbol, "")
	amount = strings.ReplaceAll(amount, s.unit.String(), "")
	amount = strings.TrimSpace(amount)

	// Accounting-style negatives: (1,345.66) means -1345.66.
	negative := false
	if strings.HasPrefix(amount, "(") && strings.HasSuffix(amount, ")") {
		negative = true
		amount = amount[1 : len(amount)-1]
	}

	v, err := l.ParseNumber(ctx, amount)
	if err != nil {
		return 0, err
	}
	if negative {
		v = -v
	}
	return v, nil
}

// ParseCurrencyCents parses a currency string into the scaled-integer form:
// "1,345.66" becomes 134566 in a 2-digit locale.
func (l *Localizer) ParseCurrencyCents(ctx context.Context, amount string) (int64, error) {
	v, err := l.ParseCurrency(ctx, amount)
	if err != nil {
		return 0, err
	}
	s := l.provider.Vend(ctx)
	multiplier := math.Pow(10, float64(s.scale))
	return int64(math.Round(v * multiplier)), nil
}

// RoundCurrency rounds an amount to the fraction digits of the active
// locale's currency. Visible amounts should be rounded once, at display
// boundaries, so accumulated computations keep full precision.
func (l *Localizer) RoundCurrency(ctx context.Context, v float64) float64 {
	s := l.provider.Vend(ctx)
	multiplier := math.Pow(10, float64(s.scale))
	return math.Round(v*multiplier) / multiplier
}
