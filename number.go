package localize

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/text/number"
)

// FormatNumber renders a number with the locale's digit grouping and
// decimal mark: 1294855.234 becomes "1,294,855.234" in en and
// "1.294.855,234" in de.
func (l *Localizer) FormatNumber(ctx context.Context, v float64) string {
	s := l.provider.Vend(ctx)
	return s.printer.Sprint(number.Decimal(v))
}

// FormatInt renders an integer with the locale's digit grouping.
func (l *Localizer) FormatInt(ctx context.Context, v int64) string {
	s := l.provider.Vend(ctx)
	return s.printer.Sprint(number.Decimal(v))
}

// ParseNumber parses locale-formatted user input. Digit groupings are
// optional and any space variant is tolerated, but the decimal mark must
// match the locale ("1 534 100,34" in fr, "1,534,100.34" in en).
func (l *Localizer) ParseNumber(ctx context.Context, value string) (float64, error) {
	s := l.provider.Vend(ctx)
	cleaned := normalizeNumberInput(value, s.decimalSep, s.groupSep)
	if cleaned == "" {
		return 0, ErrUnparsableNumber
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrUnparsableNumber
	}
	return n, nil
}

// FormatPercent renders a fractional number as a locale-correct percentage
// with up to two fraction digits: 0.835 becomes "83.5%" in en.
func (l *Localizer) FormatPercent(ctx context.Context, v float64) string {
	s := l.provider.Vend(ctx)
	return s.printer.Sprint(number.Percent(v,
		number.MaxFractionDigits(2),
		number.MinFractionDigits(0)))
}

// WholePercent renders a pre-multiplied integer percentage: 88 becomes "88%".
func (l *Localizer) WholePercent(ctx context.Context, n int) string {
	return l.FormatPercent(ctx, float64(n)/100)
}

// ScaledPercent renders an integer percentage that carries fractionalDigits
// extra digits of pre-multiplication: (8835, 2) becomes "88.35%".
func (l *Localizer) ScaledPercent(ctx context.Context, n int, fractionalDigits int) string {
	pct := float64(n) / 100
	for ; fractionalDigits > 0; fractionalDigits-- {
		pct /= 10
	}
	return l.FormatPercent(ctx, pct)
}

// PreferredNumberFormat returns an input-hint string such as "#,###.##" for
// the active locale, for display next to numeric form fields.
func (l *Localizer) PreferredNumberFormat(ctx context.Context, fractionalDigits int) string {
	s := l.provider.Vend(ctx)
	var b strings.Builder
	b.WriteString("#")
	b.WriteString(s.groupSep)
	b.WriteString("###")
	if fractionalDigits > 0 {
		b.WriteString(s.decimalSep)
		b.WriteString(strings.Repeat("#", fractionalDigits))
	}
	return b.String()
}

// normalizeNumberInput strips grouping and space characters and converts the
// locale decimal mark to '.', yielding a strconv-ready string. Groupings in
// fr-style locales are non-breaking spaces; plain spaces typed by users are
// equally removed.
func normalizeNumberInput(value, decimalSep, groupSep string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	drop := func(r rune) rune {
		switch r {
		case ' ', ' ', ' ', ' ':
			return -1
		}
		if string(r) == groupSep {
			return -1
		}
		return r
	}
	value = strings.Map(drop, value)

	if decimalSep != "." {
		value = strings.ReplaceAll(value, decimalSep, ".")
	}
	return value
}
