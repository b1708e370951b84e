package localize

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// FormatDate renders a date with the format resolved for id in the active
// locale, falling back per the vendor chain. The zero time renders as "".
func (l *Localizer) FormatDate(ctx context.Context, t time.Time, id FormatID) string {
	if t.IsZero() {
		return ""
	}
	return l.DateFormat(ctx, id, DefaultFormatID).Format(t)
}

// FormatDateShort renders a date in the locale's short style.
func (l *Localizer) FormatDateShort(ctx context.Context, t time.Time) string {
	return l.FormatDate(ctx, t, StyleShort)
}

// FormatTime renders the time-of-day in the locale's clock convention.
func (l *Localizer) FormatTime(ctx context.Context, t time.Time, withSeconds bool) string {
	if t.IsZero() {
		return ""
	}
	s := l.provider.Vend(ctx)
	return t.Format(timeLayout(s.locale, withSeconds))
}

// FormatTimestamp renders date and time together, using the deployment
// standard date format when one is registered and the locale's default date
// format otherwise.
func (l *Localizer) FormatTimestamp(ctx context.Context, t time.Time, withSeconds bool) string {
	if t.IsZero() {
		return ""
	}
	date := l.DateFormat(ctx, StandardDateFormatID, DefaultFormatID).Format(t)
	return date + " " + l.FormatTime(ctx, t, withSeconds)
}

// ParseDate parses user date input in the active locale. Every format
// accepted for the locale is tried in order: the standard short, medium and
// long styles, the ISO yyyy-MM-dd form, and any registered custom input
// formats. Returns ErrUnparsableDate when nothing matches.
func (l *Localizer) ParseDate(ctx context.Context, source string) (time.Time, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return time.Time{}, ErrUnparsableDate
	}
	s := l.provider.Vend(ctx)
	for _, f := range l.vendor.InputFormats(s.locale) {
		if t, err := f.Parse(source); err == nil {
			return t, nil
		}
		// Two-digit year variants of the standard styles: "1/2/2006" should
		// parse where the short layout says "1/2/06" and vice versa.
		if alt := flipYearWidth(f.Layout()); alt != f.Layout() {
			if t, err := time.Parse(alt, source); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, ErrUnparsableDate
}

// timeSplit separates the trailing time-of-day from a timestamp string.
var timeSplit = regexp.MustCompile(`^(.*?)\s+(\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AaPp][Mm])?)$`)

// timeOfDayLayouts are tried in order when parsing a time portion. Input
// without an am/pm marker is read as 24-hour time.
var timeOfDayLayouts = []string{"15:04:05", "15:04", "3:04:05 PM", "3:04 PM", "3:04PM", "3:04:05PM"}

// ParseTimestamp parses a combined date and time string, tolerating any date
// form ParseDate accepts followed by a 12- or 24-hour time. A bare date
// parses with a midnight time.
func (l *Localizer) ParseTimestamp(ctx context.Context, source string) (time.Time, error) {
	source = strings.TrimSpace(source)

	datePart, timePart := source, ""
	if m := timeSplit.FindStringSubmatch(source); m != nil {
		datePart, timePart = m[1], m[2]
	}

	day, err := l.ParseDate(ctx, datePart)
	if err != nil {
		return time.Time{}, err
	}
	if timePart == "" {
		return day, nil
	}

	for _, layout := range timeOfDayLayouts {
		if tod, err := time.Parse(layout, strings.ToUpper(timePart)); err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(),
				tod.Hour(), tod.Minute(), tod.Second(), 0, day.Location()), nil
		}
	}
	return day, nil
}

// PreferredDateFormat returns the short date layout for the active locale,
// as an input hint next to form fields.
func (l *Localizer) PreferredDateFormat(ctx context.Context) string {
	s := l.provider.Vend(ctx)
	return styleFormat(StyleShort, s.locale).Layout()
}

// FormatISOTimestamp renders a locale-independent timestamp.
func FormatISOTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

// ParseISOTimestamp parses a timestamp in the fixed yyyy-MM-dd HH:mm:ss
// form, with optional fractional seconds.
func ParseISOTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02 15:04:05.999999999", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnparsableDate
}

// flipYearWidth widens "06" years to "2006" or narrows "2006" to "06",
// producing the sibling layout tried during tolerant parsing.
func flipYearWidth(layout string) string {
	if strings.Contains(layout, "2006") {
		return strings.Replace(layout, "2006", "06", 1)
	}
	if strings.Contains(layout, "06") {
		return strings.Replace(layout, "06", "2006", 1)
	}
	return layout
}
