package localize

import "strings"

// formatKey is the registry key for a custom date format: format id plus the
// normalized locale string. Comparable, so it can key a map directly.
type formatKey struct {
	locale string
	id     FormatID
}

func newFormatKey(id FormatID, l Locale) formatKey {
	return formatKey{id: id, locale: l.String()}
}

// withoutRegion strips the region from the key's locale. Idempotent: a key
// that is already language-only returns itself.
func (k formatKey) withoutRegion() formatKey {
	if i := strings.IndexByte(k.locale, '_'); i > 0 {
		return formatKey{id: k.id, locale: k.locale[:i]}
	}
	return k
}
