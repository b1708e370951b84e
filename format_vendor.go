package localize

import (
	"fmt"
	"sync"
)

// DateFormatVendor is a registry of custom date formats keyed by
// (format id, locale). Resolution falls back from the exact locale to the
// language-only locale, then to the built-in styles, so it always produces
// a usable format. It is safe for concurrent use; registration is expected
// at configuration time, resolution on every formatting call.
type DateFormatVendor struct {
	mu      sync.RWMutex
	formats map[formatKey]*DateFormat
	inputs  map[formatKey][]*DateFormat
}

// NewDateFormatVendor creates an empty vendor. The built-in styles resolve
// even when nothing has been registered.
func NewDateFormatVendor() *DateFormatVendor {
	return &DateFormatVendor{
		formats: make(map[formatKey]*DateFormat),
		inputs:  make(map[formatKey][]*DateFormat),
	}
}

// inputKeyID segregates the input-format lists from regular registrations
// inside the same key space.
const inputKeyID FormatID = 0xFFFF

// Register stores format under (id, locale), replacing any previous
// registration for the same key. Ids below DefaultFormatID are reserved for
// the built-in styles and are rejected with ErrReservedFormatID.
//
// When acceptForInput is true the format is additionally appended to the
// locale's ordered list of input-parsing formats. That list is append-only:
// Unregister does not remove entries from it.
func (v *DateFormatVendor) Register(id FormatID, locale Locale, format *DateFormat, acceptForInput bool) error {
	if format == nil {
		return ErrNilFormat
	}
	if id < DefaultFormatID {
		return fmt.Errorf("%w (%d): got %d", ErrReservedFormatID, DefaultFormatID, id)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	// Stored copies are private to the vendor; the caller keeps ownership of
	// the format it passed in.
	v.formats[newFormatKey(id, locale)] = format.Clone()

	if acceptForInput {
		k := newFormatKey(inputKeyID, locale)
		v.inputs[k] = append(v.inputs[k], format.Clone())
	}
	return nil
}

// RegisterInput appends format to the locale's input-parsing list without
// registering it for output.
func (v *DateFormatVendor) RegisterInput(locale Locale, format *DateFormat) error {
	if format == nil {
		return ErrNilFormat
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	k := newFormatKey(inputKeyID, locale)
	v.inputs[k] = append(v.inputs[k], format.Clone())
	return nil
}

// Unregister removes the registration for exactly (id, locale). A
// language-only registration made separately is untouched, as is the
// input-format list. No-op when absent.
func (v *DateFormatVendor) Unregister(id FormatID, locale Locale) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.formats, newFormatKey(id, locale))
}

// Resolve returns a format for (id, locale), trying in order:
//
//  1. the built-in style itself, when id is Short/Medium/Long
//  2. the exact (id, locale) registration
//  3. the (id, language-only) registration
//  4. the short style, when id is DefaultFormatID
//  5. Resolve(alt, locale, StyleShort)
//
// The chain is total: the worst case is the short built-in style. Registry
// hits return an independent copy that the caller may freely mutate.
func (v *DateFormatVendor) Resolve(id FormatID, locale Locale, alt FormatID) *DateFormat {
	if id.isBuiltinStyle() {
		return styleFormat(id, locale)
	}

	key := newFormatKey(id, locale)

	v.mu.RLock()
	f := v.formats[key]
	if f == nil {
		f = v.formats[key.withoutRegion()]
	}
	v.mu.RUnlock()

	if f != nil {
		return f.Clone()
	}
	if id == DefaultFormatID {
		return styleFormat(StyleShort, locale)
	}
	return v.Resolve(alt, locale, StyleShort)
}

// InputFormats returns the formats accepted when parsing date input in the
// given locale. The standard short, medium and long styles plus the ISO
// yyyy-MM-dd format always come first; custom input formats follow in
// registration order, taken from the exact locale or, when that list is
// empty, from the language-only locale. Never returns nil.
func (v *DateFormatVendor) InputFormats(locale Locale) []*DateFormat {
	k := newFormatKey(inputKeyID, locale)

	v.mu.RLock()
	custom := v.inputs[k]
	if custom == nil {
		custom = v.inputs[k.withoutRegion()]
	}
	v.mu.RUnlock()

	out := make([]*DateFormat, 0, 4+len(custom))
	out = append(out,
		styleFormat(StyleShort, locale),
		styleFormat(StyleMedium, locale),
		styleFormat(StyleLong, locale),
		ISODateFormat(locale),
	)
	for _, f := range custom {
		out = append(out, f.Clone())
	}
	return out
}

// Reset drops every registration, including the input lists. Intended for
// test isolation.
func (v *DateFormatVendor) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.formats = make(map[formatKey]*DateFormat)
	v.inputs = make(map[formatKey][]*DateFormat)
}
