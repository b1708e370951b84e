package localize

import "fmt"

// contextSep joins a disambiguation context and its message into one lookup
// key, following the gettext EOT convention.
const contextSep = "\x04"

// pluralSep joins a message and a plural category into one lookup key.
const pluralSep = "\x00"

// Catalog holds the translated strings for one locale. It is immutable after
// construction, so it can be shared across any number of goroutines.
//
// Keys are the source-language strings themselves. A message qualified by a
// disambiguation context is stored under "context\x04message"; a plural form
// under "message\x00category".
type Catalog struct {
	locale   string
	messages map[string]string
}

// EmptyCatalog is the distinguished "no translations available" catalog.
// Every lookup against it misses, which turns missing locales into
// source-text passthrough instead of errors.
var EmptyCatalog = &Catalog{}

// NewCatalog builds a catalog for a locale from a raw message map. Values
// may be strings, or nested maps expressing plural forms (all sub-keys are
// plural categories) or disambiguation contexts (any other sub-keys).
func NewCatalog(locale string, messages map[string]any) *Catalog {
	c := &Catalog{locale: locale, messages: make(map[string]string, len(messages))}
	for msg, value := range messages {
		switch v := value.(type) {
		case string:
			c.messages[msg] = v
		case map[string]any:
			c.addNested(msg, v)
		case map[string]string:
			nested := make(map[string]any, len(v))
			for k, s := range v {
				nested[k] = s
			}
			c.addNested(msg, nested)
		default:
			c.messages[msg] = fmt.Sprintf("%v", v)
		}
	}
	return c
}

// addNested stores a message whose value is a map: plural forms when every
// sub-key is a plural category, context-qualified variants otherwise.
func (c *Catalog) addNested(msg string, value map[string]any) {
	plural := len(value) > 0
	for k := range value {
		if !isPluralCategory(k) {
			plural = false
			break
		}
	}
	for k, sub := range value {
		s, ok := sub.(string)
		if !ok {
			s = fmt.Sprintf("%v", sub)
		}
		if plural {
			c.messages[msg+pluralSep+k] = s
		} else {
			c.messages[k+contextSep+msg] = s
		}
	}
}

// Lookup returns the translation for msg, or ("", false) on a miss.
func (c *Catalog) Lookup(msg string) (string, bool) {
	s, ok := c.messages[msg]
	return s, ok
}

// LookupContext returns the translation for msg under the given
// disambiguation context.
func (c *Catalog) LookupContext(context, msg string) (string, bool) {
	s, ok := c.messages[context+contextSep+msg]
	return s, ok
}

// LookupPlural returns the translation for msg in the given plural category.
func (c *Catalog) LookupPlural(msg, category string) (string, bool) {
	s, ok := c.messages[msg+pluralSep+category]
	return s, ok
}

// Locale returns the locale key the catalog was built for.
func (c *Catalog) Locale() string { return c.locale }

// IsEmpty reports whether the catalog holds no translations at all.
func (c *Catalog) IsEmpty() bool { return len(c.messages) == 0 }

// Len returns the number of stored entries.
func (c *Catalog) Len() int { return len(c.messages) }
