package localize

// Plural categories as defined by Unicode CLDR. Catalogs store plural
// translations under these category names; languages use a subset.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

func isPluralCategory(s string) bool {
	switch s {
	case PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther:
		return true
	}
	return false
}

// pluralCategory picks the CLDR plural category for count n in the given
// language. The rules cover the major language families; unlisted languages
// get the Germanic one/other split, which is also the English rule.
func pluralCategory(lang string, n int) string {
	if n < 0 {
		n = -n
	}

	switch lang {
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return PluralOther

	case "fr", "pt":
		if n == 0 || n == 1 {
			return PluralOne
		}
		return PluralOther

	case "pl", "ru", "uk", "cs", "sk", "hr", "sr":
		if n == 1 {
			return PluralOne
		}
		if m10, m100 := n%10, n%100; m10 >= 2 && m10 <= 4 && (m100 < 12 || m100 > 14) {
			return PluralFew
		}
		return PluralMany

	case "ar":
		switch {
		case n == 0:
			return PluralZero
		case n == 1:
			return PluralOne
		case n == 2:
			return PluralTwo
		case n%100 >= 3 && n%100 <= 10:
			return PluralFew
		case n%100 >= 11:
			return PluralMany
		}
		return PluralOther

	default:
		if n == 1 {
			return PluralOne
		}
		return PluralOther
	}
}

// pluralFallbacks lists the categories to try when a catalog has no entry
// for the exact category. "other" is the terminal form for every language.
func pluralFallbacks(category string) []string {
	switch category {
	case PluralTwo:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []string{PluralMany, PluralOther}
	case PluralOther:
		return nil
	default:
		return []string{PluralOther}
	}
}
