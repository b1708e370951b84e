package localize

import (
	"sort"
	"strconv"
	"strings"
)

// maxAcceptHeaderLength caps header parsing to keep oversized
// Accept-Language headers from doing unbounded work.
const maxAcceptHeaderLength = 4096

type acceptedLocale struct {
	locale  Locale
	quality float64
}

// MatchLocale picks the best locale from available for an Accept-Language
// header like "fr-CA,fr;q=0.9,en;q=0.8". Exact matches beat language-only
// matches of equal quality; with no match at all the first available locale
// wins, so the result is always usable. Returns the zero locale only when
// available is empty.
//
// Request integration stays outside this package; a server filter typically
// calls MatchLocale on the incoming header and feeds the result to
// Localizer.SetLocale.
func MatchLocale(header string, available []Locale) Locale {
	if len(available) == 0 {
		return Locale{}
	}
	if header == "" {
		return available[0]
	}

	accepted := parseAcceptHeader(header)

	best := Locale{}
	bestQuality := -1.0
	bestExact := false

	for _, avail := range available {
		for _, acc := range accepted {
			exact := acc.locale == avail
			langMatch := acc.locale.Language() == avail.Language()
			if !exact && !langMatch {
				continue
			}
			better := acc.quality > bestQuality ||
				(acc.quality == bestQuality && exact && !bestExact)
			if better {
				best = avail
				bestQuality = acc.quality
				bestExact = exact
			}
			break
		}
	}

	if best.IsZero() {
		return available[0]
	}
	return best
}

// parseAcceptHeader splits an Accept-Language header into locales ordered by
// descending quality. Malformed q-values default to 1; wildcards are
// ignored because the caller's fallback already covers "anything".
func parseAcceptHeader(header string) []acceptedLocale {
	if len(header) > maxAcceptHeaderLength {
		header = header[:maxAcceptHeaderLength]
	}

	var out []acceptedLocale
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tag, params, _ := strings.Cut(part, ";")
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "*" {
			continue
		}

		quality := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if v, err := strconv.ParseFloat(q, 64); err == nil && v >= 0 && v <= 1 {
				quality = v
			}
		}

		out = append(out, acceptedLocale{locale: ParseLocale(tag), quality: quality})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].quality > out[j].quality
	})
	return out
}
