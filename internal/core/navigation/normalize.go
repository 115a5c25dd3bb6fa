package navigation

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds s for keyword matching: NFD decomposition, combining marks
// removed, lower-cased and trimmed. "Trang chủ" becomes "trang chu".
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// transform.Chain keeps state, so each call builds its own
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.TrimSpace(strings.ToLower(folded))
}

// containsAny reports whether the normalized text contains any of the keywords
func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	for _, k := range keywords {
		nk := Normalize(k)
		if nk != "" && strings.Contains(text, nk) {
			return true
		}
	}
	return false
}

// MatchesTab reports whether a catalog entry belongs to the listing selected by
// the ?tab= query value. An empty tab selects everything.
func MatchesTab(tab, slug, name string) bool {
	nt := Normalize(tab)
	if nt == "" {
		return true
	}
	return strings.Contains(Normalize(slug), nt) || strings.Contains(Normalize(name), nt)
}
