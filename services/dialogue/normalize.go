// File: services/dialogue/normalize.go
package dialogue

import (
	"regexp"
	"strings"
)

// fillerWords are dropped before matching; they carry no intent or entity.
var fillerWords = map[string]struct{}{
	"please": {}, "kindly": {}, "umm": {}, "uhh": {}, "hmm": {},
	"actually": {}, "just": {}, "really": {}, "like": {},
}

// Punctuation is stripped except characters that carry temporal meaning
// (":" in times, "-" and "/" in dates).
var punctRe = regexp.MustCompile(`[^a-z0-9:\-/\s]`)

var spaceRe = regexp.MustCompile(`\s+`)

// Normalize lower-cases the message, strips punctuation and filler words, and
// collapses whitespace. All other components consume its output.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = punctRe.ReplaceAllString(text, " ")

	words := strings.Fields(text)
	kept := words[:0]
	for _, w := range words {
		if _, filler := fillerWords[w]; !filler {
			kept = append(kept, w)
		}
	}
	return spaceRe.ReplaceAllString(strings.Join(kept, " "), " ")
}

// normalizeName prepares a catalog name or query fragment for fuzzy
// comparison: lowercase, alphanumerics and single spaces only.
func normalizeName(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
