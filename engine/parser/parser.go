// Package parser normalizes raw command text before dispatch.
// Intentionally dumb: no NLP, just trimming, casing, and filler removal.
package parser

import "strings"

// Filler words dropped during normalization. Kept small and predictable;
// prepositions stay because handlers match on them ("listen to", "say").
var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

// Normalize lowercases, trims, collapses whitespace runs, and drops
// articles. It is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if !articles[f] {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// After returns the normalized remainder of input after a verb prefix,
// or "" if input does not start with it. The prefix should include its
// trailing space ("go ", "take ").
func After(input, prefix string) string {
	if !strings.HasPrefix(input, prefix) {
		return ""
	}
	return strings.TrimSpace(input[len(prefix):])
}

// Tokens splits normalized input into words, mapping punctuation to
// spaces first. Used by phrase-matching handlers so "it, clearly!"
// tokenizes the same as "it clearly".
func Tokens(s string) []string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isWordRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
