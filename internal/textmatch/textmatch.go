// Package textmatch holds the string primitives shared by the tool rule
// cascades: normalization, keyword containment, lead-in checks, and a
// punctuation-based sentence counter.
package textmatch

import "strings"

// Normalize trims surrounding whitespace. Missing and blank input both
// normalize to the empty string.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}

// MatchAny reports the first term (in table order) contained in text,
// ignoring case. Blank terms never match.
func MatchAny(text string, terms []string) (string, bool) {
	lower := strings.ToLower(text)
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" {
			continue
		}
		if strings.Contains(lower, t) {
			return term, true
		}
	}
	return "", false
}

// ContainsAny is MatchAny without the matched term.
func ContainsAny(text string, terms []string) bool {
	_, ok := MatchAny(text, terms)
	return ok
}

// HasDigit reports whether s contains an ASCII digit.
func HasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}

// HasLeadIn reports whether the normalized, lowercased s starts with one of
// the lead-in phrases.
func HasLeadIn(s string, leadIns ...string) bool {
	t := strings.ToLower(Normalize(s))
	if t == "" {
		return false
	}
	for _, lead := range leadIns {
		lead = strings.ToLower(lead)
		if lead != "" && strings.HasPrefix(t, lead) {
			return true
		}
	}
	return false
}

// CountSentences approximates the number of sentences in s by counting runs
// of terminal punctuation. Blank input is zero sentences; text without any
// terminator still counts as one.
func CountSentences(s string) int {
	t := Normalize(s)
	if t == "" {
		return 0
	}
	runs := 0
	inRun := false
	for _, r := range t {
		if isTerminal(r) {
			if !inRun {
				runs++
				inRun = true
			}
			continue
		}
		inRun = false
	}
	if runs == 0 {
		return 1
	}
	return runs
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
