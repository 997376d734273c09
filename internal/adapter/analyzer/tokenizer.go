package analyzer

import (
	"strings"
	"unicode"
)

// Token is a span of normalized text produced by word or sentence segmentation.
// Start and End are byte offsets into the normalized text.
type Token struct {
	Text  string
	Start int
	End   int
}

// Normalize trims the text and collapses every run of Unicode whitespace
// into a single ASCII space.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// CleanForm returns the token with everything but letters and numbers removed.
// Combining marks are dropped, so a decomposed "e\u0301" keeps only the "e".
func CleanForm(token string) string {
	return strings.Map(func(r rune) rune {
		if isWordRune(r) {
			return r
		}
		return -1
	}, token)
}

// HasContent reports whether the token contains at least one letter or number.
func HasContent(token string) bool {
	for _, r := range token {
		if isWordRune(r) {
			return true
		}
	}
	return false
}

// ExtractWords splits text on whitespace and drops tokens without letters or numbers.
// Attached punctuation stays on the token; hyphenated words and contractions are one word.
func ExtractWords(text string) []Token {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	words := make([]Token, 0, strings.Count(normalized, " ")+1)
	start := 0
	for start <= len(normalized) {
		end := strings.IndexByte(normalized[start:], ' ')
		if end < 0 {
			end = len(normalized)
		} else {
			end += start
		}

		raw := normalized[start:end]
		if HasContent(raw) {
			words = append(words, Token{Text: raw, Start: start, End: end})
		}
		start = end + 1
	}

	return words
}

// isWordRune matches the \p{L} and \p{N} classes.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
