package analyzer

import "strings"

// Segmenter splits text into sentences at runs of terminal punctuation,
// skipping periods that close a known abbreviation.
// A Segmenter holds no mutable state and is safe for concurrent use.
type Segmenter struct {
	abbrevs AbbreviationSet
}

// NewSegmenter creates a Segmenter that protects the given abbreviations.
func NewSegmenter(abbrevs AbbreviationSet) *Segmenter {
	return &Segmenter{abbrevs: abbrevs}
}

// Abbreviations returns the set the segmenter protects.
func (s *Segmenter) Abbreviations() AbbreviationSet {
	return s.abbrevs
}

// Count returns the number of sentences with at least one letter or number.
func (s *Segmenter) Count(text string) int {
	return len(s.Sentences(text))
}

// Sentences returns the sentences of text. Offsets refer to the normalized text.
//
// When a text ends in an abbreviation the abbreviation wins, so "I saw the Dr. Then
// I left." is a single sentence.
func (s *Segmenter) Sentences(text string) []Token {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	protected := s.ProtectedPositions(normalized)

	var sentences []Token
	emit := func(start, end int) {
		raw := normalized[start:end]
		trimmed := strings.TrimLeft(raw, " ")
		start += len(raw) - len(trimmed)
		trimmed = strings.TrimRight(trimmed, " ")
		if HasContent(trimmed) {
			sentences = append(sentences, Token{Text: trimmed, Start: start, End: start + len(trimmed)})
		}
	}

	start := 0
	for i := 0; i < len(normalized); {
		if !isTerminal(normalized[i]) {
			i++
			continue
		}

		runEnd := i
		for runEnd < len(normalized) && isTerminal(normalized[runEnd]) {
			runEnd++
		}
		i = runEnd

		if _, ok := protected[runEnd-1]; ok {
			continue
		}
		if runEnd < len(normalized) && normalized[runEnd] != ' ' {
			continue
		}

		emit(start, runEnd)
		start = runEnd
	}
	if start < len(normalized) {
		emit(start, len(normalized))
	}

	return sentences
}

// ProtectedPositions returns the byte offsets of periods in normalized text
// that follow an abbreviation starting at a word boundary.
func (s *Segmenter) ProtectedPositions(normalized string) map[int]struct{} {
	protected := make(map[int]struct{})
	if s.abbrevs.Len() == 0 {
		return protected
	}

	prev := rune(-1)
	for i, r := range normalized {
		atWordStart := prev < 0 || !isWordRune(prev)
		prev = r
		if !atWordStart || !isWordRune(r) {
			continue
		}
		if n := s.abbrevs.matchAt(normalized, i); n > 0 {
			protected[i+n] = struct{}{}
		}
	}

	return protected
}

func isTerminal(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}
