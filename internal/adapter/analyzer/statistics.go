package analyzer

import (
	"unicode/utf8"

	"textstats/internal/domain"
	"textstats/internal/port"
)

// TextStatistics computes word count, sentence count and average word length.
// It is stateless apart from its abbreviation list and safe for concurrent use.
type TextStatistics struct {
	segmenter *Segmenter
}

var _ port.Analyzer = (*TextStatistics)(nil)

// New creates a TextStatistics that protects the given abbreviations.
func New(abbrevs AbbreviationSet) *TextStatistics {
	return &TextStatistics{segmenter: NewSegmenter(abbrevs)}
}

// NewDefault creates a TextStatistics with the built-in abbreviation list.
func NewDefault() *TextStatistics {
	return New(DefaultAbbreviations())
}

// Segmenter returns the sentence segmenter.
func (t *TextStatistics) Segmenter() *Segmenter {
	return t.segmenter
}

// CountWords returns the number of whitespace-separated tokens with a letter or number.
func (t *TextStatistics) CountWords(text string) int {
	return len(ExtractWords(text))
}

// CountSentences returns the number of sentences in text.
func (t *TextStatistics) CountSentences(text string) int {
	return t.segmenter.Count(text)
}

// AverageWordLength returns the mean clean-form length of the words in text,
// rounded half away from zero to two decimals. Text without words yields 0.
func (t *TextStatistics) AverageWordLength(text string) float64 {
	words := ExtractWords(text)
	return RoundedMean(totalLength(words), len(words))
}

// Analyze computes all statistics in one pass over the words.
func (t *TextStatistics) Analyze(text string) domain.Stats {
	words := ExtractWords(text)
	chars := totalLength(words)
	return domain.Stats{
		Words:         len(words),
		Sentences:     t.segmenter.Count(text),
		Characters:    chars,
		AvgWordLength: RoundedMean(chars, len(words)),
	}
}

// WordLength returns the length of the token's clean form in code points.
// Thai "กำ" is 2 even though it renders as one cluster.
func WordLength(token string) int {
	return utf8.RuneCountInString(CleanForm(token))
}

// RoundedMean returns total/count rounded half away from zero to two decimals.
// It rounds in integer arithmetic so exact halves like 1.005 are not lost to
// binary floating point. A non-positive count yields 0.
func RoundedMean(total, count int) float64 {
	if count <= 0 || total <= 0 {
		return 0
	}
	hundredths := (int64(total)*200 + int64(count)) / (int64(count) * 2)
	return float64(hundredths) / 100
}

func totalLength(words []Token) int {
	total := 0
	for _, w := range words {
		total += WordLength(w.Text)
	}
	return total
}
