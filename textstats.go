// Package textstats computes word count, sentence count and average word
// length for natural-language text.
//
// Words are whitespace-separated tokens that contain at least one letter or
// number; attached punctuation stays on the word but is not measured.
// Sentences end at a run of '.', '!' or '?' followed by whitespace or the end
// of the text, except where the period closes a known abbreviation such as
// "Dr." or "Ph.D.". All functions are total and safe for concurrent use.
package textstats

import (
	"textstats/internal/adapter/analyzer"
	"textstats/internal/domain"
	"textstats/internal/port"
)

// Stats holds the statistics of one text.
type Stats = domain.Stats

// Analyzer computes text statistics with a fixed abbreviation list.
type Analyzer = port.Analyzer

var defaultAnalyzer = analyzer.NewDefault()

// CountWords returns the number of words in text.
func CountWords(text string) int {
	return defaultAnalyzer.CountWords(text)
}

// CountSentences returns the number of sentences in text.
func CountSentences(text string) int {
	return defaultAnalyzer.CountSentences(text)
}

// GetAverageWordLength returns the mean word length in letters and numbers,
// rounded half away from zero to two decimals.
func GetAverageWordLength(text string) float64 {
	return defaultAnalyzer.AverageWordLength(text)
}

// Analyze returns all statistics of text.
func Analyze(text string) Stats {
	return defaultAnalyzer.Analyze(text)
}

// NewAnalyzer returns an Analyzer that also protects the given abbreviations
// (with or without their trailing period).
func NewAnalyzer(abbreviations ...string) Analyzer {
	return analyzer.New(analyzer.DefaultAbbreviations().With(abbreviations...))
}

// DefaultAbbreviations returns the built-in abbreviation list, lower-cased.
func DefaultAbbreviations() []string {
	return analyzer.DefaultAbbreviations().List()
}
