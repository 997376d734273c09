package port

import "textstats/internal/domain"

// Analyzer computes text statistics.
type Analyzer interface {
	Analyze(text string) domain.Stats

	CountWords(text string) int

	CountSentences(text string) int

	AverageWordLength(text string) float64
}
