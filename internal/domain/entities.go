package domain

import "time"

// Stats holds the descriptive statistics of one text.
type Stats struct {
	Words         int     `json:"words"`
	Sentences     int     `json:"sentences"`
	AvgWordLength float64 `json:"avg_word_length"`
	Characters    int     `json:"characters"` // letters and numbers across all words
}

type Document struct {
	ID      string    `json:"id"`
	Path    string    `json:"path"`
	ModTime time.Time `json:"mod_time"`
	Size    int64     `json:"size"`
	Hash    string    `json:"hash"` // sha256 of the content
}

type Report struct {
	Document Document `json:"document"`
	Stats    Stats    `json:"stats"`
	Cached   bool     `json:"cached,omitempty"`
}

// Summary aggregates the reports of a scan. AvgWordLength is weighted by word
// count, so it equals the average over the concatenated corpus.
type Summary struct {
	Files         int     `json:"files"`
	Words         int     `json:"words"`
	Sentences     int     `json:"sentences"`
	Characters    int     `json:"characters"`
	AvgWordLength float64 `json:"avg_word_length"`
}
