package analyzer

import (
	"sort"
	"strings"
)

// AbbreviationSet is an immutable list of abbreviations whose trailing period
// never ends a sentence. The zero value is an empty set.
type AbbreviationSet struct {
	// entries are lower-cased without the final period, longest first.
	entries []string
}

var defaultAbbreviations = NewAbbreviationSet(
	// titles
	"Dr", "Mr", "Mrs", "Ms", "Prof", "Gen", "Col", "Maj", "Capt", "Lt",
	"Sgt", "Cpl", "Pvt", "Rep", "Sen", "Gov", "Pres",
	// compound forms
	"Ph.D", "U.S", "U.K", "U.S.A",
	// latin
	"etc", "vs", "ie", "eg", "cf",
)

// DefaultAbbreviations returns the built-in abbreviation list.
func DefaultAbbreviations() AbbreviationSet {
	return defaultAbbreviations
}

// NewAbbreviationSet builds a set from the given words. Matching is
// case-insensitive and a trailing period on an entry is ignored.
func NewAbbreviationSet(words ...string) AbbreviationSet {
	seen := make(map[string]struct{}, len(words))
	entries := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimRight(strings.TrimSpace(w), "."))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		entries = append(entries, w)
	}

	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i]) != len(entries[j]) {
			return len(entries[i]) > len(entries[j])
		}
		return entries[i] < entries[j]
	})

	return AbbreviationSet{entries: entries}
}

// With returns a new set holding the receiver's entries plus extra.
func (s AbbreviationSet) With(extra ...string) AbbreviationSet {
	words := make([]string, 0, len(s.entries)+len(extra))
	words = append(words, s.entries...)
	words = append(words, extra...)
	return NewAbbreviationSet(words...)
}

// Contains reports whether word (with or without its period) is in the set.
func (s AbbreviationSet) Contains(word string) bool {
	word = strings.ToLower(strings.TrimRight(word, "."))
	for _, e := range s.entries {
		if e == word {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (s AbbreviationSet) Len() int {
	return len(s.entries)
}

// List returns a copy of the entries, longest first.
func (s AbbreviationSet) List() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

// matchAt returns the byte length of the longest entry that starts at
// text[i:] and is immediately followed by a period, or 0.
func (s AbbreviationSet) matchAt(text string, i int) int {
	rest := text[i:]
	for _, e := range s.entries {
		if len(rest) <= len(e) || rest[len(e)] != '.' {
			continue
		}
		if strings.EqualFold(rest[:len(e)], e) {
			return len(e)
		}
	}
	return 0
}
