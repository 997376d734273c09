package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountSentences(t *testing.T) {
	seg := NewSegmenter(DefaultAbbreviations())

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"simple", "Hello world! This is a test. How are you?", 3},
		{"empty", "", 0},
		{"whitespace", " \n\t ", 0},
		{"one sentence", "This is just one sentence.", 1},
		{"multiple punctuation", "Hello!!! What's up?? Let's go...", 3},
		{"no punctuation", "This is text without punctuation", 1},
		{"ellipsis", "Wait for it... The end is near... Or is it?", 3},
		{"abbreviations", "Dr. Smith works at St. Mary's Hospital. He is a Ph.D.", 3},
		{"punctuation only", "!!! ??? ...", 0},
		{"extra whitespace", "   Hello   world!   \n\nThis   is   a   test.   \t\tHow   are   you?   ", 3},
		{"mixed run", "Really?!? Yes.", 2},
		{"abbreviation wins", "I saw the Dr. Then I left.", 1},
		{"compound abbreviation", "He lives in the U.S.A. now. Really?", 2},
		{"case insensitive", "Ask the DR. about it. Ok.", 2},
		{"abbreviation inside a word", "I will die. Then live.", 2},
		{"ellipsis after abbreviation", "Apples, pears etc... Next one.", 2},
		{"punctuation not followed by space", `He said "stop." Then left.`, 1},
		{"decimal number", "Pi is 3.14 exactly. Yes.", 2},
		{"cyrillic", "Привет, мир! Это тест на русском языке.", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, seg.Count(tt.input))
		})
	}
}

func TestSentences_Text(t *testing.T) {
	seg := NewSegmenter(DefaultAbbreviations())
	text := "Dr. Smith works at St. Mary's Hospital.  He is a Ph.D."

	sentences := seg.Sentences(text)
	require.Len(t, sentences, 3)

	assert.Equal(t, "Dr. Smith works at St.", sentences[0].Text)
	assert.Equal(t, "Mary's Hospital.", sentences[1].Text)
	assert.Equal(t, "He is a Ph.D.", sentences[2].Text)

	normalized := Normalize(text)
	for _, s := range sentences {
		assert.Equal(t, s.Text, normalized[s.Start:s.End])
	}
}

func TestSentences_CustomAbbreviations(t *testing.T) {
	text := "See Dr. Smith at St. Mary's."

	assert.Equal(t, 2, NewSegmenter(DefaultAbbreviations()).Count(text))
	assert.Equal(t, 1, NewSegmenter(DefaultAbbreviations().With("St")).Count(text))
	assert.Equal(t, 3, NewSegmenter(AbbreviationSet{}).Count(text))
}

func TestProtectedPositions(t *testing.T) {
	seg := NewSegmenter(DefaultAbbreviations())
	text := "Dr. Smith, Ph.D. and U.S.A. eg. leg."

	protected := seg.ProtectedPositions(text)

	assert.Equal(t, map[int]struct{}{2: {}, 15: {}, 26: {}, 30: {}}, protected)
	for pos := range protected {
		assert.Equal(t, byte('.'), text[pos])
	}
}

func TestProtectedPositions_EmptySet(t *testing.T) {
	seg := NewSegmenter(NewAbbreviationSet())
	assert.Empty(t, seg.ProtectedPositions("Dr. Smith."))
}
