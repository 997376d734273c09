package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   \t\n ", ""},
		{"hello", "hello"},
		{"  hello   world  ", "hello world"},
		{"a\tb\nc\r\nd", "a b c d"},
		{"a  b", "a b"},
		{"a\u00a0b", "a b"},
		{"a\u2028b", "a b"},
		{"a\u3000\u3000b", "a b"},
		{"\u00a0 hello\u2029world\u3000", "hello world"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "Normalize(%q)", tt.input)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, text := range []string{"", "  a  b ", "Hello\tworld!\nThis is  a test."} {
		once := Normalize(text)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestCleanForm(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"world!", "world"},
		{"co-operation", "cooperation"},
		{"Mary's", "Marys"},
		{"12,345", "12345"},
		{"...", ""},
		{"мир!", "мир"},
		{"été", "été"},
		{"½", "½"},
		{"cafe\u0301", "cafe"},
		{"น้ำ", "นำ"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CleanForm(tt.input), "CleanForm(%q)", tt.input)
	}
}

func TestExtractWords(t *testing.T) {
	words := ExtractWords("  Hello   world! -- This is co-operation.  ")

	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	assert.Equal(t, []string{"Hello", "world!", "This", "is", "co-operation."}, texts)

	normalized := Normalize("  Hello   world! -- This is co-operation.  ")
	for _, w := range words {
		assert.Equal(t, w.Text, normalized[w.Start:w.End])
	}
}

func TestExtractWords_Empty(t *testing.T) {
	assert.Empty(t, ExtractWords(""))
	assert.Empty(t, ExtractWords(" \n\t "))
	assert.Empty(t, ExtractWords("!!! ??? ..."))
}

func TestCountWords(t *testing.T) {
	stats := NewDefault()

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"simple", "Hello world! This is a test.", 6},
		{"empty", "", 0},
		{"only spaces", "     ", 0},
		{"multiple spaces", "Hello    world!   This   is   a   test.", 6},
		{"new lines", "Hello world!\nThis is a test.\nAnother line.", 8},
		{"tabs", "Hello\tworld!\tThis\tis\ta\ttest.", 6},
		{"cyrillic", "Привет, мир! Это тест на русском языке.", 7},
		{"numbers", "I have 3 apples and 2 oranges.", 7},
		{"punctuation only", "!!! ??? ...", 0},
		{"extra whitespace", "   Hello   world!   \n\nThis   is   a   test.   \t\tHow   are   you?   ", 9},
		{"long text", strings.Repeat("word ", 1000), 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stats.CountWords(tt.input))
		})
	}
}

func TestCountWords_WhitespaceInsensitive(t *testing.T) {
	stats := NewDefault()
	base := "one two, three! four"
	for _, sep := range []string{"  ", "\t", "\n", " \r\n\t ", "\u00a0", "\u2028", "\u3000", " \u00a0\u3000 "} {
		variant := strings.ReplaceAll(base, " ", sep)
		assert.Equal(t, stats.CountWords(base), stats.CountWords(variant), "separator %q", sep)
	}
}

func TestAverageWordLength(t *testing.T) {
	stats := NewDefault()

	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"simple", "cat dog elephant", 4.67},
		{"empty", "", 0.0},
		{"one word", "hello", 5.0},
		{"punctuation", "Hello, world! This is a test...", 3.5},
		{"numbers", "My password is 12345", 4.25},
		{"mixed languages", "Hello мир привет world", 4.75},
		{"hyphenated", "Test-word co-operation re-elect", 8.67},
		{"punctuation only", "!!! ??? ...", 0.0},
		{"decomposed accents", "cafe\u0301 caf\u00e9", 4.0},
		{"thai sara am", "กำ น้ำ", 2.0},
		{"conjoining jamo", "\u1100\u1161 \uac00", 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stats.AverageWordLength(tt.input))
		})
	}
}

func TestRoundedMean(t *testing.T) {
	tests := []struct {
		total, count int
		expected     float64
	}{
		{14, 3, 4.67},
		{0, 3, 0},
		{5, 0, 0},
		{201, 200, 1.01}, // exact half rounds away from zero
		{37, 8, 4.63},
		{1, 3, 0.33},
		{2, 3, 0.67},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RoundedMean(tt.total, tt.count), "RoundedMean(%d, %d)", tt.total, tt.count)
	}
}

func TestAnalyze(t *testing.T) {
	stats := NewDefault().Analyze("Hello world! This is PHPUnit test. How are you today?")

	assert.Equal(t, 10, stats.Words)
	assert.Equal(t, 3, stats.Sentences)
	assert.Equal(t, 41, stats.Characters)
	assert.Greater(t, stats.AvgWordLength, 3.0)
	assert.Less(t, stats.AvgWordLength, 5.0)
}

func BenchmarkAnalyze(b *testing.B) {
	text := strings.Repeat("Dr. Smith works at St. Mary's Hospital. He is a Ph.D. Wait for it... ", 200)
	stats := NewDefault()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stats.Analyze(text)
	}
}
