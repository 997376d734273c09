//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"textstats/internal/adapter/analyzer"
	"textstats/internal/adapter/cache"
)

var (
	stats    *analyzer.TextStatistics
	reports  *cache.ReportCache
	analyzed *cache.CachedAnalyzer
)

func init() {
	stats = analyzer.NewDefault()
	reports = cache.NewReportCache(64)
	analyzed = cache.NewCachedAnalyzer(stats, reports)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("textstatsAnalyze", js.FuncOf(analyzeText))
	js.Global().Set("textstatsWords", js.FuncOf(listWords))
	js.Global().Set("textstatsSentences", js.FuncOf(listSentences))
	js.Global().Set("textstatsConfigure", js.FuncOf(configure))

	<-c
}

func analyzeText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: textstatsAnalyze(text)")
	}
	s := analyzed.Analyze(args[0].String())
	return makeResult(map[string]interface{}{
		"words":         s.Words,
		"sentences":     s.Sentences,
		"avgWordLength": s.AvgWordLength,
		"cacheEntries":  reports.Size(),
	})
}

func listWords(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: textstatsWords(text)")
	}
	return makeResult(map[string]interface{}{
		"words": tokenTexts(analyzer.ExtractWords(args[0].String())),
	})
}

func listSentences(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: textstatsSentences(text)")
	}
	return makeResult(map[string]interface{}{
		"sentences": tokenTexts(stats.Segmenter().Sentences(args[0].String())),
	})
}

// configure replaces the abbreviation list: textstatsConfigure(["Dr", "St"], replaceDefaults).
func configure(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: textstatsConfigure(abbreviations, [replaceDefaults])")
	}

	list := make([]string, args[0].Length())
	for i := range list {
		list[i] = args[0].Index(i).String()
	}

	abbrevs := analyzer.DefaultAbbreviations().With(list...)
	if len(args) > 1 && args[1].Bool() {
		abbrevs = analyzer.NewAbbreviationSet(list...)
	}

	// Cached reports were computed with the old abbreviation list.
	reports.Invalidate()
	stats = analyzer.New(abbrevs)
	analyzed = cache.NewCachedAnalyzer(stats, reports)

	return makeResult(map[string]interface{}{
		"success":       true,
		"abbreviations": abbrevs.Len(),
	})
}

func tokenTexts(tokens []analyzer.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
