package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"
	"textstats/internal/adapter/analyzer"
)

var (
	inputFile  string
	outputJSON bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Print word count, sentence count and average word length",
	Long: `Analyze text given as arguments, with --file, or on stdin.

Examples:
  textstats analyze "Dr. Smith arrived. He sat down."
  textstats analyze -f essay.txt --json
  echo "cat dog elephant" | textstats analyze`,
	RunE: runAnalyze,
}

var wordsCmd = &cobra.Command{
	Use:   "words [text...]",
	Short: "List the words that are counted",
	RunE:  runWords,
}

var sentencesCmd = &cobra.Command{
	Use:   "sentences [text...]",
	Short: "List the sentences that are counted",
	RunE:  runSentences,
}

func init() {
	for _, cmd := range []*cobra.Command{analyzeCmd, wordsCmd, sentencesCmd} {
		cmd.Flags().StringVarP(&inputFile, "file", "f", "", "read text from file")
		cmd.Flags().BoolVar(&outputJSON, "json", false, "output as JSON")
		rootCmd.AddCommand(cmd)
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	stats := newStatistics().Analyze(text)
	out := cmd.OutOrStdout()

	if wantJSON() {
		return writeJSON(out, stats)
	}

	fmt.Fprintf(out, "Words:               %d\n", stats.Words)
	fmt.Fprintf(out, "Sentences:           %d\n", stats.Sentences)
	fmt.Fprintf(out, "Average word length: %.2f\n", stats.AvgWordLength)
	return nil
}

func runWords(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	return printTokens(cmd.OutOrStdout(), analyzer.ExtractWords(text), true)
}

func runSentences(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	return printTokens(cmd.OutOrStdout(), newStatistics().Segmenter().Sentences(text), false)
}

type tokenOutput struct {
	Text   string `json:"text"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Length int    `json:"length,omitempty"`
}

func printTokens(out io.Writer, tokens []analyzer.Token, withLength bool) error {
	if wantJSON() {
		items := make([]tokenOutput, len(tokens))
		for i, t := range tokens {
			items[i] = tokenOutput{Text: t.Text, Start: t.Start, End: t.End}
			if withLength {
				items[i].Length = analyzer.WordLength(t.Text)
			}
		}
		return writeJSON(out, items)
	}

	for i, t := range tokens {
		if withLength {
			fmt.Fprintf(out, "%3d  %s %d\n", i+1, padRight(t.Text, 24), analyzer.WordLength(t.Text))
		} else {
			fmt.Fprintf(out, "%3d  %s\n", i+1, t.Text)
		}
	}
	fmt.Fprintf(out, "\nTotal: %d\n", len(tokens))
	return nil
}

// padRight pads s with spaces to width terminal columns. Wide CJK runes take
// two columns and combining marks none.
func padRight(s string, width int) string {
	if w := uniseg.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// readInput returns the joined args, the --file content, or stdin, in that order.
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func wantJSON() bool {
	return outputJSON || GetConfig().Output.Format == "json"
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
