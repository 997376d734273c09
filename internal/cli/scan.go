package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"textstats/config"
	"textstats/internal/adapter/fs"
	"textstats/internal/adapter/memstore"
	"textstats/internal/adapter/store"
	"textstats/internal/port"
	"textstats/internal/usecase"
)

var (
	scanNoCache bool
	scanJSON    bool
	scanQuiet   bool
	scanWorkers int
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Analyze every text file in a directory",
	Long: `Walk a directory and analyze every file matching scan.includes.
Reports are cached in .textstats/cache.db within the target directory, keyed
by content hash, so unchanged files are not re-analyzed.

Examples:
  textstats scan .                # Scan current directory
  textstats scan ./docs --json    # Per-file reports and summary as JSON`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&scanNoCache, "no-cache", false, "do not read or write the report cache")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output as JSON")
	scanCmd.Flags().BoolVarP(&scanQuiet, "quiet", "q", false, "print only the summary")
	scanCmd.Flags().IntVarP(&scanWorkers, "workers", "w", 0, "number of files analyzed in parallel (default from config)")
}

func runScan(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()

	st, err := openReportStore(path, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	workers := cfg.Scan.Workers
	if scanWorkers > 0 {
		workers = scanWorkers
	}

	scanUC := usecase.NewScanUseCase(
		st,
		fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes),
		newStatistics(),
		logger,
		usecase.ScanOptions{
			Workers:       workers,
			MaxFileBytes:  cfg.Scan.MaxFileBytes,
			MemoryEntries: cfg.Cache.MemoryEntries,
		},
	)

	asJSON := scanJSON || cfg.Output.Format == "json"

	var progress usecase.ProgressFunc
	if !asJSON {
		progress = newProgress(cmd)
	}

	result, err := scanUC.Scan(cmd.Context(), path, progress)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, result)
	}

	if !scanQuiet {
		for _, r := range result.Reports {
			rel, err := filepath.Rel(path, r.Document.Path)
			if err != nil {
				rel = r.Document.Path
			}
			fmt.Fprintf(out, "%-40s words=%-6d sentences=%-5d avg=%.2f\n",
				rel, r.Stats.Words, r.Stats.Sentences, r.Stats.AvgWordLength)
		}
	}

	s := result.Summary
	fmt.Fprintf(out, "\nScan complete:\n")
	fmt.Fprintf(out, "  Files analyzed:      %d (%d cached)\n", s.Files, result.CacheHits)
	fmt.Fprintf(out, "  Files skipped:       %d\n", result.FilesSkipped)
	if result.Pruned > 0 {
		fmt.Fprintf(out, "  Removed from cache:  %d\n", result.Pruned)
	}
	fmt.Fprintf(out, "  Words:               %d\n", s.Words)
	fmt.Fprintf(out, "  Sentences:           %d\n", s.Sentences)
	fmt.Fprintf(out, "  Average word length: %.2f\n", s.AvgWordLength)

	if len(result.Errors) > 0 {
		fmt.Fprintf(out, "\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  - %s\n", e)
		}
	}

	return nil
}

// openReportStore opens the bolt cache under dir, or an in-memory store when
// caching is disabled.
func openReportStore(dir string, cfg *config.Config) (port.ReportStore, error) {
	if scanNoCache || !cfg.Cache.Enabled {
		return memstore.NewMemoryStore(), nil
	}

	if err := config.EnsureDataDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create .textstats directory: %w", err)
	}

	st, err := store.NewBoltStore(config.CacheDBPath(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open report cache: %w", err)
	}

	result, err := st.Prepare(cfg)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to prepare report cache: %w", err)
	}
	if result.NeedsRebuild {
		logger.Info("report cache cleared", zap.String("reason", result.Reason))
	} else if result.NeedsMigration {
		logger.Debug("report cache migrated", zap.String("reason", result.Reason))
	}

	return st, nil
}

func newProgress(cmd *cobra.Command) usecase.ProgressFunc {
	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time

	return func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Scanning[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(cmd.ErrOrStderr())
				}),
			)
		}

		bar.Set(processed)

		if processed > 0 {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			if rate > 0 {
				eta := time.Duration(float64(total-processed)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Scanning[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
