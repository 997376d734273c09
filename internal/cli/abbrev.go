package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"textstats/config"
	"textstats/internal/adapter/store"
)

var abbrevCmd = &cobra.Command{
	Use:   "abbrev",
	Short: "Print the abbreviations whose period never ends a sentence",
	Long: `Print the effective abbreviation list: the built-in titles, compound forms
and Latin abbreviations plus analysis.abbreviations from the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list := GetConfig().Abbreviations().List()
		if wantJSON() {
			return writeJSON(cmd.OutOrStdout(), list)
		}
		out := cmd.OutOrStdout()
		for _, a := range list {
			fmt.Fprintf(out, "%s.\n", a)
		}
		fmt.Fprintf(out, "\n%d abbreviations (matched case-insensitively)\n", len(list))
		return nil
	},
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the report cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [path]",
	Short: "Remove every cached report",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cacheDir(args)
		out := cmd.OutOrStdout()

		st, err := openExistingCache(dir)
		if err != nil {
			return err
		}
		if st == nil {
			fmt.Fprintf(out, "No report cache in %s\n", dir)
			return nil
		}
		defer st.Close()

		if err := st.Clear(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		fmt.Fprintf(out, "Cleared report cache in %s\n", dir)
		return nil
	},
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats [path]",
	Short: "Show how many reports and documents are cached",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cacheDir(args)
		out := cmd.OutOrStdout()

		st, err := openExistingCache(dir)
		if err != nil {
			return err
		}
		if st == nil {
			fmt.Fprintf(out, "No report cache in %s\n", dir)
			return nil
		}
		defer st.Close()

		reports, err := st.CountReports()
		if err != nil {
			return fmt.Errorf("failed to count reports: %w", err)
		}
		docs, err := st.ListDocs()
		if err != nil {
			return fmt.Errorf("failed to list documents: %w", err)
		}

		if wantJSON() {
			return writeJSON(out, cacheStats{Path: config.CacheDBPath(dir), Reports: reports, Documents: len(docs)})
		}
		fmt.Fprintf(out, "Cache:     %s\n", config.CacheDBPath(dir))
		fmt.Fprintf(out, "Reports:   %d\n", reports)
		fmt.Fprintf(out, "Documents: %d\n", len(docs))
		return nil
	},
}

type cacheStats struct {
	Path      string `json:"path"`
	Reports   int    `json:"reports"`
	Documents int    `json:"documents"`
}

func cacheDir(args []string) string {
	dir := GetRootDir()
	if len(args) > 0 {
		dir = args[0]
	}
	return strings.TrimSuffix(dir, "/")
}

// openExistingCache opens the bolt cache under dir. It returns nil when caching
// is disabled or no scan has created the cache yet.
func openExistingCache(dir string) (*store.BoltStore, error) {
	if !GetConfig().Cache.Enabled {
		return nil, errCacheDisabled
	}
	path := config.CacheDBPath(dir)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	st, err := store.NewBoltStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report cache: %w", err)
	}
	return st, nil
}

var errCacheDisabled = errors.New("report cache is disabled (cache.enabled: false)")

func init() {
	abbrevCmd.Flags().BoolVar(&outputJSON, "json", false, "output as JSON")
	cacheStatsCmd.Flags().BoolVar(&outputJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(abbrevCmd)
	cacheCmd.AddCommand(cacheClearCmd, cacheStatsCmd)
	rootCmd.AddCommand(cacheCmd)
}
