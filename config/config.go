package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"textstats/internal/adapter/analyzer"
)

// Config holds all configuration for the textstats tool.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Scan     ScanConfig     `yaml:"scan"`
	Cache    CacheConfig    `yaml:"cache"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AnalysisConfig controls sentence segmentation.
type AnalysisConfig struct {
	Abbreviations   []string `yaml:"abbreviations"`    // added to the built-in list
	ReplaceDefaults bool     `yaml:"replace_defaults"` // use only Abbreviations
}

// ScanConfig holds directory scanning configuration.
type ScanConfig struct {
	Includes     []string `yaml:"includes"`
	Excludes     []string `yaml:"excludes"`
	Workers      int      `yaml:"workers"`
	MaxFileBytes int64    `yaml:"max_file_bytes"` // 0 = unlimited
}

// CacheConfig holds report cache configuration.
type CacheConfig struct {
	Enabled       bool `yaml:"enabled"`
	MemoryEntries int  `yaml:"memory_entries"`
}

// OutputConfig holds output configuration.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "json"
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Includes:     []string{"**/*.txt", "**/*.md", "**/*.rst", "**/*.adoc"},
			Excludes:     []string{"**/node_modules/**", "**/vendor/**", "**/.git/**", "**/.textstats/**"},
			Workers:      4,
			MaxFileBytes: 10 << 20,
		},
		Cache: CacheConfig{
			Enabled:       true,
			MemoryEntries: 256,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for textstats.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "textstats.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".textstats", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Abbreviations returns the abbreviation set sentence segmentation should protect.
func (c *Config) Abbreviations() analyzer.AbbreviationSet {
	if c.Analysis.ReplaceDefaults {
		return analyzer.NewAbbreviationSet(c.Analysis.Abbreviations...)
	}
	return analyzer.DefaultAbbreviations().With(c.Analysis.Abbreviations...)
}

// CacheDBPath returns the path to the report cache database.
func CacheDBPath(dir string) string {
	return filepath.Join(dir, ".textstats", "cache.db")
}

// EnsureDataDir ensures the .textstats directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".textstats"), 0755)
}
