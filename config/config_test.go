package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 4, cfg.Scan.Workers)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 26, cfg.Abbreviations().Len())
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoad_ValidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "textstats.yaml")

	content := `
analysis:
  abbreviations: ["St", "Mt."]
scan:
  workers: 2
output:
  format: json
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Scan.Workers)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Cache.Enabled, "unset cache section keeps defaults")

	abbrevs := cfg.Abbreviations()
	assert.True(t, abbrevs.Contains("st"))
	assert.True(t, abbrevs.Contains("Mt."))
	assert.True(t, abbrevs.Contains("Dr"))
}

func TestAbbreviations_ReplaceDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Analysis.ReplaceDefaults = true
	cfg.Analysis.Abbreviations = []string{"approx"}

	abbrevs := cfg.Abbreviations()
	assert.Equal(t, []string{"approx"}, abbrevs.List())
	assert.False(t, abbrevs.Contains("Dr"))
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDataDir(tmpDir))

	content := `
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".textstats", "config.yaml"), []byte(content), 0644))

	cfg, err := LoadFromDir(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textstats.yaml")

	cfg := DefaultConfig()
	cfg.Scan.MaxFileBytes = 1024
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), loaded.Scan.MaxFileBytes)
}

func TestCacheDBPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/user/docs", ".textstats", "cache.db"), CacheDBPath("/home/user/docs"))
}
