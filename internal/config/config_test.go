package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.True(t, cfg.Summary)
}

func TestLoadExplicitFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
output_dir: /var/tmp/bench
csv_file: ""
temp_dir: /scratch
log_level: debug
color: never
summary: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/tmp/bench", cfg.OutputDir)
	assert.Empty(t, cfg.CSVFile)
	assert.Equal(t, "sysbench_results.jsonl", cfg.JSONFile)
	assert.Equal(t, "/scratch", cfg.TempDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.False(t, cfg.Summary)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "output_dir: [unterminated")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoadSearchesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sysbench.yml", "output_dir: found\n")
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "found", cfg.OutputDir)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SYSBENCH_OUTPUT_DIR", "/env/out")
	t.Setenv("SYSBENCH_TEMP_DIR", "/env/tmp")
	t.Setenv("SYSBENCH_LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/env/out", cfg.OutputDir)
	assert.Equal(t, "/env/tmp", cfg.TempDir)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"bad level", func(c *Config) { c.LogLevel = "chatty" }},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }},
		{"bad color", func(c *Config) { c.Color = "sometimes" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
