package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.General.LogLevel)
	assert.Equal(t, "json", cfg.General.LogFormat)
	assert.Equal(t, "pdb_files", cfg.Run.InputDir)
	assert.Equal(t, "dssp_outputs", cfg.Run.OutputDir)
	assert.Equal(t, 4, cfg.Run.Workers)
	assert.Equal(t, 25, cfg.Run.BatchSize)
	assert.Equal(t, 60*time.Second, cfg.Run.JobTimeout)
	assert.Equal(t, "mkdssp", cfg.Tool.Path)
	assert.Equal(t, "--quiet", cfg.Tool.QuietFlag)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `general:
  log_level: debug
  log_format: text
run:
  input_dir: /data/pdb
  output_dir: /data/dssp
  workers: 8
  batch_size: 100
  job_timeout: 2m
tool:
  path: /usr/local/bin/mkdssp
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.General.LogLevel)
	assert.Equal(t, "text", cfg.General.LogFormat)
	assert.Equal(t, "/data/pdb", cfg.Run.InputDir)
	assert.Equal(t, "/data/dssp", cfg.Run.OutputDir)
	assert.Equal(t, 8, cfg.Run.Workers)
	assert.Equal(t, 100, cfg.Run.BatchSize)
	assert.Equal(t, 2*time.Minute, cfg.Run.JobTimeout)
	assert.Equal(t, "/usr/local/bin/mkdssp", cfg.Tool.Path)
	// Unset keys keep their defaults
	assert.Equal(t, "--quiet", cfg.Tool.QuietFlag)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DSSPBATCH_RUN_WORKERS", "16")
	t.Setenv("DSSPBATCH_GENERAL_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Run.Workers)
	assert.Equal(t, "warn", cfg.General.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("run: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func validConfig() *Config {
	return &Config{
		General: GeneralConfig{LogLevel: "info", LogFormat: "json"},
		Run: RunConfig{
			InputDir:   "pdb_files",
			OutputDir:  "dssp_outputs",
			Workers:    4,
			BatchSize:  25,
			JobTimeout: time.Minute,
		},
		Tool: ToolConfig{Path: "mkdssp", QuietFlag: "--quiet"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.General.LogLevel = "loud" },
			wantErr: "log_level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.General.LogFormat = "xml" },
			wantErr: "log_format",
		},
		{
			name:    "empty input dir",
			mutate:  func(c *Config) { c.Run.InputDir = "" },
			wantErr: "input_dir",
		},
		{
			name:    "empty output dir",
			mutate:  func(c *Config) { c.Run.OutputDir = "" },
			wantErr: "output_dir",
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Run.Workers = 0 },
			wantErr: "workers",
		},
		{
			name:    "too many workers",
			mutate:  func(c *Config) { c.Run.Workers = 1000 },
			wantErr: "workers",
		},
		{
			name:    "zero batch size",
			mutate:  func(c *Config) { c.Run.BatchSize = 0 },
			wantErr: "batch_size",
		},
		{
			name:    "timeout too short",
			mutate:  func(c *Config) { c.Run.JobTimeout = 100 * time.Millisecond },
			wantErr: "job_timeout",
		},
		{
			name:    "timeout too long",
			mutate:  func(c *Config) { c.Run.JobTimeout = 2 * time.Hour },
			wantErr: "job_timeout",
		},
		{
			name:    "empty tool path",
			mutate:  func(c *Config) { c.Tool.Path = "" },
			wantErr: "path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
