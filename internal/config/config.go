package config

import "time"

// Config represents the complete application configuration
type Config struct {
	General GeneralConfig `mapstructure:"general"`
	Run     RunConfig     `mapstructure:"run"`
	Tool    ToolConfig    `mapstructure:"tool"`
}

// GeneralConfig contains global application settings
type GeneralConfig struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// RunConfig controls a single batch conversion run
type RunConfig struct {
	InputDir   string        `mapstructure:"input_dir"`
	OutputDir  string        `mapstructure:"output_dir"`
	Workers    int           `mapstructure:"workers"`
	BatchSize  int           `mapstructure:"batch_size"`
	JobTimeout time.Duration `mapstructure:"job_timeout"`
}

// ToolConfig describes how the external assignment tool is invoked
type ToolConfig struct {
	Path      string `mapstructure:"path"`
	QuietFlag string `mapstructure:"quiet_flag"`
}
