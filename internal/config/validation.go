package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks the configuration for errors and inconsistencies
func (c *Config) Validate() error {
	// Validate general settings
	if err := c.validateGeneral(); err != nil {
		return fmt.Errorf("general config: %w", err)
	}

	// Validate run settings
	if err := c.validateRun(); err != nil {
		return fmt.Errorf("run config: %w", err)
	}

	// Validate tool settings
	if err := c.validateTool(); err != nil {
		return fmt.Errorf("tool config: %w", err)
	}

	return nil
}

func (c *Config) validateGeneral() error {
	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	logLevel := strings.ToLower(c.General.LogLevel)
	valid := false
	for _, level := range validLogLevels {
		if logLevel == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("log_level must be one of: %s", strings.Join(validLogLevels, ", "))
	}

	// Validate log format
	if c.General.LogFormat != "json" && c.General.LogFormat != "text" {
		return fmt.Errorf("log_format must be one of: json, text")
	}

	return nil
}

func (c *Config) validateRun() error {
	if c.Run.InputDir == "" {
		return fmt.Errorf("input_dir must be set")
	}
	if c.Run.OutputDir == "" {
		return fmt.Errorf("output_dir must be set")
	}

	// Validate workers
	if c.Run.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if c.Run.Workers > 256 {
		return fmt.Errorf("workers must not exceed 256")
	}

	// Validate batch size
	if c.Run.BatchSize < 1 {
		return fmt.Errorf("batch_size must be at least 1")
	}

	// Validate job timeout
	if c.Run.JobTimeout < 1*time.Second {
		return fmt.Errorf("job_timeout must be at least 1 second")
	}
	if c.Run.JobTimeout > 1*time.Hour {
		return fmt.Errorf("job_timeout must not exceed 1 hour")
	}

	return nil
}

func (c *Config) validateTool() error {
	if c.Tool.Path == "" {
		return fmt.Errorf("path must be set")
	}
	return nil
}
