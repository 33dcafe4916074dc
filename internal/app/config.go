package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SettingsPath string // hcl settings files

	LogFormat string
	LogLevel  string

	// Optional operations beyond settings validation.
	PrintMetadata bool
	NodePath      string // render-node parameter snapshot to report on
	Artist        string
	FrameRange    string
	TaskSize      int
	PostTask      bool
	OutputDir     string
	OutputFile    string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SettingsPath == "" {
		return nil, errors.New("SettingsPath is a required configuration field and cannot be empty")
	}

	if cfg.PostTask {
		if cfg.OutputDir == "" || cfg.OutputFile == "" {
			return nil, errors.New("post-task runs require both output-dir and output-file")
		}
		if cfg.FrameRange == "" {
			return nil, errors.New("post-task runs require a frame range")
		}
	}

	return &cfg, nil
}
