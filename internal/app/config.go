package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenesPath string // path to a .hcl file or a directory of them
	SceneName  string // optional: render only this scene

	LogFormat string
	LogLevel  string
}

// NewConfig validates and returns a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenesPath == "" {
		return nil, errors.New("ScenesPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
