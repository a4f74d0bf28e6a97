package app

import "errors"

var (
	// ErrNoConfigPath is returned when no configuration file was given.
	ErrNoConfigPath = errors.New("no configuration file specified")
	// ErrNoMode is returned when no usable processing mode was given.
	ErrNoMode = errors.New("no mode specified")
)

// Config holds everything goesproc needs to know about an invocation.
type Config struct {
	ConfigPath string // processing configuration file, loaded downstream
	Mode       Mode
}

// NewConfig validates cfg and returns a copy of it. The configuration file
// is checked before the mode.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, ErrNoConfigPath
	}
	if cfg.Mode == ModeUndefined {
		return nil, ErrNoMode
	}

	return &cfg, nil
}
