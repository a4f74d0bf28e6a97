package app

import (
	"io"
	"log/slog"
)

const (
	envLogLevel  = "GOESPROC_LOG_LEVEL"
	envLogFormat = "GOESPROC_LOG_FORMAT"
)

// LogSettings selects the level and handler of the application logger.
type LogSettings struct {
	Level  string // debug, info, warn or error
	Format string // text or json
}

// LogSettingsFromEnv reads the logger settings through getenv, which is
// normally os.Getenv. Unknown values fall back to info and text.
func LogSettingsFromEnv(getenv func(string) string) LogSettings {
	s := LogSettings{
		Level:  getEnv(getenv, envLogLevel, "info"),
		Format: getEnv(getenv, envLogFormat, "text"),
	}
	switch s.Level {
	case "debug", "info", "warn", "error":
	default:
		s.Level = "info"
	}
	if s.Format != "json" {
		s.Format = "text"
	}
	return s
}

func getEnv(getenv func(string) string, key, defaultValue string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(s LogSettings, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch s.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if s.Format == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
