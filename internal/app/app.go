package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/goesproc/internal/ctxlog"
)

// ErrNoPipeline is returned by Run when nothing handles the configured mode.
var ErrNoPipeline = errors.New("no pipeline registered for mode")

// Pipeline consumes the input paths of one processing mode.
type Pipeline interface {
	Process(ctx context.Context, cfg *Config, paths []string) error
}

// PipelineFunc adapts a function to the Pipeline interface.
type PipelineFunc func(ctx context.Context, cfg *Config, paths []string) error

// Process calls f.
func (f PipelineFunc) Process(ctx context.Context, cfg *Config, paths []string) error {
	return f(ctx, cfg, paths)
}

// App ties a validated configuration to the pipelines that can run it.
type App struct {
	logger    *slog.Logger
	config    *Config
	pipelines map[Mode]Pipeline
}

// NewApp is the constructor for the main application. Logs are written to
// logW with an isolated logger built from logs.
func NewApp(logW io.Writer, cfg *Config, logs LogSettings, pipelines map[Mode]Pipeline) *App {
	logger := newLogger(logs, logW)
	logger.Debug("Logger configured successfully.", "level", logs.Level, "format", logs.Format)

	return &App{
		logger:    logger,
		config:    cfg,
		pipelines: pipelines,
	}
}

// Run hands paths, unchanged and in order, to the pipeline of the
// configured mode.
func (a *App) Run(ctx context.Context, paths []string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	p, ok := a.pipelines[a.config.Mode]
	if !ok || p == nil {
		return fmt.Errorf("%w: %s", ErrNoPipeline, a.config.Mode)
	}

	a.logger.Info("Dispatching inputs.",
		"mode", a.config.Mode.String(),
		"config", a.config.ConfigPath,
		"path_count", len(paths),
	)
	if err := p.Process(ctx, a.config, paths); err != nil {
		return fmt.Errorf("%s pipeline failed: %w", a.config.Mode, err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
