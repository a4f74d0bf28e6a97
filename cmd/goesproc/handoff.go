package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/goesproc/internal/app"
	"github.com/specialistvlad/goesproc/internal/ctxlog"
)

// handoffPipeline writes the resolved invocation for the downstream stage:
// the mode and configuration file as comment lines, then one path per line.
func handoffPipeline(w io.Writer) app.Pipeline {
	return app.PipelineFunc(func(ctx context.Context, cfg *app.Config, paths []string) error {
		logger := ctxlog.FromContext(ctx)
		logger.Debug("Writing handoff.", "paths", len(paths))

		bw := bufio.NewWriter(w)
		fmt.Fprintf(bw, "# mode: %s\n", cfg.Mode)
		fmt.Fprintf(bw, "# config: %s\n", cfg.ConfigPath)
		for _, p := range paths {
			fmt.Fprintln(bw, p)
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("failed to write handoff: %w", err)
		}
		return nil
	})
}
