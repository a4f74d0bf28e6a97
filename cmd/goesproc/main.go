package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/goesproc/internal/app"
	"github.com/specialistvlad/goesproc/internal/cli"
)

// main is the entrypoint for the goesproc application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[0], os.Args[1:], os.Getenv); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, name string, args []string, getenv func(string) string) error {
	appConfig, paths, shouldExit, err := cli.Parse(name, args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	handoff := handoffPipeline(outW)
	goesApp := app.NewApp(errW, appConfig, app.LogSettingsFromEnv(getenv), map[app.Mode]app.Pipeline{
		app.ModePacket: handoff,
		app.ModeLrit:   handoff,
	})

	return goesApp.Run(context.Background(), paths)
}
