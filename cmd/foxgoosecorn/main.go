package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sidhantpanda/FoxGooseCorn/dijkstra"
	"github.com/sidhantpanda/FoxGooseCorn/internal/app"
	"github.com/sidhantpanda/FoxGooseCorn/internal/cli"
)

// main is the entrypoint for the foxgoosecorn solver.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
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
func run(outW, errW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	err = app.NewApp(outW, errW, config).Run(context.Background())
	if errors.Is(err, dijkstra.ErrUnreachable) {
		return &cli.ExitError{Code: 3, Message: err.Error()}
	}

	return err
}
