package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sidhantpanda/FoxGooseCorn/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("foxgoosecorn", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
FoxGooseCorn - shortest solutions to river-crossing puzzles.

Usage:
  foxgoosecorn [options] [PUZZLE_FILE]

Arguments:
  PUZZLE_FILE
    Optional .hcl puzzle definition. Defaults to the farmer, fox, goose and corn.

Options:
`)
		flagSet.PrintDefaults()
	}

	puzzleFlag := flagSet.String("puzzle", "", "Path to an .hcl puzzle definition.")
	startFlag := flagSet.String("start", "", "Start state key, overriding the puzzle's start.")
	goalFlag := flagSet.String("goal", "", "Goal state key, overriding the puzzle's goal.")
	formatFlag := flagSet.String("format", "text", "Output format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := *puzzleFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one puzzle file may be given"}
	}

	config, err := app.NewConfig(app.Config{
		PuzzlePath:   path,
		Start:        *startFlag,
		Goal:         *goalFlag,
		OutputFormat: strings.ToLower(*formatFlag),
		LogFormat:    strings.ToLower(*logFormatFlag),
		LogLevel:     strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
