// Package app wires puzzle loading, solving and rendering into one run.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sidhantpanda/FoxGooseCorn/dijkstra"
	"github.com/sidhantpanda/FoxGooseCorn/internal/ctxlog"
	"github.com/sidhantpanda/FoxGooseCorn/internal/render"
	"github.com/sidhantpanda/FoxGooseCorn/puzzle"
)

// App is the main application object.
type App struct {
	outW   io.Writer
	config *Config
	logger *slog.Logger
}

// NewApp creates an App writing results to outW and logs to logW.
func NewApp(outW, logW io.Writer, config *Config) *App {
	return &App{
		outW:   outW,
		config: config,
		logger: NewLogger(logW, config),
	}
}

// NewLogger builds the slog.Logger described by the config's log settings.
func NewLogger(w io.Writer, config *Config) *slog.Logger {
	var level slog.Level
	switch config.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if config.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// Run loads the puzzle, solves it from start to goal and renders the path.
// An unreachable goal is returned as an error wrapping dijkstra.ErrUnreachable.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	def, err := a.loadPuzzle(ctx)
	if err != nil {
		return err
	}

	g, err := puzzle.BuildGraph(def)
	if err != nil {
		return fmt.Errorf("building state graph: %w", err)
	}
	a.logger.Info("State graph built.", "puzzle", def.Name, "states", g.Len(), "transitions", g.TransitionCount())

	start, err := def.StartState()
	if err != nil {
		return err
	}
	goal, err := def.GoalState()
	if err != nil {
		return err
	}

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(start.Key()), dijkstra.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("solving %q: %w", def.Name, err)
	}
	a.logger.Info("Search finished.", "reached", len(res.Order()), "unreached", len(res.Unreached()))

	sol, err := render.NewSolution(def, res, goal.Key())
	if err != nil {
		return err
	}

	if a.config.OutputFormat == "json" {
		return render.JSON(a.outW, sol)
	}

	return render.Text(a.outW, sol)
}

// loadPuzzle returns the configured puzzle with start and goal overrides applied.
func (a *App) loadPuzzle(ctx context.Context) (*puzzle.Definition, error) {
	def := puzzle.Classic()
	if a.config.PuzzlePath != "" {
		var err error
		if def, err = puzzle.LoadFile(ctx, a.config.PuzzlePath); err != nil {
			return nil, err
		}
	}

	if a.config.Start != "" {
		def.Start = a.config.Start
	}
	if a.config.Goal != "" {
		def.Goal = a.config.Goal
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("puzzle %q: %w", def.Name, err)
	}

	return def, nil
}
