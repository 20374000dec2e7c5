// Package dijkstra defines the configuration options and sentinel errors
// of the shortest-path solver.
package dijkstra

import (
	"errors"
	"io"
	"log/slog"
	"math"
)

// Infinity is the distance of a node no path has reached yet.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by Dijkstra and Result.
var (
	// ErrEmptySource indicates that the provided source key is empty.
	ErrEmptySource = errors.New("dijkstra: source key is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a key does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative transition weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrInvalidTransition indicates the graph holds a transition into a node
	// flagged invalid, or into a key the graph does not contain. This is a
	// graph-construction bug and is reported before any traversal starts.
	ErrInvalidTransition = errors.New("dijkstra: transition into invalid or unknown node")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable indicates that no path leads from the source to the target.
	ErrUnreachable = errors.New("dijkstra: target unreachable from source")
)

// Options configures the behavior of the solver.
//
// Source            – starting node key (must be non-empty and present in the graph).
// MaxDistance       – nodes whose distance would exceed this are left unreached. Default Infinity.
// DeterministicTies – break equal distances by lexical key order. Default true.
// OnVisit           – called once per finalized node; a non-nil error aborts the run.
// Logger            – receives debug records. Default discards.
type Options struct {
	Source            string
	MaxDistance       int64
	DeterministicTies bool
	OnVisit           func(key string, dist int64) error
	Logger            *slog.Logger
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node key. It must always be supplied.
func Source(key string) Option {
	return func(o *Options) {
		o.Source = key
	}
}

// WithMaxDistance caps exploration: nodes farther than max stay unreached.
// A negative max panics with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithDeterministicTies toggles lexical tie-breaking between nodes at equal
// distance. When disabled, which of several equally short paths is reported
// depends on graph insertion order and heap layout.
func WithDeterministicTies(enabled bool) Option {
	return func(o *Options) {
		o.DeterministicTies = enabled
	}
}

// WithOnVisit registers a callback invoked as each node is finalized.
func WithOnVisit(fn func(key string, dist int64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// DefaultOptions returns Options for the given source with no distance cap,
// deterministic ties, a no-op visit hook and a discarding logger.
func DefaultOptions(source string) Options {
	return Options{
		Source:            source,
		MaxDistance:       Infinity,
		DeterministicTies: true,
		OnVisit:           func(string, int64) error { return nil },
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
