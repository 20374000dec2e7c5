// Package pqueue defines the configuration, comparator and error types
// of the key-addressable binary min-heap.
package pqueue

import (
	"errors"
	"io"
	"log/slog"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by MinHeap operations.
var (
	// ErrDuplicateKey indicates Insert was called with a key already tracked by the heap.
	ErrDuplicateKey = errors.New("pqueue: duplicate key")

	// ErrKeyNotFound indicates DecreaseKey or DeleteKey referenced a key that is not in the heap.
	ErrKeyNotFound = errors.New("pqueue: key not found")

	// ErrKeyMismatch indicates the replacement item passed to DecreaseKey carries a different key.
	ErrKeyMismatch = errors.New("pqueue: replacement item key mismatch")

	// ErrPriorityIncrease indicates DecreaseKey was asked to raise an item's priority.
	ErrPriorityIncrease = errors.New("pqueue: new priority is greater than the current one")
)

// Comparator orders two items three-way:
// negative if a < b, zero if a == b, positive if a > b.
type Comparator[T any] func(a, b T) int

// KeyFunc returns the identifying key of an item.
type KeyFunc[K comparable, T any] func(item T) K

// Minifier returns a copy of item whose priority compares less than or
// equal to every other item the heap may hold. It is used only by DeleteKey.
type Minifier[T any] func(item T) T

// Ascending builds a Comparator from an ordered priority accessor.
// Items with smaller priorities sort first.
func Ascending[T any, P constraints.Ordered](priority func(T) P) Comparator[T] {
	return func(a, b T) int {
		pa, pb := priority(a), priority(b)
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		default:
			return 0
		}
	}
}

// Options configures a MinHeap.
//
// Minify    – optional sentinel transform; enables delete-by-minify.
// TieBreak  – optional secondary comparator consulted when Compare reports equality.
// Capacity  – initial slice and index capacity.
// Logger    – receives debug records for ignored operations (absent keys).
type Options[T any] struct {
	Minify   Minifier[T]
	TieBreak Comparator[T]
	Capacity int
	Logger   *slog.Logger
}

// Option represents a functional option for configuring a MinHeap.
type Option[T any] func(*Options[T])

// WithMinify registers the sentinel transform used by DeleteKey.
// Without it DeleteKey removes entries by swapping them with the last slot.
func WithMinify[T any](fn Minifier[T]) Option[T] {
	return func(o *Options[T]) {
		o.Minify = fn
	}
}

// WithTieBreak sets a secondary comparator for items the primary comparator
// considers equal, making extraction order deterministic.
func WithTieBreak[T any](fn Comparator[T]) Option[T] {
	return func(o *Options[T]) {
		o.TieBreak = fn
	}
}

// WithCapacity preallocates room for n items. Negative values are ignored.
func WithCapacity[T any](n int) Option[T] {
	return func(o *Options[T]) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(o *Options[T]) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// DefaultOptions returns Options with no minifier, no tie-break, zero
// capacity and a logger that discards everything.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
