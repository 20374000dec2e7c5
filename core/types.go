// Package core defines the Graph, Node and Transition types that the
// shortest-path solver consumes, and the primitives for building them.
//
// A Graph maps unique string keys to Nodes. Each Node carries a Valid flag
// (whether it is a legal configuration of the modelled domain) and an ordered
// list of outgoing Transitions. Graphs are built once, optionally frozen,
// and then only read.
//
// All Graph methods take a sync.RWMutex internally, so concurrent readers
// are safe; the solver itself reads a graph from a single goroutine.
//
// Errors:
//
//	ErrEmptyKey        - node key is the empty string.
//	ErrNodeNotFound    - requested node does not exist.
//	ErrDuplicateNode   - node key already registered.
//	ErrLoopNotAllowed  - self-transition when loops are disabled.
//	ErrBadWeight       - non-unit weight on an unweighted graph.
//	ErrNegativeWeight  - negative weight on a weighted graph.
//	ErrInvalidTarget   - transition leads into a node flagged invalid.
//	ErrFrozen          - mutation attempted after Freeze.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyKey indicates that a node key is the empty string.
	ErrEmptyKey = errors.New("core: node key is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates AddNode was called twice with the same key.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrLoopNotAllowed indicates a self-transition was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a weight other than 1 was given to an unweighted graph.
	ErrBadWeight = errors.New("core: unweighted graph accepts unit weights only")

	// ErrNegativeWeight indicates a negative transition weight.
	ErrNegativeWeight = errors.New("core: negative transition weight")

	// ErrInvalidTarget indicates a transition into a node whose Valid flag is false.
	ErrInvalidTarget = errors.New("core: transition into invalid node")

	// ErrFrozen indicates a mutation of a frozen graph.
	ErrFrozen = errors.New("core: graph is frozen")
)

// UnitWeight is the cost of a single move in an unweighted graph.
const UnitWeight int64 = 1

// Transition is one outgoing edge of a Node.
type Transition struct {
	// To is the key of the target node.
	To string

	// Weight is the non-negative cost of taking this transition.
	Weight int64
}

// Node is a single configuration of the modelled state space.
//
// Valid marks whether the configuration is legal. Invalid nodes may exist as
// placeholders but must never be the target of a transition.
type Node struct {
	Key         string
	Valid       bool
	Transitions []Transition
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether AddTransition creates one-way transitions (true)
// or also adds the reverse transition (false). Graphs are directed by default.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows transition weights other than UnitWeight.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits transitions from a node to itself.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory state graph keyed by node key.
//
// order remembers insertion order so that Keys, Validate and every consumer
// iterate deterministically.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	weighted   bool
	allowLoops bool
	frozen     bool

	nodes map[string]*Node
	order []string
}

// NewGraph creates an empty Graph.
// By default the graph is directed, unweighted and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed: true,
		nodes:    make(map[string]*Node),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
