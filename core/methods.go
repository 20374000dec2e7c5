package core

import (
	"fmt"
)

// AddNode registers a node under key with the given validity flag.
//
// Errors: ErrEmptyKey, ErrDuplicateNode, ErrFrozen.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(key string, valid bool) error {
	if key == "" {
		return ErrEmptyKey
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	if _, exists := g.nodes[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, key)
	}

	g.nodes[key] = &Node{Key: key, Valid: valid}
	g.order = append(g.order, key)

	return nil
}

// AddTransition appends a transition from → to with the given weight.
// On undirected graphs the reverse transition is appended to `to` as well.
//
// Target validity is not checked here; see Validate.
//
// Errors: ErrEmptyKey, ErrNodeNotFound, ErrLoopNotAllowed, ErrBadWeight,
// ErrNegativeWeight, ErrFrozen.
// Complexity: O(1) amortized.
func (g *Graph) AddTransition(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyKey
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	if !g.weighted && weight != UnitWeight {
		return fmt.Errorf("%w: %s→%s weight=%d", ErrBadWeight, from, to, weight)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	src, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	dst, ok := g.nodes[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}

	src.Transitions = append(src.Transitions, Transition{To: to, Weight: weight})
	if !g.directed && from != to {
		dst.Transitions = append(dst.Transitions, Transition{To: from, Weight: weight})
	}

	return nil
}

// Freeze forbids any further AddNode or AddTransition calls.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Directed reports whether transitions are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether non-unit weights are permitted.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// HasNode reports whether a node with key exists.
func (g *Graph) HasNode(key string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[key]
	return ok
}

// Node returns a copy of the node stored under key.
// The returned Transitions slice is not shared with the graph.
func (g *Graph) Node(key string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[key]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, key)
	}

	return Node{Key: n.Key, Valid: n.Valid, Transitions: cloneTransitions(n.Transitions)}, nil
}

// Transitions returns a copy of the ordered outgoing transitions of key.
func (g *Graph) Transitions(key string) ([]Transition, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, key)
	}

	return cloneTransitions(n.Transitions), nil
}

// Keys returns all node keys in insertion order.
func (g *Graph) Keys() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := make([]string, len(g.order))
	copy(keys, g.order)

	return keys
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// TransitionCount returns the total number of stored transitions.
func (g *Graph) TransitionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, n := range g.nodes {
		total += len(n.Transitions)
	}

	return total
}

// Validate checks the construction contract of the graph: every transition
// targets an existing, valid node and carries a non-negative weight.
// The first violation, in insertion order, is returned.
// Complexity: O(V + E)
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, key := range g.order {
		for _, t := range g.nodes[key].Transitions {
			dst, ok := g.nodes[t.To]
			if !ok {
				return fmt.Errorf("%w: %s→%s", ErrNodeNotFound, key, t.To)
			}
			if !dst.Valid {
				return fmt.Errorf("%w: %s→%s", ErrInvalidTarget, key, t.To)
			}
			if t.Weight < 0 {
				return fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, key, t.To, t.Weight)
			}
		}
	}

	return nil
}

func cloneTransitions(ts []Transition) []Transition {
	if ts == nil {
		return nil
	}
	out := make([]Transition, len(ts))
	copy(out, ts)

	return out
}
