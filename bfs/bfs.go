// Package bfs provides breadth-first search over an unweighted core.Graph.
//
// On a graph where every transition costs one move, BFS yields the same
// distances as Dijkstra in O(V + E) without a priority queue, which makes it
// the reference the solver is checked against.
package bfs

import (
	"context"
	"fmt"

	"github.com/sidhantpanda/FoxGooseCorn/core"
)

// queueItem pairs a node key with its depth.
type queueItem struct {
	key   string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrOptionViolation, ErrStartNotFound or
// ErrWeightedGraph for invalid input, the context error on cancellation,
// or any error returned by the OnVisit hook.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, "")
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks key visited at depth d and records its parent.
func (w *walker) enqueue(key string, d int, parent string) {
	w.visited[key] = true
	w.res.Depth[key] = d
	if parent != "" {
		w.res.Parent[key] = parent
	}
	w.queue = append(w.queue, queueItem{key: key, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.key)
		if err := w.opts.OnVisit(item.key, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.key, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		transitions, err := w.graph.Transitions(item.key)
		if err != nil {
			return fmt.Errorf("bfs: transitions of %q: %w", item.key, err)
		}
		for _, t := range transitions {
			if !w.visited[t.To] {
				w.enqueue(t.To, next, item.key)
			}
		}
	}

	return nil
}
