// Implementation notes:
//
//   - The graph's construction contract (known, valid targets and
//     non-negative weights) is checked once before the loop starts.
//   - A node extracted at Infinity means the rest of the heap is unreachable
//     too, so the loop stops there.
//   - Per-run state lives in a runner and is handed back as a Result.

package dijkstra

import (
	"errors"
	"fmt"

	"github.com/sidhantpanda/FoxGooseCorn/core"
	"github.com/sidhantpanda/FoxGooseCorn/pqueue"
)

// Dijkstra computes shortest distances from Options.Source to every node of g
// reachable from it.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No transition may have a negative weight (ErrNegativeWeight).
//  5. Every transition must target an existing, valid node (ErrInvalidTransition).
//
// An error returned by the OnVisit hook aborts the run and is returned as is.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	if err := g.Validate(); err != nil {
		switch {
		case errors.Is(err, core.ErrNegativeWeight):
			return nil, fmt.Errorf("%w: %w", ErrNegativeWeight, err)
		default:
			return nil, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
		}
	}

	// 3) Run.
	keys := g.Keys()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(keys)),
		prev:    make(map[string]string, len(keys)),
		visited: make(map[string]bool, len(keys)),
		order:   make([]string, 0, len(keys)),
	}
	if err := r.init(keys); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64  // best known distance per node
	prev    map[string]string // predecessor on the best known path
	visited map[string]bool   // finalized nodes
	order   []string          // finalization order
	pq      *pqueue.MinHeap[string, nodeItem]
}

// nodeItem is the heap's snapshot of a node's key and distance.
type nodeItem struct {
	key  string
	dist int64
}

func itemKey(it nodeItem) string { return it.key }

func byKey(a, b nodeItem) int {
	switch {
	case a.key < b.key:
		return -1
	case a.key > b.key:
		return 1
	default:
		return 0
	}
}

func minify(it nodeItem) nodeItem { return nodeItem{key: it.key, dist: -Infinity - 1} }

// init seeds every node into the heap: the source at 0, the rest at Infinity.
func (r *runner) init(keys []string) error {
	opts := []pqueue.Option[nodeItem]{
		pqueue.WithCapacity[nodeItem](len(keys)),
		pqueue.WithMinify(minify),
		pqueue.WithLogger[nodeItem](r.options.Logger),
	}
	if r.options.DeterministicTies {
		opts = append(opts, pqueue.WithTieBreak(byKey))
	}
	r.pq = pqueue.New(itemKey, pqueue.Ascending(func(it nodeItem) int64 { return it.dist }), opts...)

	for _, k := range keys {
		d := Infinity
		if k == r.options.Source {
			d = 0
		}
		r.dist[k] = d
		if err := r.pq.Insert(nodeItem{key: k, dist: d}); err != nil {
			return fmt.Errorf("dijkstra: seeding queue: %w", err)
		}
	}

	return nil
}

// process is the main loop: extract the nearest node, finalize it, relax its transitions.
func (r *runner) process() error {
	log := r.options.Logger
	for !r.pq.IsEmpty() {
		item, _ := r.pq.ExtractMin()
		u, d := item.key, item.dist

		if d == Infinity {
			log.Debug("remaining nodes unreachable", "count", r.pq.Len()+1)
			break
		}
		if d > r.options.MaxDistance {
			log.Debug("distance cap reached", "node", u, "dist", d, "max", r.options.MaxDistance)
			break
		}

		r.visited[u] = true
		r.order = append(r.order, u)
		log.Debug("node finalized", "node", u, "dist", d)
		if err := r.options.OnVisit(u, d); err != nil {
			return err
		}

		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every unvisited target of u through u.
// d is the final distance of u.
func (r *runner) relax(u string, d int64) error {
	transitions, err := r.g.Transitions(u)
	if err != nil {
		return fmt.Errorf("dijkstra: transitions of %q: %w", u, err)
	}

	for _, t := range transitions {
		v := t.To
		if r.visited[v] {
			continue
		}
		// Saturate instead of overflowing past Infinity.
		if t.Weight >= Infinity-d {
			continue
		}
		candidate := d + t.Weight
		if candidate > r.options.MaxDistance || candidate >= r.dist[v] {
			continue
		}

		r.dist[v] = candidate
		r.prev[v] = u
		if err := r.pq.DecreaseKey(v, nodeItem{key: v, dist: candidate}); err != nil {
			return fmt.Errorf("dijkstra: re-sync %q: %w", v, err)
		}
	}

	return nil
}

// result snapshots the finalized nodes into an immutable Result.
func (r *runner) result() *Result {
	res := &Result{
		source: r.options.Source,
		dist:   make(map[string]int64, len(r.order)),
		prev:   make(map[string]string, len(r.order)),
		order:  r.order,
		known:  make(map[string]struct{}, len(r.dist)),
	}
	for k := range r.dist {
		res.known[k] = struct{}{}
	}
	for _, k := range r.order {
		res.dist[k] = r.dist[k]
		if p, ok := r.prev[k]; ok {
			res.prev[k] = p
		}
	}

	return res
}
