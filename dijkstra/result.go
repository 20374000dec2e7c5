package dijkstra

import (
	"fmt"
	"sort"
)

// Result is an immutable snapshot of one solver run.
//
// Only finalized nodes carry a distance. A node the run never reached, or
// left beyond MaxDistance, is reported as unreachable rather than as a node
// at distance Infinity.
type Result struct {
	source string
	dist   map[string]int64
	prev   map[string]string
	order  []string
	known  map[string]struct{}
}

// Source returns the key the run started from.
func (r *Result) Source() string { return r.source }

// Distance returns the shortest distance from the source to key.
// The boolean is false, and the distance Infinity, if key was not reached.
func (r *Result) Distance(key string) (int64, bool) {
	d, ok := r.dist[key]
	if !ok {
		return Infinity, false
	}

	return d, true
}

// Predecessor returns the node preceding key on its shortest path.
// The boolean is false for the source and for unreached nodes.
func (r *Result) Predecessor(key string) (string, bool) {
	p, ok := r.prev[key]
	return p, ok
}

// Reachable reports whether key was reached from the source.
func (r *Result) Reachable(key string) bool {
	_, ok := r.dist[key]
	return ok
}

// Order returns reached nodes in the order their distances became final.
func (r *Result) Order() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// Distances returns a copy of the distance map for every reached node.
func (r *Result) Distances() map[string]int64 {
	out := make(map[string]int64, len(r.dist))
	for k, d := range r.dist {
		out[k] = d
	}

	return out
}

// Unreached returns, sorted, the graph keys the run never reached.
func (r *Result) Unreached() []string {
	var out []string
	for k := range r.known {
		if _, ok := r.dist[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)

	return out
}

// PathTo reconstructs the shortest path from the source to target, both ends
// included. A target equal to the source yields a one-element path.
//
// Errors:
//   - ErrVertexNotFound if target is not a key of the solved graph.
//   - ErrUnreachable    if no path leads to target.
func (r *Result) PathTo(target string) ([]string, error) {
	if _, ok := r.known[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}
	if _, ok := r.dist[target]; !ok {
		return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, target, r.source)
	}

	var path []string
	for cur := target; ; {
		path = append(path, cur)
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Steps returns the number of transitions on the shortest path to target.
func (r *Result) Steps(target string) (int, error) {
	path, err := r.PathTo(target)
	if err != nil {
		return 0, err
	}

	return len(path) - 1, nil
}
