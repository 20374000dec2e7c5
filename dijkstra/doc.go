// Package dijkstra computes single-source shortest paths over a core.Graph
// using a key-addressable min-heap with real decrease-key.
//
// Overview:
//
//   - Every node is queued up front: the source at distance 0, the rest at Infinity.
//   - The nearest queued node is extracted, finalized, and its transitions relaxed.
//   - Each improvement rewrites the node's heap entry through DecreaseKey, so the
//     heap holds exactly one entry per unfinalized node.
//   - The run returns an immutable Result; the graph is never written to, so
//     one graph can back any number of runs.
//
// Result:
//
//   - Distance / Reachable / Predecessor answer per-node questions.
//   - PathTo(target) rebuilds [source … target] by walking predecessors back.
//     Unreached targets yield ErrUnreachable, never a zero-length path;
//     a target equal to the source yields a one-element path.
//
// Ties:
//
//	With WithDeterministicTies(true) (the default) nodes at equal distance are
//	extracted in lexical key order, so among several equally short paths the
//	same one is always reported. Disabling it leaves the choice to insertion
//	order and heap layout.
//
// Errors (sentinel):
//
//   - ErrEmptySource:       no Source option was given.
//   - ErrNilGraph:          the graph pointer is nil.
//   - ErrVertexNotFound:    the source (or a PathTo target) is not in the graph.
//   - ErrNegativeWeight:    a transition has a negative weight.
//   - ErrInvalidTransition: a transition leads into an invalid or unknown node.
//   - ErrBadMaxDistance:    WithMaxDistance was given a negative value (panics).
//   - ErrUnreachable:       PathTo/Steps on a target no path reaches.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
package dijkstra
