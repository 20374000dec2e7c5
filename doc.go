// Package foxgoosecorn solves river-crossing puzzles as shortest-path problems.
//
// What is inside?
//
//	pqueue/    binary min-heap addressable by key: Insert, PeekMin, ExtractMin,
//	            DecreaseKey and DeleteKey, all O(log n) or better
//	core/      Graph of keyed nodes with a validity flag and ordered transitions
//	dijkstra/  single-source shortest paths over core.Graph, driven by pqueue,
//	            returning an immutable Result with path reconstruction
//	bfs/       breadth-first search, the unit-weight reference for dijkstra
//	puzzle/    farmer/passenger state space, legality rules, move generation
//	            and HCL puzzle definitions
//	cmd/foxgoosecorn  command-line solver
//
// Quick example, the classic farmer, fox, goose and corn:
//
//	g, _ := puzzle.BuildGraph(puzzle.Classic())
//	res, _ := dijkstra.Dijkstra(g, dijkstra.Source("1111"))
//	path, _ := res.PathTo("0000") // 8 states, 7 crossings
//
// Each state key lists the farmer and then every passenger, 1 for the near
// bank and 0 for the far bank.
package foxgoosecorn
