package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sidhantpanda/FoxGooseCorn/bfs"
	"github.com/sidhantpanda/FoxGooseCorn/core"
	"github.com/sidhantpanda/FoxGooseCorn/dijkstra"
)

// TestDijkstra_MatchesBFSOnUnitGraphs compares distances with breadth-first
// depths on random unit-weight graphs.
func TestDijkstra_MatchesBFSOnUnitGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n := 2 + rng.Intn(30)
		g := core.NewGraph()
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddNode(fmt.Sprintf("n%02d", i), true))
		}
		for e := rng.Intn(3 * n); e > 0; e-- {
			from, to := rng.Intn(n), rng.Intn(n)
			if from == to {
				continue
			}
			require.NoError(t, g.AddTransition(fmt.Sprintf("n%02d", from), fmt.Sprintf("n%02d", to), core.UnitWeight))
		}

		res, err := dijkstra.Dijkstra(g, dijkstra.Source("n00"))
		require.NoError(t, err)
		ref, err := bfs.BFS(g, "n00")
		require.NoError(t, err)

		for _, k := range g.Keys() {
			depth, reached := ref.Depth[k]
			d, ok := res.Distance(k)
			require.Equal(t, reached, ok, "round %d node %s reachability", round, k)
			if reached {
				require.Equal(t, int64(depth), d, "round %d node %s distance", round, k)
				steps, err := res.Steps(k)
				require.NoError(t, err)
				require.Equal(t, depth, steps)
			}
		}
	}
}
