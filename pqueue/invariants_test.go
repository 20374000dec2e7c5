package pqueue

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

type node struct {
	id   int
	prio int
}

// checkInvariants verifies the min-heap property and the exactness of the key index.
func checkInvariants[K comparable, T any](t *testing.T, h *MinHeap[K, T], removed map[K]bool) {
	t.Helper()
	for i := 1; i < len(h.items); i++ {
		parent := (i - 1) / 2
		require.LessOrEqual(t, h.compare(h.items[parent], h.items[i]), 0,
			"slot %d orders before its parent %d", i, parent)
	}
	require.Len(t, h.pos, len(h.items))
	for k, i := range h.pos {
		require.Less(t, i, len(h.items))
		require.Equal(t, k, h.key(h.items[i]), "index for %v points at the wrong slot", k)
	}
	for k := range removed {
		_, ok := h.pos[k]
		require.False(t, ok, "removed key %v still indexed", k)
	}
}

func TestInvariants_RandomOperations(t *testing.T) {
	for _, withMinify := range []bool{true, false} {
		t.Run(fmt.Sprintf("minify=%v", withMinify), func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			opts := []Option[node]{}
			if withMinify {
				opts = append(opts, WithMinify(func(n node) node { return node{id: n.id, prio: -1 << 31} }))
			}
			h := New(func(n node) int { return n.id }, Ascending(func(n node) int { return n.prio }), opts...)
			live := map[int]int{}
			removed := map[int]bool{}
			nextID := 0

			for step := 0; step < 2000; step++ {
				switch op := rng.Intn(4); {
				case op == 0 || len(live) == 0:
					p := rng.Intn(1000)
					require.NoError(t, h.Insert(node{id: nextID, prio: p}))
					live[nextID] = p
					delete(removed, nextID)
					nextID++
				case op == 1:
					got, ok := h.ExtractMin()
					require.True(t, ok)
					for _, p := range live {
						require.LessOrEqual(t, got.prio, p)
					}
					delete(live, got.id)
					removed[got.id] = true
				case op == 2:
					id := anyKey(rng, live)
					p := live[id] - rng.Intn(50)
					require.NoError(t, h.DecreaseKey(id, node{id: id, prio: p}))
					live[id] = p
				default:
					id := anyKey(rng, live)
					got, err := h.DeleteKey(id)
					require.NoError(t, err)
					require.Equal(t, live[id], got.prio)
					delete(live, id)
					removed[id] = true
				}
				checkInvariants(t, h, removed)
			}
		})
	}
}

func anyKey(rng *rand.Rand, m map[int]int) int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys) // map order is not reproducible

	return keys[rng.Intn(len(keys))]
}
