package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidhantpanda/FoxGooseCorn/core"
)

func TestAddNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", true))
	require.ErrorIs(t, g.AddNode("A", false), core.ErrDuplicateNode)
	require.ErrorIs(t, g.AddNode("", true), core.ErrEmptyKey)

	n, err := g.Node("A")
	require.NoError(t, err)
	assert.True(t, n.Valid)
	assert.Equal(t, 1, g.Len())

	_, err = g.Node("missing")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestAddTransition_Directed(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", true))
	require.NoError(t, g.AddNode("B", true))
	require.NoError(t, g.AddTransition("A", "B", core.UnitWeight))

	ts, err := g.Transitions("A")
	require.NoError(t, err)
	assert.Equal(t, []core.Transition{{To: "B", Weight: 1}}, ts)

	ts, err = g.Transitions("B")
	require.NoError(t, err)
	assert.Empty(t, ts)
	assert.True(t, g.Directed())
}

func TestAddTransition_UndirectedAddsReverse(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false), core.WithWeighted())
	require.NoError(t, g.AddNode("A", true))
	require.NoError(t, g.AddNode("B", true))
	require.NoError(t, g.AddTransition("A", "B", 4))

	ts, err := g.Transitions("B")
	require.NoError(t, err)
	assert.Equal(t, []core.Transition{{To: "A", Weight: 4}}, ts)
	assert.Equal(t, 2, g.TransitionCount())
}

func TestAddTransition_Errors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", true))
	require.NoError(t, g.AddNode("B", true))

	assert.ErrorIs(t, g.AddTransition("A", "A", 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddTransition("A", "B", 3), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddTransition("A", "Z", 1), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddTransition("", "B", 1), core.ErrEmptyKey)

	w := core.NewGraph(core.WithWeighted(), core.WithLoops())
	require.NoError(t, w.AddNode("A", true))
	assert.ErrorIs(t, w.AddTransition("A", "A", -1), core.ErrNegativeWeight)
	assert.NoError(t, w.AddTransition("A", "A", 0))
}

func TestFreeze(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", true))
	require.NoError(t, g.AddNode("B", true))
	g.Freeze()

	assert.True(t, g.Frozen())
	assert.ErrorIs(t, g.AddNode("C", true), core.ErrFrozen)
	assert.ErrorIs(t, g.AddTransition("A", "B", 1), core.ErrFrozen)
}

func TestValidate(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", true))
	require.NoError(t, g.AddNode("B", true))
	require.NoError(t, g.AddNode("X", false))
	require.NoError(t, g.AddTransition("A", "B", 1))
	require.NoError(t, g.Validate())

	require.NoError(t, g.AddTransition("B", "X", 1))
	assert.ErrorIs(t, g.Validate(), core.ErrInvalidTarget)
}

func TestCopiesAreDetached(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", true))
	require.NoError(t, g.AddNode("B", true))
	require.NoError(t, g.AddTransition("A", "B", 1))

	n, err := g.Node("A")
	require.NoError(t, err)
	n.Transitions[0].To = "tampered"
	keys := g.Keys()
	keys[0] = "tampered"

	ts, err := g.Transitions("A")
	require.NoError(t, err)
	assert.Equal(t, "B", ts[0].To)
	assert.Equal(t, []string{"A", "B"}, g.Keys())
}

// TestConcurrentReads ensures readers can share a frozen graph.
func TestConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", true))
	require.NoError(t, g.AddNode("B", true))
	require.NoError(t, g.AddTransition("A", "B", 1))
	g.Freeze()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := g.Transitions("A")
			assert.NoError(t, err)
			assert.True(t, g.HasNode("B"))
		}()
	}
	wg.Wait()
}
