package puzzle

import (
	"fmt"

	"github.com/sidhantpanda/FoxGooseCorn/core"
)

// BuildGraph enumerates every state of d as a node, flags illegal states
// invalid, and adds a unit-weight transition for each legal move. Invalid
// states stay in the graph as placeholders without outgoing transitions.
// The returned graph is frozen.
func BuildGraph(d *Definition) (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	width := d.Width()
	total := 1 << width
	states := make([]State, total)
	g := core.NewGraph(core.WithDirected(true))

	for idx := 0; idx < total; idx++ {
		s := stateAt(width, idx)
		states[idx] = s
		if err := g.AddNode(s.Key(), Valid(d, s)); err != nil {
			return nil, fmt.Errorf("puzzle: add state %s: %w", s.Key(), err)
		}
	}

	for _, s := range states {
		if !Valid(d, s) {
			continue
		}
		for _, next := range Moves(d, s) {
			if err := g.AddTransition(s.Key(), next.Key(), core.UnitWeight); err != nil {
				return nil, fmt.Errorf("puzzle: add move %s→%s: %w", s.Key(), next.Key(), err)
			}
		}
	}
	g.Freeze()

	return g, nil
}
