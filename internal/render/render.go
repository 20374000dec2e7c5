// Package render turns a solved puzzle into step-by-step output.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sidhantpanda/FoxGooseCorn/dijkstra"
	"github.com/sidhantpanda/FoxGooseCorn/puzzle"
)

// Step is one crossing of a solution.
type Step struct {
	Number int    `json:"number"`
	State  string `json:"state"`
	Move   string `json:"move"`
}

// Solution is the presentation model of a shortest path.
type Solution struct {
	Puzzle   string `json:"puzzle"`
	Start    string `json:"start"`
	Goal     string `json:"goal"`
	Distance int64  `json:"distance"`
	Steps    []Step `json:"steps"`
}

// NewSolution extracts the path to goal from res and annotates each step with
// its move. It returns dijkstra.ErrUnreachable when res holds no such path.
func NewSolution(def *puzzle.Definition, res *dijkstra.Result, goal string) (*Solution, error) {
	path, err := res.PathTo(goal)
	if err != nil {
		return nil, err
	}
	dist, _ := res.Distance(goal)

	sol := &Solution{
		Puzzle:   def.Name,
		Start:    res.Source(),
		Goal:     goal,
		Distance: dist,
		Steps:    make([]Step, 0, len(path)-1),
	}
	for i := 1; i < len(path); i++ {
		from, err := puzzle.ParseKey(def, path[i-1])
		if err != nil {
			return nil, err
		}
		to, err := puzzle.ParseKey(def, path[i])
		if err != nil {
			return nil, err
		}
		sol.Steps = append(sol.Steps, Step{Number: i, State: path[i], Move: puzzle.Describe(def, from, to)})
	}

	return sol, nil
}

// Text writes a human-readable listing of sol.
func Text(w io.Writer, sol *Solution) error {
	if _, err := fmt.Fprintf(w, "Puzzle %s: %s → %s in %d steps\n", sol.Puzzle, sol.Start, sol.Goal, len(sol.Steps)); err != nil {
		return err
	}
	for _, s := range sol.Steps {
		if _, err := fmt.Fprintf(w, "Step %d: %s  %s\n", s.Number, s.State, s.Move); err != nil {
			return err
		}
	}

	return nil
}

// JSON writes sol as an indented JSON document.
func JSON(w io.Writer, sol *Solution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(sol)
}
