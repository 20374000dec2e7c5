package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/sidhantpanda/FoxGooseCorn/dijkstra"
	"github.com/sidhantpanda/FoxGooseCorn/puzzle"
)

// ExampleDijkstra solves the farmer, fox, goose and corn puzzle.
func ExampleDijkstra() {
	g, err := puzzle.BuildGraph(puzzle.Classic())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("1111"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, _ := res.PathTo("0000")
	fmt.Println(len(path)-1, "steps:", strings.Join(path, " → "))
	// Output: 7 steps: 1111 → 0101 → 1101 → 0001 → 1011 → 0010 → 1010 → 0000
}

// ExampleResult_PathTo shows the explicit unreachable outcome.
func ExampleResult_PathTo() {
	g, _ := puzzle.BuildGraph(puzzle.Classic())
	res, _ := dijkstra.Dijkstra(g, dijkstra.Source("1111"))

	// 1000 leaves the fox alone with the goose, so nothing leads there.
	_, err := res.PathTo("1000")
	fmt.Println(err)
	// Output: dijkstra: target unreachable from source: "1000" from "1111"
}
