package solver_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/solver"
)

// ExampleSolve solves a 3×3 board one slide away from the goal.
func ExampleSolve() {
	b, _ := board.FromGrid([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 0, 8},
	})

	res, err := solver.Solve(b, solver.AStar)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%d move(s)\n", len(res.Moves))
	for _, m := range res.Moves {
		fmt.Printf("slide tile %d at (%d,%d)\n", b.At(m.Row, m.Col), m.Row, m.Col)
	}
	// Output:
	// 1 move(s)
	// slide tile 8 at (2,2)
}

// ExampleSolve_unsolvable shows the parity gate rejecting a board.
func ExampleSolve_unsolvable() {
	b, _ := board.FromGrid([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{8, 7, 0},
	})

	_, err := solver.Solve(b, solver.BFS)
	fmt.Println(err)
	// Output:
	// solver: board is not solvable
}

// ExampleSolve_compare runs all three engines on one scramble; the move
// counts agree because each engine returns a minimum-length solution.
func ExampleSolve_compare() {
	b, _ := board.Shuffle(3, 20, 42)

	for _, algo := range []solver.Algorithm{solver.AStar, solver.IDAStar, solver.BFS} {
		res, err := solver.Solve(b, algo)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%s: %v in %d moves\n", algo, res.Status == solver.StatusSolved, len(res.Moves))
	}
}
