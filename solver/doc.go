// Package solver finds shortest move sequences for N×N sliding-tile
// puzzles with three interchangeable search engines sharing one board
// model, one solvability gate, and one heuristic evaluator.
//
// What
//
//   - Solve(b, algo, opts...) — the single entry point, routing to:
//   - AStar:   best-first search over a min-heap ordered by f = g + h,
//     with a closed set, lazy duplicate suppression, and
//     insertion-order tie-breaking.
//   - IDAStar: iterative-deepening depth-first search with an f-bound,
//     immediate-reversal avoidance, and no global visited set.
//   - BFS:     level-order shortest path with an enqueue-time visited
//     set (the memory-hungry, heuristic-free reference).
//   - Heuristics: Manhattan (default), MisplacedTiles, LinearConflict —
//     all admissible and consistent, selectable for A* via WithHeuristic.
//   - Result carries the move list, an outcome Status, and Expanded /
//     Generated diagnostics.
//
// Why
//
//   - One canonical module instead of per-caller reimplementations: the
//     GUI, CLI, and RL layers all consume the same solve(board) contract.
//   - Minimal solutions: all three engines return minimum-length move
//     sequences under unit move cost, so they can validate each other.
//
// Determinism
//
//	Neighbor expansion always runs right, down, left, up; A* breaks
//	f-ties by insertion order; nothing is time-seeded. A given board and
//	option set produce identical solutions on every run.
//
// Concurrency
//
//	A Solve call is a single-threaded, reentrant computation over private
//	state. Engines copy the input board before searching and share
//	nothing across invocations, so concurrent solves — even of the same
//	board value — are safe. Cancellation is cooperative: the context from
//	WithContext is checked once per node expansion.
//
// Complexity (d = solution depth, N = distinct states touched)
//
//   - AStar:   O(N log N) time, O(N) memory
//   - IDAStar: O(d) memory; time dominated by the final deepening pass
//   - BFS:     O(N) time and memory, N ≥ that of A* on the same board
//
// Usage
//
//	b, err := board.FromGrid([][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}})
//	if err != nil { /* malformed input */ }
//	res, err := solver.Solve(b, solver.AStar,
//	    solver.WithContext(ctx),
//	    solver.WithHeuristic(solver.LinearConflict),
//	)
//	if err != nil {
//	    // ErrUnsolvable, ErrExpansionLimit, ErrOptionViolation,
//	    // a board validation error, or the context's error
//	}
//	for _, m := range res.Moves {
//	    b, _ = b.Apply(m)
//	}
//
// Errors
//
//   - board.ErrBadSize / board.ErrNonSquare / board.ErrBadPermutation
//     for malformed input (fail fast, never enters search).
//   - ErrUnsolvable        for parity-rejected boards.
//   - ErrSearchExhausted   defensive only; indicates an engine bug.
//   - ErrExpansionLimit    when WithMaxExpansions is hit.
//   - ErrUnknownAlgorithm  for an out-of-range Algorithm.
//   - ErrOptionViolation   for invalid options.
//   - context.Canceled / context.DeadlineExceeded from WithContext.
package solver
