// Package npuzzle solves N×N sliding-tile puzzles (8-puzzle, 15-puzzle, …)
// with a family of interchangeable graph-search engines.
//
// 🚀 What is npuzzle?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Board primitives: an immutable puzzle state with moves, parity
//		  checks, neighbor generation and deterministic scrambles
//		• Search engines: A* (priority-queue best-first), IDA*
//		  (iterative-deepening with an f-bound), and BFS (level-order
//		  shortest path)
//		• Admissible heuristics: Manhattan distance, misplaced tiles,
//		  and linear-conflict correction
//
// ✨ Why choose npuzzle?
//
//   - Deterministic – fixed neighbor order and insertion-order tie-breaks
//     make every solve reproducible across runs and platforms
//   - Honest contracts – solvability is proven by inversion parity before
//     any node is expanded; unsolvable boards are rejected in O(n⁴)
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – functional options (WithContext, WithHeuristic,
//     WithMaxExpansions, WithOnExpand) for custom caller logic
//
// Under the hood, everything is organized under two subpackages:
//
//	board/  — the Board value type, legality rules, parity-based
//	          solvability, neighbor generation and scrambling
//	solver/ — the three engines, heuristics, and the Solve dispatcher
//
// Quick ASCII example (3×3, one move from the goal):
//
//	┌───┬───┬───┐
//	│ 1 │ 2 │ 3 │
//	├───┼───┼───┤
//	│ 4 │ 5 │ 6 │
//	├───┼───┼───┤
//	│ 7 │   │ 8 │
//	└───┴───┴───┘
//
//	sliding tile 8 left yields the canonical goal configuration.
//
// Dive into board/doc.go and solver/doc.go for contracts, complexity
// notes, and worked examples.
//
//	go get github.com/katalvlaran/npuzzle
package npuzzle
