package solver

import "github.com/katalvlaran/npuzzle/board"

// Solve finds a move sequence transforming b into the canonical goal
// configuration using the selected engine, applying any number of
// functional Options.
//
// Shared gate, in order:
//  1. Options are validated (ErrOptionViolation on bad values).
//  2. The board is validated (board.ErrBadSize / board.ErrNonSquare /
//     board.ErrBadPermutation) — malformed input never enters search.
//  3. A board already equal to the goal returns StatusAlreadySolved with
//     an empty move list, skipping the solvability check entirely.
//  4. The inversion-parity check rejects unsolvable boards with
//     ErrUnsolvable before a single node is expanded.
//
// The engine then runs on a private copy of b; the caller's board is
// never mutated, and no state is shared between concurrent Solve calls.
//
// On success Result.Moves replays from b to the goal, earliest move
// first. A* and BFS always return minimum-length solutions; IDA* does
// too, since its bound search under unit costs finds shortest paths.
// Cancellation via WithContext surfaces as the context's own error.
func Solve(b board.Board, algo Algorithm, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	if err := b.Validate(); err != nil {
		return Result{}, err
	}

	if b.IsGoal() {
		return Result{Moves: []board.Move{}, Status: StatusAlreadySolved}, nil
	}

	if !b.Solvable() {
		return Result{Status: StatusNoSolution}, ErrUnsolvable
	}

	e := newEvaluator(b.Size())
	private := b.Clone()

	switch algo {
	case AStar:
		return solveAStar(private, e, &o)
	case IDAStar:
		return solveIDAStar(private, e, &o)
	case BFS:
		return solveBFS(private, &o)
	default:
		return Result{}, ErrUnknownAlgorithm
	}
}
