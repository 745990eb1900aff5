package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/solver"
)

// engines lists every algorithm once, for cross-engine property tests.
var engines = []solver.Algorithm{solver.AStar, solver.IDAStar, solver.BFS}

// replay applies moves to b in order, requiring each to be adjacent to
// the blank active at that step, and returns the final board.
func replay(t *testing.T, b board.Board, moves []board.Move) board.Board {
	t.Helper()
	var err error
	for i, m := range moves {
		require.Equalf(t, 1, m.ManhattanTo(b.BlankPosition()),
			"move %d (%v) is not adjacent to the blank", i, m)
		b, err = b.Apply(m)
		require.NoError(t, err)
	}

	return b
}

// TestSolve_OneMoveFromGoal: a 3×3 board one slide away resolves in
// exactly one move, the same move, for every engine.
func TestSolve_OneMoveFromGoal(t *testing.T) {
	start, err := board.FromGrid([][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}})
	require.NoError(t, err)

	for _, algo := range engines {
		res, err := solver.Solve(start, algo)
		require.NoError(t, err, algo)
		require.Equal(t, solver.StatusSolved, res.Status, algo)
		require.Len(t, res.Moves, 1, algo)
		// tile 8 at (2,2) slides into (2,1)
		require.Equal(t, board.Move{Row: 2, Col: 2}, res.Moves[0], algo)
		require.True(t, replay(t, start, res.Moves).IsGoal(), algo)
	}
}

// TestSolve_AlreadySolved: the goal board yields an empty, non-nil
// solution from every engine without touching the search.
func TestSolve_AlreadySolved(t *testing.T) {
	goal, err := board.New(3)
	require.NoError(t, err)

	for _, algo := range engines {
		res, err := solver.Solve(goal, algo)
		require.NoError(t, err, algo)
		require.Equal(t, solver.StatusAlreadySolved, res.Status, algo)
		require.NotNil(t, res.Moves, algo)
		require.Empty(t, res.Moves, algo)
		require.Zero(t, res.Expanded, algo)
	}
}

// TestSolve_Unsolvable: a parity-rejected board is refused by every
// engine before a single node is expanded.
func TestSolve_Unsolvable(t *testing.T) {
	start, err := board.FromGrid([][]int{{1, 2, 3}, {4, 5, 6}, {8, 7, 0}})
	require.NoError(t, err)
	require.False(t, start.Solvable())

	for _, algo := range engines {
		res, err := solver.Solve(start, algo)
		require.ErrorIs(t, err, solver.ErrUnsolvable, algo)
		require.Equal(t, solver.StatusNoSolution, res.Status, algo)
		require.Nil(t, res.Moves, algo)
		require.Zero(t, res.Expanded, algo)
		require.Zero(t, res.Generated, algo)
	}
}

// TestSolve_OneMoveEverySize generalizes the 4×4 scenario: for each
// supported edge, one adjacent-to-blank slide from goal solves in one move.
func TestSolve_OneMoveEverySize(t *testing.T) {
	for n := board.MinSize; n <= board.MaxSize; n++ {
		goal, err := board.New(n)
		require.NoError(t, err)
		start, err := goal.Apply(board.Move{Row: n - 1, Col: n - 2})
		require.NoError(t, err)

		for _, algo := range engines {
			res, err := solver.Solve(start, algo)
			require.NoErrorf(t, err, "n=%d algo=%v", n, algo)
			require.Lenf(t, res.Moves, 1, "n=%d algo=%v", n, algo)
			require.True(t, replay(t, start, res.Moves).IsGoal())
		}
	}
}

// TestSolve_EnginesAgreeOnLength: A*, IDA*, and BFS return minimum-length
// solutions, so their move counts must coincide on shared scrambles, and
// every solution must replay to the goal.
func TestSolve_EnginesAgreeOnLength(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		start, err := board.Shuffle(3, 20, seed)
		require.NoError(t, err)

		lengths := make(map[solver.Algorithm]int, len(engines))
		for _, algo := range engines {
			res, err := solver.Solve(start, algo)
			require.NoErrorf(t, err, "seed=%d algo=%v", seed, algo)
			require.True(t, replay(t, start, res.Moves).IsGoal(),
				"seed=%d algo=%v does not reach goal", seed, algo)
			lengths[algo] = len(res.Moves)
		}
		require.Equal(t, lengths[solver.BFS], lengths[solver.AStar], "seed=%d", seed)
		require.Equal(t, lengths[solver.BFS], lengths[solver.IDAStar], "seed=%d", seed)
	}
}

// TestSolve_InvalidBoard: malformed input fails fast, never entering search.
func TestSolve_InvalidBoard(t *testing.T) {
	var zero board.Board
	for _, algo := range engines {
		_, err := solver.Solve(zero, algo)
		require.ErrorIs(t, err, board.ErrBadSize, algo)
	}
}

// TestSolve_UnknownAlgorithm rejects out-of-range selectors.
func TestSolve_UnknownAlgorithm(t *testing.T) {
	start, err := board.FromGrid([][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}})
	require.NoError(t, err)
	_, err = solver.Solve(start, solver.Algorithm(42))
	require.ErrorIs(t, err, solver.ErrUnknownAlgorithm)
}

// TestSolve_OptionViolations: invalid options surface before any search.
func TestSolve_OptionViolations(t *testing.T) {
	start, err := board.FromGrid([][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}})
	require.NoError(t, err)

	_, err = solver.Solve(start, solver.AStar, solver.WithMaxExpansions(-1))
	require.ErrorIs(t, err, solver.ErrOptionViolation)

	_, err = solver.Solve(start, solver.AStar, solver.WithHeuristic(solver.Heuristic(99)))
	require.ErrorIs(t, err, solver.ErrOptionViolation)
}

// TestSolve_DoesNotMutateInput: the caller's board survives a full solve.
func TestSolve_DoesNotMutateInput(t *testing.T) {
	start, err := board.Shuffle(3, 15, 3)
	require.NoError(t, err)
	key := start.Key()

	for _, algo := range engines {
		_, err := solver.Solve(start, algo)
		require.NoError(t, err, algo)
		require.Equal(t, key, start.Key(), algo)
	}
}
