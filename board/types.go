// Package board defines the core types, size bounds, and sentinel errors
// for sliding-tile puzzle states.
package board

import "errors"

// Supported board dimensions. A Board is an n×n grid with n in [MinSize, MaxSize].
const (
	// MinSize is the smallest supported board edge (a 2×2 three-tile puzzle).
	MinSize = 2
	// MaxSize is the largest supported board edge (a 5×5 twenty-four-tile puzzle).
	MaxSize = 5
	// Blank is the cell value representing the empty square.
	Blank = 0
)

// Sentinel errors for board construction and manipulation.
var (
	// ErrBadSize indicates a requested board edge outside [MinSize, MaxSize].
	ErrBadSize = errors.New("board: size must be between 2 and 5")
	// ErrNonSquare indicates input rows of differing lengths or a row count
	// that does not match the row length.
	ErrNonSquare = errors.New("board: grid must be square")
	// ErrBadPermutation indicates cell values that are not exactly the set
	// 0..n²−1 (duplicate, missing, or out-of-range tiles).
	ErrBadPermutation = errors.New("board: cells must be a permutation of 0..n²−1")
	// ErrIllegalMove indicates a move that is out of bounds or not
	// orthogonally adjacent to the blank.
	ErrIllegalMove = errors.New("board: move is not adjacent to the blank")
	// ErrBadShuffleSteps indicates a negative scramble length.
	ErrBadShuffleSteps = errors.New("board: shuffle steps must be non-negative")
)

// Position is a 0-indexed (row, column) pair on the board.
type Position struct {
	Row, Col int
}

// ManhattanTo returns the L1 grid distance between p and q.
func (p Position) ManhattanTo(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// Move names the position of the tile that slides into the blank.
// A move is legal iff it is in bounds and orthogonally adjacent
// (ManhattanTo == 1) to the current blank position.
type Move = Position

// Step pairs a successor board with the move that produced it.
type Step struct {
	Board Board
	Move  Move
}

// abs returns the absolute value of x without touching math/float.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
