package solver

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/board"
)

// Heuristic selects the admissible lower-bound estimate on the remaining
// move count. Every variant is admissible (never overestimates) and
// consistent (changes by at most 1 per move), so A* and IDA* both return
// minimum-length solutions under any of them.
type Heuristic int

const (
	// Manhattan sums, over all non-blank tiles, the L1 distance between
	// the tile's current and goal positions. The default.
	Manhattan Heuristic = iota

	// MisplacedTiles counts non-blank tiles not on their goal cell.
	// Weaker than Manhattan; mainly useful for instrumentation and
	// comparison runs.
	MisplacedTiles

	// LinearConflict is Manhattan plus 2 for each pair of tiles that sit
	// in their shared goal row (or column) but in reversed relative
	// order, accounting for the extra moves needed to let one pass the
	// other.
	LinearConflict
)

// String returns the conventional name of the heuristic.
func (h Heuristic) String() string {
	switch h {
	case Manhattan:
		return "Manhattan"
	case MisplacedTiles:
		return "MisplacedTiles"
	case LinearConflict:
		return "LinearConflict"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// evaluator computes heuristic estimates against a fixed goal layout.
// The goal-position table is built once per Solve call (O(n²)) so that
// per-node estimates never search for target cells.
type evaluator struct {
	n       int
	goalPos []board.Position // indexed by tile value; goalPos[Blank] unused
}

// newEvaluator precomputes the goal position of every tile for edge n.
func newEvaluator(n int) *evaluator {
	goalPos := make([]board.Position, n*n)
	for v := 1; v < n*n; v++ {
		goalPos[v] = board.Position{Row: (v - 1) / n, Col: (v - 1) % n}
	}

	return &evaluator{n: n, goalPos: goalPos}
}

// estimate returns the h-value of b under the selected heuristic.
func (e *evaluator) estimate(b board.Board, h Heuristic) int {
	switch h {
	case MisplacedTiles:
		return e.misplaced(b)
	case LinearConflict:
		return e.manhattan(b) + e.linearConflicts(b)
	default:
		return e.manhattan(b)
	}
}

// manhattan sums per-tile L1 distances to goal positions. O(n²).
func (e *evaluator) manhattan(b board.Board) int {
	sum := 0
	var v int
	for r := 0; r < e.n; r++ {
		for c := 0; c < e.n; c++ {
			v = b.At(r, c)
			if v == board.Blank {
				continue
			}
			sum += abs(r-e.goalPos[v].Row) + abs(c-e.goalPos[v].Col)
		}
	}

	return sum
}

// misplaced counts non-blank tiles off their goal cell. O(n²).
func (e *evaluator) misplaced(b board.Board) int {
	count := 0
	var v int
	for r := 0; r < e.n; r++ {
		for c := 0; c < e.n; c++ {
			v = b.At(r, c)
			if v == board.Blank {
				continue
			}
			if e.goalPos[v].Row != r || e.goalPos[v].Col != c {
				count++
			}
		}
	}

	return count
}

// linearConflicts counts pairs of tiles that occupy their shared goal row
// (or column) in reversed relative order and charges 2 extra moves per
// pair. Each conflicting pair forces one tile to temporarily leave the
// line, which Manhattan distance alone cannot see. O(n³).
func (e *evaluator) linearConflicts(b board.Board) int {
	conflicts := 0
	var v1, v2 int

	// Row conflicts: both tiles belong in row r and are inverted.
	for r := 0; r < e.n; r++ {
		for c := 0; c < e.n; c++ {
			v1 = b.At(r, c)
			if v1 == board.Blank || e.goalPos[v1].Row != r {
				continue
			}
			for k := c + 1; k < e.n; k++ {
				v2 = b.At(r, k)
				if v2 == board.Blank || e.goalPos[v2].Row != r {
					continue
				}
				if e.goalPos[v1].Col > e.goalPos[v2].Col {
					conflicts++
				}
			}
		}
	}

	// Column conflicts: both tiles belong in column c and are inverted.
	for c := 0; c < e.n; c++ {
		for r := 0; r < e.n; r++ {
			v1 = b.At(r, c)
			if v1 == board.Blank || e.goalPos[v1].Col != c {
				continue
			}
			for k := r + 1; k < e.n; k++ {
				v2 = b.At(k, c)
				if v2 == board.Blank || e.goalPos[v2].Col != c {
					continue
				}
				if e.goalPos[v1].Row > e.goalPos[v2].Row {
					conflicts++
				}
			}
		}
	}

	return conflicts * 2
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
