package board

import (
	"fmt"
	"strings"
)

// Board is an immutable n×n sliding-tile configuration.
// Cells hold the integers 0..n²−1 in row-major order, where Blank (0)
// marks the empty square. All methods treat the receiver as read-only;
// Apply and Clone return fresh copies, so a Board value may be shared
// freely across goroutines and concurrent solver runs.
//
// The zero Board is invalid; obtain one via New, FromGrid, or Shuffle.
type Board struct {
	n     int
	cells []uint8
	blank int // row-major index of the blank cell
}

// New returns the canonical goal configuration of edge n:
// tiles 1..n²−1 in row-major order with the blank in the bottom-right corner.
// Returns ErrBadSize when n is outside [MinSize, MaxSize].
func New(n int) (Board, error) {
	if n < MinSize || n > MaxSize {
		return Board{}, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}
	cells := goalCells(n)

	return Board{n: n, cells: cells, blank: n*n - 1}, nil
}

// FromGrid builds a Board from a row-major 2D grid.
// Validation order: shape (ErrBadSize, ErrNonSquare), then cell
// contents (ErrBadPermutation). The input grid is copied, never retained.
func FromGrid(grid [][]int) (Board, error) {
	n := len(grid)
	if n < MinSize || n > MaxSize {
		return Board{}, fmt.Errorf("%w: got %d rows", ErrBadSize, n)
	}
	cells := make([]uint8, 0, n*n)
	blank := -1
	seen := make([]bool, n*n)
	var v int
	for r, row := range grid {
		if len(row) != n {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, r, len(row), n)
		}
		for c, cell := range row {
			v = cell
			if v < 0 || v >= n*n || seen[v] {
				return Board{}, fmt.Errorf("%w: bad value %d at (%d,%d)", ErrBadPermutation, v, r, c)
			}
			seen[v] = true
			if v == Blank {
				blank = r*n + c
			}
			cells = append(cells, uint8(v))
		}
	}
	// A full permutation of 0..n²−1 always contains the blank.

	return Board{n: n, cells: cells, blank: blank}, nil
}

// Validate re-checks the Board invariants. Constructors already enforce
// them, so this only rejects zero-value or otherwise hand-rolled boards.
func (b Board) Validate() error {
	if b.n < MinSize || b.n > MaxSize {
		return fmt.Errorf("%w: got %d", ErrBadSize, b.n)
	}
	if len(b.cells) != b.n*b.n {
		return fmt.Errorf("%w: %d cells for size %d", ErrNonSquare, len(b.cells), b.n)
	}
	seen := make([]bool, b.n*b.n)
	for i, v := range b.cells {
		if int(v) >= b.n*b.n || seen[v] {
			return fmt.Errorf("%w: bad value %d at index %d", ErrBadPermutation, v, i)
		}
		seen[v] = true
	}
	if b.cells[b.blank] != Blank {
		return fmt.Errorf("%w: blank index %d desynchronized", ErrBadPermutation, b.blank)
	}

	return nil
}

// Size returns the board edge n.
func (b Board) Size() int { return b.n }

// At returns the tile value at (row, col). Out-of-range coordinates panic,
// matching slice-indexing semantics.
func (b Board) At(row, col int) int { return int(b.cells[row*b.n+col]) }

// BlankPosition returns the current position of the blank cell.
func (b Board) BlankPosition() Position {
	return Position{Row: b.blank / b.n, Col: b.blank % b.n}
}

// InBounds reports whether p lies on the board.
func (b Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.n && p.Col >= 0 && p.Col < b.n
}

// Grid returns a deep row-major copy of the configuration,
// suitable for display layers or external mutation.
func (b Board) Grid() [][]int {
	out := make([][]int, b.n)
	for r := 0; r < b.n; r++ {
		row := make([]int, b.n)
		for c := 0; c < b.n; c++ {
			row[c] = int(b.cells[r*b.n+c])
		}
		out[r] = row
	}

	return out
}

// Clone returns an independent copy of b with its own cell storage.
func (b Board) Clone() Board {
	cells := make([]uint8, len(b.cells))
	copy(cells, b.cells)

	return Board{n: b.n, cells: cells, blank: b.blank}
}

// Equal reports whether two boards hold identical configurations.
func (b Board) Equal(other Board) bool {
	if b.n != other.n {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// IsGoal reports whether b equals the canonical goal configuration.
func (b Board) IsGoal() bool {
	last := b.n*b.n - 1
	for i := 0; i < last; i++ {
		if int(b.cells[i]) != i+1 {
			return false
		}
	}

	return b.cells[last] == Blank
}

// Key returns a deterministic, collision-free encoding of the
// configuration for use as a visited-set key: the raw cell bytes.
// Two boards of equal size share a Key iff they are Equal.
func (b Board) Key() string { return string(b.cells) }

// String renders the board row by row, with the blank shown as "_",
// e.g. "1,2,3|4,5,6|7,_,8" for a 3×3 board.
func (b Board) String() string {
	var sb strings.Builder
	for i, v := range b.cells {
		if v == Blank {
			sb.WriteByte('_')
		} else {
			fmt.Fprintf(&sb, "%d", v)
		}
		switch {
		case i == len(b.cells)-1:
		case i%b.n == b.n-1:
			sb.WriteByte('|')
		default:
			sb.WriteByte(',')
		}
	}

	return sb.String()
}

// IsLegalMove reports whether sliding the tile at m into the blank
// is a legal move on b.
func (b Board) IsLegalMove(m Move) bool {
	return b.InBounds(m) && m.ManhattanTo(b.BlankPosition()) == 1
}

// Apply returns the board obtained by sliding the tile at m into the
// blank. The receiver is left untouched. Returns ErrIllegalMove when m
// is out of bounds or not adjacent to the blank.
func (b Board) Apply(m Move) (Board, error) {
	if !b.IsLegalMove(m) {
		return Board{}, fmt.Errorf("%w: move (%d,%d), blank at (%d,%d)",
			ErrIllegalMove, m.Row, m.Col, b.BlankPosition().Row, b.BlankPosition().Col)
	}
	next := b.Clone()
	src := m.Row*b.n + m.Col
	next.cells[next.blank] = next.cells[src]
	next.cells[src] = Blank
	next.blank = src

	return next, nil
}

// goalCells builds the canonical goal cell layout 1,2,…,n²−1,0.
func goalCells(n int) []uint8 {
	cells := make([]uint8, n*n)
	for i := 0; i < n*n-1; i++ {
		cells[i] = uint8(i + 1)
	}
	cells[n*n-1] = Blank

	return cells
}
