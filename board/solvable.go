package board

// Solvable reports whether b can reach the canonical goal configuration.
//
// The check counts inversions in the flattened tile sequence with the
// blank excluded: a pair (i, j), i < j, is an inversion iff tile[i] >
// tile[j]. For odd n the board is solvable iff the inversion count is
// even. For even n the blank's row also matters: the board is solvable
// iff the inversion count plus the blank's row, counted from the bottom
// edge starting at 1, is odd — the goal itself (0 inversions, blank on
// the bottom row) satisfies this.
//
// Complexity: O(n⁴) time (pairwise comparison over n² cells), O(n²) space.
// The receiver is never mutated.
func (b Board) Solvable() bool {
	// Flatten tiles, skipping the blank.
	tiles := make([]uint8, 0, b.n*b.n-1)
	for _, v := range b.cells {
		if v != Blank {
			tiles = append(tiles, v)
		}
	}

	inversions := 0
	var i, j int
	for i = 0; i < len(tiles); i++ {
		for j = i + 1; j < len(tiles); j++ {
			if tiles[i] > tiles[j] {
				inversions++
			}
		}
	}

	if b.n%2 == 1 {
		return inversions%2 == 0
	}

	// Even edge: fold in the blank row, 1-based from the bottom.
	blankRowFromBottom := b.n - b.blank/b.n

	return (inversions+blankRowFromBottom)%2 == 1
}
