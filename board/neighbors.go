package board

// directions is the fixed neighbor expansion order: right, down, left, up.
// Keeping this order stable makes tie-breaking among equal-priority search
// nodes reproducible across runs, which the solver test fixtures rely on.
var directions = [4]struct{ dr, dc int }{
	{0, 1},  // right
	{1, 0},  // down
	{0, -1}, // left
	{-1, 0}, // up
}

// PossibleMoves returns the legal moves from b in the fixed
// right, down, left, up order. At most 4 entries; at least 2
// (a corner blank always has two orthogonal neighbors).
func (b Board) PossibleMoves() []Move {
	blank := b.BlankPosition()
	moves := make([]Move, 0, 4)
	var p Position
	for _, d := range directions {
		p = Position{Row: blank.Row + d.dr, Col: blank.Col + d.dc}
		if b.InBounds(p) {
			moves = append(moves, p)
		}
	}

	return moves
}

// Neighbors enumerates every successor configuration of b, one per legal
// move, in the fixed right, down, left, up order. The receiver is not
// mutated; each Step carries its own board copy.
//
// Neighbors performs no visited-state filtering — that responsibility
// belongs to each search engine.
func (b Board) Neighbors() []Step {
	moves := b.PossibleMoves()
	steps := make([]Step, 0, len(moves))
	for _, m := range moves {
		// Apply cannot fail here: every move came from PossibleMoves.
		next, _ := b.Apply(m)
		steps = append(steps, Step{Board: next, Move: m})
	}

	return steps
}
