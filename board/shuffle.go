package board

import (
	"fmt"
	"math/rand"
)

// Shuffle returns a board of edge n scrambled by a random walk of steps
// legal moves starting from the goal configuration. Because every step is
// a legal move, the result is always solvable. The walk never immediately
// undoes its previous move, so short walks do not collapse back to the
// goal (the final board may still equal the goal for tiny step counts).
//
// The walk is driven by a rand.Source seeded with seed, so a given
// (n, steps, seed) triple always produces the same board.
//
// Returns ErrBadSize for an unsupported edge and ErrBadShuffleSteps for
// negative steps.
func Shuffle(n, steps int, seed int64) (Board, error) {
	if steps < 0 {
		return Board{}, fmt.Errorf("%w: got %d", ErrBadShuffleSteps, steps)
	}
	b, err := New(n)
	if err != nil {
		return Board{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	prevBlank := Position{Row: -1, Col: -1}
	var moves []Move
	var pick Move
	for i := 0; i < steps; i++ {
		moves = b.PossibleMoves()
		// Drop the move that would undo the previous step.
		filtered := moves[:0]
		for _, m := range moves {
			if m != prevBlank {
				filtered = append(filtered, m)
			}
		}
		pick = filtered[rng.Intn(len(filtered))]
		prevBlank = b.BlankPosition()
		b, err = b.Apply(pick)
		if err != nil {
			return Board{}, err
		}
	}

	return b, nil
}
