// Package board provides the immutable sliding-tile Board value type and
// the primitives every search engine shares: legality rules, neighbor
// generation, parity-based solvability, and deterministic scrambling.
//
// What
//
//   - Board: an n×n configuration (n ∈ [2,5]) holding a permutation of
//     0..n²−1 where 0 is the blank square. Constructed via New (goal),
//     FromGrid (caller input), or Shuffle (random walk from the goal).
//   - Move: the (row, col) of the tile that slides into the blank; legal
//     iff orthogonally adjacent to the blank and in bounds.
//   - Neighbors: up to four successor boards in the fixed
//     right, down, left, up expansion order.
//   - Solvable: inversion-parity test rejecting unreachable boards before
//     any search runs.
//   - Key: a deterministic, collision-free visited-set encoding.
//
// Why
//
//   - A single shared state type keeps the A*, IDA*, and BFS engines
//     API-compatible and their results comparable.
//   - Immutability makes a Board safe to hand to concurrent solver runs;
//     Apply always returns a fresh copy.
//
// Determinism
//
//	PossibleMoves and Neighbors always enumerate directions as
//	right, down, left, up, so equal-priority search nodes are generated
//	in a reproducible order; Shuffle is fully seed-driven.
//
// Complexity (n = board edge)
//
//   - Apply, Neighbors, Key: O(n²) (cell copy)
//   - Solvable:              O(n⁴) (pairwise inversion count)
//   - IsGoal, Equal:         O(n²)
//
// Errors
//
//   - ErrBadSize         for edges outside [2,5].
//   - ErrNonSquare       for ragged input grids.
//   - ErrBadPermutation  for duplicate/missing/out-of-range cells.
//   - ErrIllegalMove     for non-adjacent or out-of-bounds moves.
//   - ErrBadShuffleSteps for negative scramble lengths.
package board
