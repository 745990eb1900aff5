package solver

import (
	"math"

	"github.com/katalvlaran/npuzzle/board"
)

// dfsFrame is one depth-first step on the explicit IDA* stack. The stack
// itself is the current path: frames above the root carry the move that
// produced them, so the solution is read straight off the stack when the
// goal is reached. An explicit stack (rather than recursion over a shared
// path list) keeps the search independent of call-stack depth limits.
type dfsFrame struct {
	b         board.Board
	g         int
	move      board.Move     // move producing b; unset for the root
	prevBlank board.Position // parent's blank; the move that would undo us
	isRoot    bool
	entered   bool
	cands     []board.Move // legal moves, fixed order; filled on entry
	next      int          // index of the next candidate to try
}

// solveIDAStar runs iterative-deepening A*.
//
// Each iteration is a depth-first search bounded by f = g + h: branches
// with f above the bound are pruned and the minimal overflow becomes the
// next bound. The only cycle avoidance is refusing to immediately undo
// the previous move — IDA*'s memory advantage depends on tracking nothing
// beyond the current path, so no global visited set is kept.
//
// The bound starts at h(root) and, with a consistent Manhattan heuristic
// and unit move costs, the first iteration that reaches the goal does so
// via a minimum-length path.
//
// Complexity: memory O(d) in the solution depth d; time grows with the
// bound but re-expands shallow levels cheaply relative to the deepest one.
func solveIDAStar(b board.Board, e *evaluator, o *Options) (Result, error) {
	bound := e.estimate(b, Manhattan)
	expanded, generated := 0, 0

	for {
		nextBound := math.MaxInt
		stack := make([]dfsFrame, 0, bound+1)
		stack = append(stack, dfsFrame{b: b, isRoot: true})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]

			if !top.entered {
				top.entered = true
				f := top.g + e.estimate(top.b, Manhattan)
				if f > bound {
					if f < nextBound {
						nextBound = f
					}
					stack = stack[:len(stack)-1]

					continue
				}
				if top.b.IsGoal() {
					return Result{
						Moves:     pathFromStack(stack),
						Status:    StatusSolved,
						Expanded:  expanded,
						Generated: generated,
					}, nil
				}

				// cancellation check (once per expansion)
				select {
				case <-o.Ctx.Done():
					return Result{Expanded: expanded, Generated: generated}, o.Ctx.Err()
				default:
				}
				expanded++
				o.OnExpand(top.b, top.g, f-top.g)
				if o.MaxExpansions > 0 && expanded >= o.MaxExpansions {
					return Result{Expanded: expanded, Generated: generated}, ErrExpansionLimit
				}
				top.cands = top.b.PossibleMoves()
			}

			if top.next >= len(top.cands) {
				stack = stack[:len(stack)-1] // all branches tried; backtrack

				continue
			}
			m := top.cands[top.next]
			top.next++
			if !top.isRoot && m == top.prevBlank {
				continue // would undo the previous move
			}

			// Apply cannot fail: m came from PossibleMoves.
			child, _ := top.b.Apply(m)
			generated++
			prev := top.b.BlankPosition()
			g := top.g + 1
			stack = append(stack, dfsFrame{b: child, g: g, move: m, prevBlank: prev})
		}

		if nextBound == math.MaxInt {
			// No branch overflowed the bound and the goal was never seen:
			// the reachable space is exhausted. Unreachable for
			// pre-checked solvable boards; kept as a defensive terminal.
			return Result{Expanded: expanded, Generated: generated}, ErrSearchExhausted
		}
		bound = nextBound
	}
}

// pathFromStack collects the moves carried by the non-root frames of the
// current DFS path, earliest move first.
func pathFromStack(stack []dfsFrame) []board.Move {
	moves := make([]board.Move, 0, len(stack)-1)
	for i := 1; i < len(stack); i++ {
		moves = append(moves, stack[i].move)
	}

	return moves
}
