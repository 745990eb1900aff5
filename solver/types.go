// Package solver defines algorithm selection, tunable options, result
// types, and sentinel errors for the sliding-tile search engines.
package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/npuzzle/board"
)

// Sentinel errors for solver execution.
var (
	// ErrUnsolvable indicates a structurally valid board whose inversion
	// parity proves the goal is unreachable. Reported before any node is
	// expanded; never retried.
	ErrUnsolvable = errors.New("solver: board is not solvable")

	// ErrSearchExhausted indicates a solvable board whose search space was
	// fully explored without reaching the goal. This cannot happen with a
	// correct engine; treat it as a fatal assertion, not a runtime outcome.
	ErrSearchExhausted = errors.New("solver: search space exhausted without reaching goal")

	// ErrExpansionLimit indicates the WithMaxExpansions cap was hit before
	// a solution was found.
	ErrExpansionLimit = errors.New("solver: node expansion limit reached")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the
	// supported set.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Algorithm selects the search engine used by Solve.
type Algorithm int

const (
	// AStar is priority-queue best-first search ordered by f = g + h.
	AStar Algorithm = iota
	// IDAStar is iterative-deepening depth-first search with an f-bound.
	IDAStar
	// BFS is unweighted level-order shortest-path search.
	BFS
)

// String returns the conventional name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "A*"
	case IDAStar:
		return "IDA*"
	case BFS:
		return "BFS"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Status classifies the outcome of a Solve call.
type Status int

const (
	// StatusNoSolution means no move sequence was produced; the paired
	// error (ErrUnsolvable, ErrSearchExhausted, ErrExpansionLimit, or a
	// context error) carries the reason.
	StatusNoSolution Status = iota
	// StatusSolved means Moves transforms the input into the goal.
	StatusSolved
	// StatusAlreadySolved means the input already equals the goal;
	// Moves is empty.
	StatusAlreadySolved
)

// Result holds the outcome of one Solve invocation.
type Result struct {
	// Moves is the solution, earliest move first. Empty (non-nil) for
	// StatusAlreadySolved; nil for StatusNoSolution.
	Moves []board.Move

	// Status classifies the outcome.
	Status Status

	// Expanded counts nodes taken off the frontier and expanded.
	// For IDA* it accumulates across all deepening iterations.
	Expanded int

	// Generated counts successor boards created during the search.
	Generated int
}

// Option configures Solve behavior via functional arguments.
// If an Option is invalid (e.g. a negative expansion cap), it is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a Solve call.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per node
	// expansion. Its error is propagated as-is, so callers can tell
	// context.Canceled from context.DeadlineExceeded.
	Ctx context.Context

	// Heuristic selects the lower-bound estimate used by A*.
	// IDA* always uses Manhattan distance and BFS uses none; see
	// WithHeuristic.
	Heuristic Heuristic

	// MaxExpansions, if > 0, caps the number of node expansions before
	// the engine gives up with ErrExpansionLimit. 0 disables the cap.
	MaxExpansions int

	// OnExpand is called once per node expansion with the board being
	// expanded, its path cost g, and its heuristic estimate h
	// (0 under BFS).
	OnExpand func(b board.Board, g, h int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Manhattan heuristic
//   - no expansion cap
//   - no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Heuristic:     Manhattan,
		MaxExpansions: 0,
		OnExpand:      func(board.Board, int, int) {},
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic selects the admissible heuristic used by the A* engine.
// Unknown values are an option violation. The choice only affects A*:
// IDA* sticks to Manhattan distance and BFS needs no estimate, but both
// accept the option so callers can reuse one option set across engines.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h < Manhattan || h > LinearConflict {
			o.err = fmt.Errorf("%w: unknown heuristic %d", ErrOptionViolation, int(h))

			return
		}
		o.Heuristic = h
	}
}

// WithMaxExpansions caps the number of node expansions.
//
//	n > 0:  give up with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback invoked once per node expansion.
func WithOnExpand(fn func(b board.Board, g, h int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
