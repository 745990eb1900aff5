package solver

import "github.com/katalvlaran/npuzzle/board"

// solveBFS runs level-order exploration with a FIFO frontier.
//
// The visited set is populated at enqueue time, not at dequeue, so a
// board can never be queued twice. All moves cost 1, so the first time
// the goal is dequeued its path is a minimum-length solution.
//
// This engine trades memory for simplicity: unlike A*/IDA* it keeps
// every discovered state reachable from the frontier, which grows fast
// on larger boards. That trade-off is deliberate — BFS serves as the
// heuristic-free reference the informed engines are validated against.
func solveBFS(b board.Board, o *Options) (Result, error) {
	nodes := newArena(arenaHint)
	root := nodes.add(searchNode{b: b, parent: noParent})

	queue := make([]int32, 0, arenaHint)
	queue = append(queue, root)
	visited := map[string]bool{b.Key(): true}

	expanded, generated := 0, 0
	var cur searchNode
	for len(queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-o.Ctx.Done():
			return Result{Expanded: expanded, Generated: generated}, o.Ctx.Err()
		default:
		}

		id := queue[0]
		queue = queue[1:]
		cur = *nodes.at(id)

		if cur.b.IsGoal() {
			return Result{
				Moves:     nodes.path(id),
				Status:    StatusSolved,
				Expanded:  expanded,
				Generated: generated,
			}, nil
		}

		expanded++
		o.OnExpand(cur.b, int(cur.g), 0)
		if o.MaxExpansions > 0 && expanded >= o.MaxExpansions {
			return Result{Expanded: expanded, Generated: generated}, ErrExpansionLimit
		}

		for _, step := range cur.b.Neighbors() {
			key := step.Board.Key()
			if visited[key] {
				continue
			}
			visited[key] = true
			generated++
			queue = append(queue, nodes.add(searchNode{
				b:      step.Board,
				move:   step.Move,
				parent: id,
				g:      cur.g + 1,
			}))
		}
	}

	// Unreachable for pre-checked solvable boards; kept as a defensive
	// terminal state.
	return Result{Expanded: expanded, Generated: generated}, ErrSearchExhausted
}
