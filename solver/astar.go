package solver

import (
	"container/heap"

	"github.com/katalvlaran/npuzzle/board"
)

// arenaHint is the initial node-pool capacity for arena-backed engines.
const arenaHint = 1 << 10

// openItem is a frontier entry in the A* priority queue. It references
// its search node by arena index and caches the priority components.
type openItem struct {
	id  int32 // arena index
	f   int32 // g + h
	seq int64 // insertion order, breaks f-ties deterministically
}

// openPQ is a min-heap of openItem ordered by f ascending, with ties
// broken by insertion order so equal-priority nodes pop in the order
// they were generated. Duplicate board entries are handled lazily: a
// stale entry is skipped on pop when its board was already finalized.
type openPQ []openItem

func (pq openPQ) Len() int { return len(pq) }
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(openItem)) }
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// solveAStar runs best-first search ordered by f = g + h.
//
// Invariants:
//   - closed holds board keys whose shortest g is final; a closed board
//     is never re-expanded.
//   - bestG holds the lowest g at which each open board was queued; a
//     candidate with bestG[key] ≤ g is skipped, so a better existing
//     path is never regressed to a worse one (no decrease-key needed).
//
// Complexity: O(N log N) time and O(N) space in the number of distinct
// states touched; the admissible, consistent heuristic keeps N far below
// the raw state count on typical boards.
func solveAStar(b board.Board, e *evaluator, o *Options) (Result, error) {
	nodes := newArena(arenaHint)
	root := nodes.add(searchNode{b: b, parent: noParent})

	pq := make(openPQ, 0, arenaHint)
	heap.Init(&pq)
	var seq int64
	h0 := e.estimate(b, o.Heuristic)
	heap.Push(&pq, openItem{id: root, f: int32(h0), seq: seq})
	seq++

	closed := make(map[string]bool, arenaHint)
	bestG := map[string]int32{b.Key(): 0}

	expanded, generated := 0, 0
	var cur searchNode
	var key string
	for pq.Len() > 0 {
		// cancellation check (once per expansion)
		select {
		case <-o.Ctx.Done():
			return Result{Expanded: expanded, Generated: generated}, o.Ctx.Err()
		default:
		}

		item := heap.Pop(&pq).(openItem)
		cur = *nodes.at(item.id)
		key = cur.b.Key()
		if closed[key] {
			continue // stale duplicate entry
		}

		if cur.b.IsGoal() {
			return Result{
				Moves:     nodes.path(item.id),
				Status:    StatusSolved,
				Expanded:  expanded,
				Generated: generated,
			}, nil
		}

		closed[key] = true
		expanded++
		o.OnExpand(cur.b, int(cur.g), int(item.f-cur.g))
		if o.MaxExpansions > 0 && expanded >= o.MaxExpansions {
			return Result{Expanded: expanded, Generated: generated}, ErrExpansionLimit
		}

		for _, step := range cur.b.Neighbors() {
			key = step.Board.Key()
			if closed[key] {
				continue
			}
			g := cur.g + 1
			if prev, seen := bestG[key]; seen && prev <= g {
				continue // an equal-or-better path is already queued
			}
			bestG[key] = g
			generated++
			id := nodes.add(searchNode{b: step.Board, move: step.Move, parent: item.id, g: g})
			h := e.estimate(step.Board, o.Heuristic)
			heap.Push(&pq, openItem{id: id, f: g + int32(h), seq: seq})
			seq++
		}
	}

	// Unreachable for pre-checked solvable boards; kept as a defensive
	// terminal state.
	return Result{Expanded: expanded, Generated: generated}, ErrSearchExhausted
}
