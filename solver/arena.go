package solver

import "github.com/katalvlaran/npuzzle/board"

// noParent marks the root node of a search tree.
const noParent int32 = -1

// searchNode is one entry in a per-solve node arena. Parent links are
// arena indices rather than pointers, so the parent chain is a plain
// index walk and the whole arena is dropped in one piece when the engine
// returns.
type searchNode struct {
	b      board.Board
	move   board.Move // move producing b from its parent; zero for the root
	parent int32
	g      int32
}

// arena is an append-only pool of search nodes owned by one engine run.
type arena struct {
	nodes []searchNode
}

// newArena preallocates capacity for hint nodes.
func newArena(hint int) *arena {
	return &arena{nodes: make([]searchNode, 0, hint)}
}

// add appends a node and returns its index.
func (a *arena) add(n searchNode) int32 {
	a.nodes = append(a.nodes, n)

	return int32(len(a.nodes) - 1)
}

// at returns a pointer into the pool; valid until the next add.
func (a *arena) at(idx int32) *searchNode { return &a.nodes[idx] }

// path reconstructs the move sequence from the root to idx by walking
// parent indices and reversing, earliest move first.
func (a *arena) path(idx int32) []board.Move {
	moves := make([]board.Move, 0, a.nodes[idx].g)
	for cur := idx; a.nodes[cur].parent != noParent; cur = a.nodes[cur].parent {
		moves = append(moves, a.nodes[cur].move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves
}
