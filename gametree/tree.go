// Package gametree implements the per-worker MCTS search tree: a rooted,
// move-keyed N-ary tree navigated by a single cursor rather than recursion,
// so that selection, expansion and back-propagation can all operate on the
// same "current node" concept.
//
// Nodes live in an arena (a slice) and reference each other by index rather
// than by pointer. This sidesteps the parent↔child reference cycle a
// pointer-based tree would need (child owned by parent, parent borrowed by
// child) and lets the whole tree be discarded by dropping the slice.
package gametree

import "github.com/nvassiliou/hax/hexboard"

// Stats are the four running counters a search tree node accumulates.
type Stats struct {
	N  float64 // playouts through this node
	W  float64 // wins for the side whose move labels this edge
	NR float64 // RAVE playouts
	WR float64 // RAVE wins
}

type node struct {
	stats    Stats
	parent   int
	children map[hexboard.Move]int
}

// Tree is a rooted, move-keyed tree with a single navigation cursor. It is
// not safe for concurrent use; each MCTS worker owns one.
type Tree struct {
	nodes  []node
	cursor int
}

// New returns a tree containing only a zero-statistics root, cursor at
// the root.
func New() *Tree {
	t := &Tree{
		nodes: make([]node, 0, 64),
	}
	t.nodes = append(t.nodes, node{parent: -1, children: make(map[hexboard.Move]int)})
	return t
}

// Data returns a pointer to the current node's stats, mutable in place.
func (t *Tree) Data() *Stats {
	return &t.nodes[t.cursor].stats
}

// Size returns the number of children of the current node.
func (t *Tree) Size() int {
	return len(t.nodes[t.cursor].children)
}

// HasChild reports whether the current node has a child keyed by k.
func (t *Tree) HasChild(k hexboard.Move) bool {
	_, ok := t.nodes[t.cursor].children[k]
	return ok
}

// Child returns a pointer to the stats of the child keyed by k, without
// moving the cursor. Panics if there is no such child.
func (t *Tree) Child(k hexboard.Move) *Stats {
	idx, ok := t.nodes[t.cursor].children[k]
	if !ok {
		panic("gametree: Child of nonexistent key")
	}
	return &t.nodes[idx].stats
}

// ChildKeys returns the move keys of the current node's children, in no
// particular order. Callers that need determinism sort the result.
func (t *Tree) ChildKeys() []hexboard.Move {
	children := t.nodes[t.cursor].children
	keys := make([]hexboard.Move, 0, len(children))
	for k := range children {
		keys = append(keys, k)
	}
	return keys
}

// Insert creates a fresh zero-statistics child keyed by k under the
// current node. It does not move the cursor. Panics if k is already a
// child.
func (t *Tree) Insert(k hexboard.Move) {
	if t.HasChild(k) {
		panic("gametree: Insert of duplicate key")
	}
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{parent: t.cursor, children: make(map[hexboard.Move]int)})
	t.nodes[t.cursor].children[k] = idx
}

// Descend moves the cursor to the child keyed by k. Panics if there is no
// such child.
func (t *Tree) Descend(k hexboard.Move) {
	idx, ok := t.nodes[t.cursor].children[k]
	if !ok {
		panic("gametree: Descend into nonexistent key")
	}
	t.cursor = idx
}

// Ascend moves the cursor to its parent. Panics at the root.
func (t *Tree) Ascend() {
	if t.IsRoot() {
		panic("gametree: Ascend at root")
	}
	t.cursor = t.nodes[t.cursor].parent
}

// Reset moves the cursor back to the root.
func (t *Tree) Reset() {
	t.cursor = 0
}

// IsRoot reports whether the cursor is at the root.
func (t *Tree) IsRoot() bool {
	return t.cursor == 0
}

// IsLeaf reports whether the current node has no children.
func (t *Tree) IsLeaf() bool {
	return len(t.nodes[t.cursor].children) == 0
}
