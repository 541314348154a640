package search

import (
	"github.com/spiresolve/spiresolve/combat"
	"github.com/spiresolve/spiresolve/piles"
)

// Tree owns the node arena, the free-list recycler, the frontier, and
// the terminal set (§4.D). It is not safe for concurrent use, matching
// spec.md §5's single-threaded scheduling model.
type Tree struct {
	Store *piles.Store

	nodes    []Node
	children [][]nodeIndex
	freelist []nodeIndex
	frontier frontierHeap
	terminals []frontierEntry
	sequence int64

	root nodeIndex

	// Counters, per §4.D ("nodes created, nodes reused, nodes expanded").
	Created, Reused, Expanded int

	// MemoryDiscardThreshold gates the §4.F memory policy: once Created
	// exceeds it, a solved subtree's children are dropped as soon as
	// their contribution to the parent is recorded, rather than kept
	// around for report-time traversal. Zero disables the policy.
	MemoryDiscardThreshold int
}

// NewTree constructs a tree whose root holds rootState and puts the
// root on the frontier. It queues nothing itself: Solve pushes the
// generate-battle action (spec.md §4.E's initialization step) before
// calling it, and a root without one is expanded from its own state.
func NewTree(store *piles.Store, rootState combat.State) *Tree {
	t := &Tree{
		Store:    store,
		nodes:    make([]Node, 0, 4096),
		children: make([][]nodeIndex, 0, 4096),
	}
	root := t.alloc()
	t.nodes[root].State = rootState
	t.nodes[root].Parent = nilNode
	t.root = root
	t.insertFrontier(root)
	return t
}

// Root returns the tree's root state, valid after Run has completed.
func (t *Tree) Root() *combat.State { return &t.nodes[t.root].State }

func (t *Tree) alloc() nodeIndex {
	if l := len(t.freelist); l > 0 {
		idx := t.freelist[l-1]
		t.freelist = t.freelist[:l-1]
		t.Reused++
		return idx
	}
	idx := nodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, Node{Parent: nilNode})
	t.children = append(t.children, nil)
	t.Created++
	return idx
}

// free returns idx to the free-list and bumps its generation so any
// stale frontier/terminal entry referencing it is detected as invalid.
func (t *Tree) free(idx nodeIndex) {
	n := &t.nodes[idx]
	gen := n.Generation + 1
	*n = Node{Parent: nilNode, Generation: gen}
	t.children[idx] = t.children[idx][:0]
	t.freelist = append(t.freelist, idx)
}

// CreateChild returns a new node copy-constructed from parent (§4.D):
// its State is parent's State by value (piles are interned handles, so
// this is cheap and safe to share), its Parent pointer set, depth
// incremented. When addToFrontier is true it is ranked and inserted.
func (t *Tree) CreateChild(parent nodeIndex, addToFrontier bool) nodeIndex {
	idx := t.alloc()
	n := &t.nodes[idx]
	n.State = t.nodes[parent].State
	n.Parent = parent
	n.Depth = t.nodes[parent].Depth + 1
	t.children[parent] = append(t.children[parent], idx)
	if addToFrontier {
		t.insertFrontier(idx)
	}
	return idx
}

// DeleteSubtree recursively recycles a subtree (§4.D). When adjustSets
// is true, every contained slot is freed and returned to the recycler
// (any frontier/terminal entry referencing it is invalidated via the
// generation bump); when false (full teardown) the nodes are simply
// abandoned, since there is no tree left to recycle into.
func (t *Tree) DeleteSubtree(idx nodeIndex, adjustSets bool) {
	for _, c := range t.children[idx] {
		t.DeleteSubtree(c, adjustSets)
	}
	if adjustSets {
		t.free(idx)
	}
}

// detachAndDelete removes idx from parent's children list and recycles
// its subtree.
func (t *Tree) detachAndDelete(parent, idx nodeIndex) {
	kids := t.children[parent]
	for i, k := range kids {
		if k == idx {
			kids[i] = kids[len(kids)-1]
			t.children[parent] = kids[:len(kids)-1]
			break
		}
	}
	t.DeleteSubtree(idx, true)
}

// SelectTerminalPath implements §4.D's early-termination collapse: a
// descendant terminal has attained top's max_possible_objective, so
// every sibling along the chain from terminal up to top is pruned and
// each ancestor on the chain is marked solved with the terminal's
// objective.
func (t *Tree) SelectTerminalPath(top, terminal nodeIndex) {
	obj := t.nodes[terminal].State.Objective
	t.nodes[terminal].State.TreeSolved = true

	child := terminal
	for {
		parent := t.nodes[child].Parent
		if !parent.valid() {
			break
		}
		for _, sib := range append([]nodeIndex{}, t.children[parent]...) {
			if sib != child {
				t.detachAndDelete(parent, sib)
			}
		}
		t.children[parent] = []nodeIndex{child}
		t.nodes[parent].State.TreeSolved = true
		t.nodes[parent].State.Objective = obj
		if parent == top {
			break
		}
		child = parent
	}
}
