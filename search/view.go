package search

import "github.com/spiresolve/spiresolve/combat"

// NodeID is an opaque, report-safe handle onto a tree node: unlike
// nodeIndex it carries no generation/recycling semantics the report
// package has no business touching.
type NodeID int32

// RootID returns the tree's root node.
func (t *Tree) RootID() NodeID { return NodeID(t.root) }

// State returns the combat state held at id.
func (t *Tree) State(id NodeID) *combat.State { return &t.nodes[nodeIndex(id)].State }

// ParentAction returns id's parent action, i.e. the PlayerAction/chance step
// that produced it from its tree parent.
func (t *Tree) ParentAction(id NodeID) combat.PlayerAction {
	return t.nodes[nodeIndex(id)].State.Parent
}

// ChildrenOf returns id's surviving children in the solved tree.
func (t *Tree) ChildrenOf(id NodeID) []NodeID {
	kids := t.children[nodeIndex(id)]
	out := make([]NodeID, len(kids))
	for i, k := range kids {
		out[i] = NodeID(k)
	}
	return out
}

// LiveNodeCount returns the number of node slots currently in use
// (allocated minus recycled), for the §4.G printable-tree ceiling gate.
func (t *Tree) LiveNodeCount() int {
	return len(t.nodes) - len(t.freelist)
}
