// Package search implements the expectimax-with-dominance-pruning tree
// (§4.D-F): an index-addressed node arena with a recycler, a frontier
// ordered by a ranking heuristic, chance/decision expansion, dominance
// pruning of candidate endings, and objective back-propagation. It
// treats combat.State as an opaque step function, exactly the split
// spec.md draws between the engine and its collaborators.
package search

import "github.com/spiresolve/spiresolve/combat"

// nodeIndex addresses a slot in the tree's arena. It is the Go analogue
// of the teacher's Naughty int-indexed node handle (mcts/naughty.go):
// a plain integer rather than a pointer, so slots are stable across
// slice growth and trivially recycled.
type nodeIndex int32

const nilNode nodeIndex = -1

func (n nodeIndex) valid() bool { return n >= 0 }

// Node is one arena slot. Generation increments every time the slot is
// freed and reused, so a stale frontier or terminal-set entry for a
// previous occupant is detected and skipped rather than silently
// operating on the wrong state (§9's "generation counter catches stale
// references").
type Node struct {
	State      combat.State
	Parent     nodeIndex
	Depth      int
	Generation int32
}
