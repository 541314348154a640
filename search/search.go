package search

import (
	"github.com/spiresolve/spiresolve/combat"
	"github.com/spiresolve/spiresolve/monster"
	"github.com/spiresolve/spiresolve/piles"
)

// Solve constructs a tree rooted at rootState, queues the opening
// generate-battle step, and runs the expansion/back-propagation loop
// to completion (§4.E's "loop until the frontier is empty"). The
// caller (cli) builds rootState via preset resolution before calling.
func Solve(store *piles.Store, rootState combat.State, fight *monster.Fight) *Tree {
	rootState.PushPending(combat.Pending{Kind: combat.PendingGenerateBattle})
	rootState.Objective = rootState.MaxPossibleObjective()
	rootState.Probability = 1

	t := NewTree(store, rootState)
	t.Run(fight)
	return t
}
