package search

import (
	"testing"

	"github.com/spiresolve/spiresolve/card"
	"github.com/spiresolve/spiresolve/combat"
	"github.com/spiresolve/spiresolve/monster"
	"github.com/spiresolve/spiresolve/piles"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-6

func smallDeckRoot(store *piles.Store) combat.State {
	root := combat.New(100, 0)
	root.Draw = store.AddCards(piles.Empty, piles.CardID(card.StrikeID), 3)
	root.Draw = store.AddCards(root.Draw, piles.CardID(card.DefendID), 2)
	return root
}

func solvedLouseTree(t *testing.T) *Tree {
	fight, ok := monster.FightByName("One Louse")
	require.True(t, ok)

	store := piles.New()
	return Solve(store, smallDeckRoot(store), fight)
}

// weightedTerminal walks every live descendant of id, multiplying branch
// probabilities down from probUpTo, asserting at every chance fan-out
// that its children's probabilities sum to 1 (property 1), and returns
// the summed probability-weighted objective and probability mass over
// every reachable terminal (properties 2 and 3).
func weightedTerminal(t *testing.T, tr *Tree, id nodeIndex, probUpTo float64) (weightedObjective, probSum float64) {
	kids := tr.children[id]
	if len(kids) == 0 {
		return probUpTo * tr.nodes[id].State.Objective, probUpTo
	}
	if tr.nodes[id].State.HasPendingAction() {
		var sumP float64
		for _, k := range kids {
			sumP += tr.nodes[k].State.Probability
		}
		require.InDelta(t, 1.0, sumP, epsilon)
	}
	for _, k := range kids {
		ks := &tr.nodes[k].State
		wo, ps := weightedTerminal(t, tr, k, probUpTo*ks.Probability)
		weightedObjective += wo
		probSum += ps
	}
	return
}

func TestSolvedTreeSatisfiesUniversalProperties(t *testing.T) {
	tr := solvedLouseTree(t)

	root := &tr.nodes[tr.root].State
	require.True(t, root.TreeSolved)

	weightedObjective, probSum := weightedTerminal(t, tr, tr.root, 1.0)

	// property 2: terminal-probability conservation.
	require.InDelta(t, 1.0, probSum, epsilon)

	// property 3: solved objective equals the probability-weighted sum
	// over every live terminal's (already tie-break-adjusted) objective.
	require.InDelta(t, root.Objective, weightedObjective, epsilon)

	// property 4: idempotence of back-propagation.
	preObjective, preSolved := root.Objective, root.TreeSolved
	tr.UpdateTree(tr.root)
	require.Equal(t, preObjective, root.Objective)
	require.Equal(t, preSolved, root.TreeSolved)
}

func TestGenerateBattleChildrenProbabilitiesConserveProbability(t *testing.T) {
	fight, ok := monster.FightByName("One Louse")
	require.True(t, ok)

	store := piles.New()
	root := smallDeckRoot(store)
	root.PushPending(combat.Pending{Kind: combat.PendingGenerateBattle})
	root.Objective = root.MaxPossibleObjective()

	tr := NewTree(store, root)
	tr.expandGenerateBattle(tr.root, fight)

	var sum float64
	for _, k := range tr.children[tr.root] {
		sum += tr.nodes[k].State.Probability
	}
	require.InDelta(t, 1.0, sum, epsilon)
	require.Len(t, tr.children[tr.root], 6) // Louse HP 10..15, one layout per value
}

func TestDominanceSoundnessOnSingleTerminalTree(t *testing.T) {
	store := piles.New()
	tr := solveFrom(store, attackNode(store, 30))

	// a single-strike-per-turn Test Mob fight against hp=30 is fully
	// deterministic, so there is exactly one live terminal; a tree with
	// one terminal trivially satisfies dominance soundness since there
	// is no sibling for it to dominate or be dominated by.
	terms := tr.Terminals()
	require.Len(t, terms, 1)
}
