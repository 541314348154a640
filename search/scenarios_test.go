package search

import (
	"testing"

	"github.com/spiresolve/spiresolve/card"
	"github.com/spiresolve/spiresolve/combat"
	"github.com/spiresolve/spiresolve/monster"
	"github.com/spiresolve/spiresolve/piles"
	"github.com/stretchr/testify/require"
)

// attackNode mirrors test_the_spire.cpp's GetDefaultAttackNode: turn 1
// against a Test Mob that has already rolled its always-attack-for-10
// intent, with hp overriding the template's default 100.
func attackNode(store *piles.Store, hp int) combat.State {
	s := combat.New(100, 0)
	s.Turn = 1
	s.Energy = 3
	mob := monster.NewInstance(monster.TestMob, 100)
	mob.LastIntent = 0
	s.Monsters[0] = mob
	s.Monsters[1] = monster.EmptyInstance
	s.Hand = store.AddCard(piles.Empty, piles.CardID(card.StrikeID))
	s.HP = hp
	return s
}

func solveFrom(store *piles.Store, root combat.State) *Tree {
	t := NewTree(store, root)
	t.Run(nil) // no PendingGenerateBattle in these roots, so no fight lookup occurs
	return t
}

func TestDoMaxDamageOnDeath(t *testing.T) {
	store := piles.New()
	tree := solveFrom(store, attackNode(store, 10))

	root := tree.Root()
	require.True(t, root.TreeSolved)

	terms := tree.Terminals()
	require.Len(t, terms, 1)
	require.Equal(t, 0, terms[0].HP)
	require.Equal(t, 100-6, terms[0].RemainingEnemyHP)
}

func TestDoMaxDamageOnDeathAcrossMultipleTurns(t *testing.T) {
	store := piles.New()
	tree := solveFrom(store, attackNode(store, 30))

	root := tree.Root()
	require.True(t, root.TreeSolved)

	terms := tree.Terminals()
	require.Len(t, terms, 1)
	require.Equal(t, 0, terms[0].HP)
	require.Equal(t, 100-6*3, terms[0].RemainingEnemyHP)
}

// twelveHPMobNode builds a root against a 12 HP Test Mob with a
// caller-chosen hand and draw pile, mirroring test_the_spire.cpp's
// TestOffering1/TestOffering2 node construction.
func twelveHPMobNode(store *piles.Store, hand, draw []card.ID) combat.State {
	s := combat.New(100, 0)
	s.Turn = 1
	s.Energy = 3
	mob := monster.NewInstance(monster.TestMob, 12)
	mob.LastIntent = 0
	s.Monsters[0] = mob
	s.Monsters[1] = monster.EmptyInstance
	for _, id := range hand {
		s.Hand = store.AddCard(s.Hand, piles.CardID(id))
	}
	for _, id := range draw {
		s.Draw = store.AddCard(s.Draw, piles.CardID(id))
	}
	return s
}

func TestOfferingNotPlayedWhenUnneeded(t *testing.T) {
	store := piles.New()
	hand := []card.ID{card.OfferingID, card.StrikeID, card.StrikeID}
	draw := repeatCard(card.WoundID, 5)
	tree := solveFrom(store, twelveHPMobNode(store, hand, draw))

	require.Equal(t, 100.0, tree.Root().Objective)
}

func TestOfferingPlayedWhenItEnablesLethal(t *testing.T) {
	store := piles.New()
	hand := []card.ID{card.OfferingID, card.WoundID, card.WoundID}
	draw := repeatCard(card.StrikeID, 5)
	tree := solveFrom(store, twelveHPMobNode(store, hand, draw))

	require.InDelta(t, 94, tree.Root().Objective, 0)
}

func repeatCard(id card.ID, n int) []card.ID {
	out := make([]card.ID, n)
	for i := range out {
		out[i] = id
	}
	return out
}
