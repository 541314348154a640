package combat

import (
	"testing"

	"github.com/spiresolve/spiresolve/card"
	"github.com/spiresolve/spiresolve/monster"
	"github.com/spiresolve/spiresolve/piles"
	"github.com/stretchr/testify/require"
)

// defaultAttackNode mirrors test_the_spire.cpp's GetDefaultAttackNode:
// a fresh turn 1 against a 100 HP Test Mob that has already rolled its
// always-attack-for-10 intent, hand holding a single Strike.
func defaultAttackNode(store *piles.Store) State {
	s := New(100, 0)
	s.Turn = 1
	s.Energy = 3
	mob := monster.NewInstance(monster.TestMob, 100)
	mob.LastIntent = 0
	s.Monsters[0] = mob
	s.Monsters[1] = monster.EmptyInstance
	s.Hand = store.AddCard(piles.Empty, piles.CardID(card.StrikeID))
	return s
}

func TestDefaultAttackNodeEndTurn(t *testing.T) {
	store := piles.New()
	s := defaultAttackNode(store)
	EndTurn(&s, store)
	require.Equal(t, 90, s.HP)
}

func TestMetallicizeGrantsBlockBeforeEnemyAttack(t *testing.T) {
	store := piles.New()
	s := defaultAttackNode(store)
	s.Hand = store.AddCard(s.Hand, piles.CardID(card.MetallicizeID))
	PlayCard(&s, store, card.MetallicizeID, -1)
	EndTurn(&s, store)
	require.Equal(t, 93, s.HP)
}

func TestWhirlwindSpendsAllEnergyAcrossEveryHit(t *testing.T) {
	store := piles.New()
	s := defaultAttackNode(store)
	s.Hand = store.AddCard(s.Hand, piles.CardID(card.WhirlwindID))
	require.Equal(t, 3, s.Energy)
	PlayCard(&s, store, card.WhirlwindID, -1)
	require.Equal(t, 100-5*3, s.Monsters[0].HP)
	require.Equal(t, 0, s.Energy)
}

func TestRageGrantsBlockOnEveryAttackPlayedThatTurn(t *testing.T) {
	store := piles.New()
	s := defaultAttackNode(store)
	s.Hand = store.AddCard(s.Hand, piles.CardID(card.RageID))
	s.Hand = store.AddCard(s.Hand, piles.CardID(card.CleaveID))

	PlayCard(&s, store, card.RageID, -1)
	require.Equal(t, 0, s.Block)

	PlayCard(&s, store, card.StrikeID, 0)
	require.Equal(t, 3, s.Block)

	PlayCard(&s, store, card.CleaveID, -1)
	require.Equal(t, 6, s.Block)
}

func TestUpgradedDeckDominatesUnupgraded(t *testing.T) {
	store := piles.New()
	unupgraded := store.AddCard(piles.Empty, piles.CardID(card.StrikeID))
	upgraded := store.AddCard(piles.Empty, piles.CardID(card.StrikePlusID))

	lookup := func(id piles.CardID) (piles.CardID, bool) {
		up, ok := card.UpgradeOf(card.ID(id))
		return piles.CardID(up), ok
	}
	require.True(t, store.DeckWorseOrEqual(unupgraded, upgraded, lookup))
	require.False(t, store.DeckWorseOrEqual(upgraded, unupgraded, lookup))
	require.True(t, store.DeckWorseOrEqual(unupgraded, unupgraded, lookup))
	require.True(t, store.DeckWorseOrEqual(upgraded, upgraded, lookup))
}
