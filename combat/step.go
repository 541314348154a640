package combat

import (
	"sync"

	"github.com/spiresolve/spiresolve/buff"
	"github.com/spiresolve/spiresolve/card"
	"github.com/spiresolve/spiresolve/monster"
	"github.com/spiresolve/spiresolve/piles"
	"github.com/spiresolve/spiresolve/xlog"
)

// StartBattle turns a freshly-created root child into turn 1 (§4.C):
// copies the enemy layout in, grants starting energy/block/buffs from
// owned relics, and queues the opening draw and intent roll as pending
// chance actions. s.Draw must already hold the starting deck.
func StartBattle(s *State, layout []monster.Instance) {
	for i := range s.Monsters {
		s.Monsters[i] = monster.EmptyInstance
	}
	copy(s.Monsters[:], layout)

	s.Turn = 1
	s.Energy = 3
	s.Block = 0

	if s.Relics.Has(card.RelicAnchor) {
		s.Block = 10
	}
	if s.Relics.Has(card.RelicVajra) {
		s.Buffs.Add(buff.Strength, 1)
	}
	if s.Relics.Has(card.RelicOddlySmoothStone) {
		s.Buffs.Add(buff.Dexterity, 1)
	}

	drawCount := 5
	if s.Relics.Has(card.RelicBagOfPreparation) {
		drawCount += 2
	}
	s.PushPending(Pending{Kind: PendingDrawCards, N: drawCount})
	s.PushPending(Pending{Kind: PendingGenerateIntents})
}

// IntentOutcome is one Cartesian-product combination of per-monster
// intent choices, with the combined probability (§4.E generate-intents).
type IntentOutcome struct {
	Probability float64
	IntentIdx   [MaxMonsters]int // -1 for empty/dead slots
}

// GenerateIntents enumerates the joint intent-choice distribution
// across every living enemy (§4.C). Deterministic enemies contribute a
// single-outcome factor, so a fight of all-deterministic enemies
// collapses to exactly one outcome with probability 1.
func GenerateIntents(s *State) []IntentOutcome {
	outcomes := []IntentOutcome{{Probability: 1, IntentIdx: [MaxMonsters]int{-1, -1}}}
	for i := range s.Monsters {
		m := &s.Monsters[i]
		if !m.Alive() {
			continue
		}
		choices := m.Template().ChooseIntent(m, s.Turn)
		next := make([]IntentOutcome, 0, len(outcomes)*len(choices))
		for _, o := range outcomes {
			for _, c := range choices {
				o2 := o
				o2.Probability = o.Probability * c.Probability
				o2.IntentIdx[i] = c.IntentIdx
				next = append(next, o2)
			}
		}
		outcomes = next
	}
	return outcomes
}

// ApplyIntents records a chosen IntentOutcome into each enemy's recent
// intent history (§3 "recent-intent history"); the intent itself
// executes later, at EndTurn.
func ApplyIntents(s *State, outcome IntentOutcome) {
	for i := range s.Monsters {
		if outcome.IntentIdx[i] < 0 {
			continue
		}
		s.Monsters[i].RecordIntent(outcome.IntentIdx[i])
	}
}

var scryWarnOnce sync.Once

// PlayCard deducts energy and applies c's ordered action list (§4.C).
// It does not touch the hand/discard/exhaust piles — the caller (the
// search engine's decision enumeration, §4.E) removes the played card
// from hand and files it to exhaust or discard per its flags, since
// that bookkeeping is about tree-branch construction, not card effects.
func PlayCard(s *State, store *piles.Store, id card.ID, target int) {
	c := card.Get(id)

	var xValue int
	if c.Flags.XCost {
		xValue = s.Energy
		s.Energy = 0
	} else {
		s.Energy -= c.BaseCost
	}

	s.LastCardAttack = c.Flags.Attack
	s.LastCardSkill = c.Flags.Skill

	for _, act := range c.Actions {
		if act.Type == card.ActionNone {
			continue
		}
		applyCardAction(s, store, act, target, xValue)
		if s.BattleDone {
			return
		}
	}

	if c.Flags.Attack {
		if rage := s.Buffs.Get(buff.Rage); rage > 0 {
			s.AddBlock(int(rage))
		}
	}
}

func applyCardAction(s *State, store *piles.Store, act card.Action, target, xValue int) {
	switch act.Type {
	case card.ActionAttack:
		s.AttackEnemy(target, act.Arg0)
	case card.ActionAttackAll:
		for i := range s.Monsters {
			if s.Monsters[i].Alive() {
				s.AttackEnemy(i, act.Arg0)
			}
		}
	case card.ActionAttackWhirlwind:
		for hit := 0; hit < xValue; hit++ {
			for i := range s.Monsters {
				if s.Monsters[i].Alive() {
					s.AttackEnemy(i, act.Arg0)
				}
			}
		}
	case card.ActionBlock:
		s.AddBlock(act.Arg0)
	case card.ActionBuffSelf:
		s.Buffs.Add(buff.Kind(act.Arg0), int16(act.Arg1))
	case card.ActionDebuffOne:
		if target >= 0 && s.Monsters[target].Alive() {
			s.Monsters[target].Buffs.Add(buff.Kind(act.Arg0), int16(act.Arg1))
		}
	case card.ActionDebuffAll:
		for i := range s.Monsters {
			if s.Monsters[i].Alive() {
				s.Monsters[i].Buffs.Add(buff.Kind(act.Arg0), int16(act.Arg1))
			}
		}
	case card.ActionLoseHP:
		s.HP -= act.Arg0
		if s.HP <= 0 {
			s.finalizeObjective()
		}
	case card.ActionGainEnergy:
		s.Energy += act.Arg0
	case card.ActionDrawCards:
		if s.NPending < MaxPending {
			s.PushPending(Pending{Kind: PendingDrawCards, N: act.Arg0})
		}
	case card.ActionAddToDraw:
		s.Draw = store.AddCards(s.Draw, piles.CardID(act.Arg0), act.Arg1)
	case card.ActionAddToDiscard:
		s.Discard = store.AddCards(s.Discard, piles.CardID(act.Arg0), act.Arg1)
	case card.ActionAddToHand:
		s.Hand = store.AddCards(s.Hand, piles.CardID(act.Arg0), act.Arg1)
	case card.ActionHeal:
		s.Heal(act.Arg0)
	case card.ActionUpgradeCardInHand:
		// target holds the chosen hand card's id (§4.E cardTargets'
		// TargetsHandCard enumeration), falling back to the fixed card
		// baked into the definition when the card is untargeted.
		targetID := card.ID(act.Arg0)
		if target >= 0 {
			targetID = card.ID(target)
		}
		if up, ok := card.UpgradeOf(targetID); ok && store.CountCard(s.Hand, piles.CardID(targetID)) > 0 {
			s.Hand = store.RemoveCard(s.Hand, piles.CardID(targetID))
			s.Hand = store.AddCard(s.Hand, piles.CardID(up))
		}
	case card.ActionScry:
		scryWarnOnce.Do(func() {
			xlog.Warn("scry-style draw-pile lookahead is not modeled; treating as a no-op")
		})
	}
}

// cycleHandAtEndOfTurn exhausts ethereal hand cards, then discards
// every remaining hand card except those flagged Retain (§4.C).
func cycleHandAtEndOfTurn(s *State, store *piles.Store) {
	var kept piles.Handle
	for _, p := range store.Pairs(s.Hand) {
		c := card.Get(card.ID(p.ID))
		switch {
		case c.Flags.Ethereal:
			s.Exhaust = store.AddCards(s.Exhaust, p.ID, p.Count)
		case c.Flags.Retain:
			kept = store.AddCards(kept, p.ID, p.Count)
		default:
			s.Discard = store.AddCards(s.Discard, p.ID, p.Count)
		}
	}
	s.Hand = kept
}

// EndTurn resolves end-of-turn passives, the enemy turn, buff decay,
// and next-turn setup (§4.C).
func EndTurn(s *State, store *piles.Store) {
	cycleHandAtEndOfTurn(s, store)

	if metal := s.Buffs.Get(buff.Metallicize); metal > 0 {
		s.AddBlock(int(metal))
	}
	if loss, dmg := s.Buffs.Get(buff.CombustHPLoss), s.Buffs.Get(buff.CombustDamage); dmg > 0 {
		s.HP -= int(loss)
		if s.HP <= 0 {
			s.finalizeObjective()
		}
		if !s.BattleDone {
			for i := range s.Monsters {
				if s.Monsters[i].Alive() {
					s.AttackEnemy(i, int(dmg))
				}
			}
		}
	}
	if s.BattleDone {
		return
	}
	if s.Relics.Has(card.RelicOrichalcum) && !s.GainedBlockThisTurn {
		s.AddBlock(6)
	}
	s.GainedBlockThisTurn = false

	for i := range s.Monsters {
		m := &s.Monsters[i]
		if !m.Alive() {
			continue
		}
		if p := m.Buffs.Get(buff.Poison); p > 0 {
			m.TakeDamage(int(p), false)
			m.Buffs.Add(buff.Poison, -1)
		}
	}
	if !s.MobsAlive() {
		s.finalizeObjective()
		return
	}

	for i := range s.Monsters {
		m := &s.Monsters[i]
		if !m.Alive() || m.LastIntent < 0 {
			continue
		}
		intent := m.Template().Intents[m.LastIntent]
		for _, act := range intent.Actions {
			runMonsterAction(s, m, act)
			if s.BattleDone {
				return
			}
		}
	}

	s.Buffs.Cycle()
	for i := range s.Monsters {
		if s.Monsters[i].Alive() {
			s.Monsters[i].Buffs.Cycle()
		}
	}

	s.Turn++
	s.Energy = 3
	if s.Buffs.Get(buff.Barricade) == 0 {
		s.Block = 0
	}

	if s.Buffs.Get(buff.NoDraw) > 0 {
		s.Buffs.Add(buff.NoDraw, -1)
	} else if s.NPending+2 <= MaxPending {
		s.PushPending(Pending{Kind: PendingDrawCards, N: 5})
		s.PushPending(Pending{Kind: PendingGenerateIntents})
	}
}

func runMonsterAction(s *State, m *monster.Instance, act monster.Action) {
	switch act.Type {
	case monster.ActionAttack:
		dmg := act.Arg0 + int(m.Buffs.Get(buff.Strength))
		isMelee := true
		s.TakeDamage(dmg, isMelee)
		if isMelee {
			if thorns := s.Buffs.Get(buff.Thorns); thorns > 0 {
				m.TakeDamage(int(thorns), false)
			}
		}
	case monster.ActionBlock:
		m.AddBlock(act.Arg0)
	case monster.ActionBuffSelf:
		m.Buffs.Add(buff.Kind(act.Arg0), int16(act.Arg1))
	case monster.ActionDebuffPlayer:
		s.Buffs.Add(buff.Kind(act.Arg0), int16(act.Arg1))
	case monster.ActionHeal:
		m.HP += act.Arg0
		if m.HP > m.MaxHP {
			m.HP = m.MaxHP
		}
	}
}
