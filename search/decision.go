package search

import (
	"github.com/spiresolve/spiresolve/card"
	"github.com/spiresolve/spiresolve/combat"
	"github.com/spiresolve/spiresolve/piles"
)

// expandDecision implements §4.E's find_player_choices: N is expanded
// together with every reachable same-decision descendant, until every
// leaf of the sub-expansion is terminal or chance-pending ("a candidate
// ending"), dominance-pruned, and the survivors handed back to the
// frontier/terminal sets.
func (t *Tree) expandDecision(n nodeIndex) {
	ceiling := t.nodes[n].State.MaxPossibleObjective()

	worklist := []nodeIndex{n}
	var endings []nodeIndex
	var earlyTerminal nodeIndex = nilNode

worklistLoop:
	for len(worklist) > 0 {
		w := worklist[0]
		worklist = worklist[1:]
		ws := &t.nodes[w].State

		endChild := t.CreateChild(w, false)
		ec := &t.nodes[endChild].State
		combat.EndTurn(ec, t.Store)
		ec.Probability = 1
		ec.Parent = combat.PlayerAction{Decision: true, EndTurn: true}
		endings = append(endings, endChild)
		if ec.BattleDone && ec.Objective == ceiling {
			earlyTerminal = endChild
			break worklistLoop
		}

		for _, id := range playableCards(t.Store, ws) {
			for _, target := range cardTargets(t.Store, id, ws) {
				child := t.CreateChild(w, false)
				cs := &t.nodes[child].State
				cs.Hand = t.Store.RemoveCard(cs.Hand, piles.CardID(id))
				combat.PlayCard(cs, t.Store, id, target)
				if !cs.BattleDone {
					fileCard(t.Store, cs, id)
				}
				cs.Probability = 1
				cs.Parent = combat.PlayerAction{Decision: true, CardID: id, Target: target}

				if cs.BattleDone && cs.Objective == ceiling {
					earlyTerminal = child
					break worklistLoop
				}
				if cs.BattleDone || cs.HasPendingAction() {
					endings = append(endings, child)
				} else {
					worklist = append(worklist, child)
				}
			}
		}
	}

	if earlyTerminal.valid() {
		t.SelectTerminalPath(n, earlyTerminal)
		t.insertTerminal(earlyTerminal)
		t.UpdateTree(t.nodes[n].Parent)
		return
	}

	survivors := pruneDominatedEndings(t, n, endings)
	if len(survivors) == 0 {
		panic("search: decision node dominance-pruned to zero surviving children")
	}
	for _, idx := range survivors {
		if t.nodes[idx].State.BattleDone {
			t.insertTerminal(idx)
		} else {
			t.insertFrontier(idx)
		}
		t.UpdateTree(t.nodes[idx].Parent)
	}
}

// playableCards returns the distinct playable card ids in the hand
// pile: not unplayable, and affordable (X-cost cards are playable with
// any positive energy; fixed-cost cards need cost <= energy).
func playableCards(store *piles.Store, s *combat.State) []card.ID {
	var out []card.ID
	for _, p := range store.Pairs(s.Hand) {
		id := card.ID(p.ID)
		c := card.Get(id)
		if c.Flags.Unplayable {
			continue
		}
		if c.Flags.XCost {
			if s.Energy > 0 {
				out = append(out, id)
			}
			continue
		}
		if c.BaseCost <= s.Energy {
			out = append(out, id)
		}
	}
	return out
}

// cardTargets enumerates the target indices a card requires (§4.E):
// one per living enemy for targeted cards, one per distinct hand card
// plus a null fallback for hand-targeting cards, or a single untargeted
// slot (-1) otherwise.
func cardTargets(store *piles.Store, id card.ID, s *combat.State) []int {
	c := card.Get(id)
	if c.Flags.Targeted {
		var out []int
		for i := range s.Monsters {
			if s.Monsters[i].Alive() {
				out = append(out, i)
			}
		}
		return out
	}
	if c.Flags.TargetsHandCard {
		out := []int{-1} // null-target fallback
		for _, p := range store.Pairs(s.Hand) {
			if piles.CardID(id) != p.ID {
				out = append(out, int(p.ID))
			}
		}
		return out
	}
	return []int{-1}
}

// fileCard moves a just-played card to exhaust or discard per its
// flags (§4.E: "unless the card or its effects killed play progression
// or ended the battle", handled by the caller only invoking this when
// the battle isn't done).
func fileCard(store *piles.Store, s *combat.State, id card.ID) {
	if card.Get(id).Flags.Exhausts {
		s.Exhaust = store.AddCard(s.Exhaust, piles.CardID(id))
	} else {
		s.Discard = store.AddCard(s.Discard, piles.CardID(id))
	}
}

// upgradeLookup adapts card.UpgradeOf to piles.UpgradeLookup: the two
// packages use distinct id types (card.ID vs piles.CardID) so combat
// and piles need not depend on the card catalog.
func upgradeLookup(id piles.CardID) (piles.CardID, bool) {
	up, ok := card.UpgradeOf(card.ID(id))
	return piles.CardID(up), ok
}

// pruneDominatedEndings implements §4.E's dominance-pruning-of-
// candidate-endings procedure and its accompanying tree pruning.
func pruneDominatedEndings(t *Tree, top nodeIndex, endings []nodeIndex) []nodeIndex {
	dominated := make([]bool, len(endings))

	bestDead, haveDead := -1, false
	for i, idx := range endings {
		s := &t.nodes[idx].State
		if s.BattleDone && s.HP == 0 {
			if !haveDead || s.Objective > t.nodes[endings[bestDead]].State.Objective {
				bestDead, haveDead = i, true
			}
		}
	}
	if haveDead {
		for i, idx := range endings {
			s := &t.nodes[idx].State
			if s.BattleDone && s.HP == 0 && i != bestDead {
				dominated[i] = true
			}
		}
	}

	for i, a := range endings {
		if dominated[i] {
			continue
		}
		for j, b := range endings {
			if i == j || dominated[j] {
				continue
			}
			as, bs := &t.nodes[a].State, &t.nodes[b].State
			if bs.WorseOrEqual(as, t.Store, upgradeLookup) {
				dominated[j] = true
			}
		}
	}

	var survivors []nodeIndex
	for i, idx := range endings {
		if dominated[i] {
			t.pruneUpward(top, idx)
		} else {
			survivors = append(survivors, idx)
		}
	}
	return survivors
}

// pruneUpward walks from a dominated ending toward top, detaching and
// recycling as long as the ancestor is left with no surviving children
// (§4.E "tree pruning").
func (t *Tree) pruneUpward(top, idx nodeIndex) {
	parent := t.nodes[idx].Parent
	t.detachAndDelete(parent, idx)
	for parent != top && len(t.children[parent]) == 0 {
		idx = parent
		parent = t.nodes[idx].Parent
		t.detachAndDelete(parent, idx)
	}
}
