package combat

import "github.com/spiresolve/spiresolve/piles"

// WorseOrEqual implements §4.A's partial order: "b is at least as good
// as a in every observable dimension." Sound but not complete — it
// never declares a <= b unless b truly dominates a.
func (a *State) WorseOrEqual(b *State, store *piles.Store, upgradeOf piles.UpgradeLookup) bool {
	// Fast-path short-circuit per §9: if b's terminal objective already
	// dominates a's maximum possible objective, a <= b unconditionally.
	if b.BattleDone && b.Objective >= a.MaxPossibleObjective() {
		return true
	}

	if a.NPending != b.NPending {
		return false
	}
	for i := 0; i < a.NPending; i++ {
		if a.Pending[i].Kind != b.Pending[i].Kind || a.Pending[i].N != b.Pending[i].N {
			return false
		}
	}

	// Piles must match exactly (dominance requires identical hand/draw/
	// discard/exhaust per §4.A — unlike piles.DeckWorseOrEqual's
	// upgrade-aware comparison, which only applies to whole-deck
	// comparisons before a battle starts, not to in-battle state piles).
	if a.Hand != b.Hand || a.Draw != b.Draw || a.Discard != b.Discard || a.Exhaust != b.Exhaust {
		return false
	}

	if a.Turn != b.Turn {
		return false
	}
	if a.LastCardAttack != b.LastCardAttack || a.LastCardSkill != b.LastCardSkill {
		return false
	}
	if a.Stance != b.Stance {
		return false
	}

	if a.HP > b.HP {
		return false
	}
	if a.Block > b.Block {
		return false
	}
	if a.Energy > b.Energy {
		return false
	}

	if !a.Buffs.PlayerWorseOrEqual(b.Buffs) {
		return false
	}

	for i := range a.Monsters {
		ma, mb := &a.Monsters[i], &b.Monsters[i]
		if ma.Empty() != mb.Empty() {
			return false
		}
		if ma.Empty() {
			continue
		}
		if ma.HP < mb.HP {
			return false
		}
		if !ma.Buffs.MobWorseOrEqual(mb.Buffs) {
			return false
		}
	}

	return true
}
