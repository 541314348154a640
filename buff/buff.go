// Package buff implements the fixed buff/debuff alphabet (§3, §4.A)
// shared by the player and every monster slot, plus the dominance
// comparison rules over it (positive buffs lower-is-worse, negative
// buffs higher-is-worse, ambiguous buffs must match exactly).
package buff

// Kind enumerates every buff/debuff this solver models. New kinds can
// be appended without touching the dominance contract, since the
// comparison only ever consults the Positive/Negative/Ambiguous lists
// below.
type Kind uint8

const (
	Strength Kind = iota
	Dexterity
	Weak
	Frail
	Vulnerable
	Ritual
	Thorns
	Enrage
	Metallicize
	PlatedArmor
	CurlUp
	Regenerate
	// StrengthDown: at end of turn, decrease Strength by this amount and zero it.
	StrengthDown
	Poison
	Rage
	Barricade
	Artifact
	Intangible
	NoDraw
	CombustHPLoss
	CombustDamage

	numKinds
)

// Positive buffs: more stacks is strictly better for their owner.
var Positive = []Kind{
	Strength, Dexterity, Ritual, Thorns, Enrage, Metallicize, PlatedArmor,
	CurlUp, Regenerate, Rage, Barricade, Artifact, Intangible, CombustDamage,
}

// Negative buffs: more stacks is strictly worse for their owner.
var Negative = []Kind{Weak, Frail, Vulnerable, StrengthDown, Poison}

// Ambiguous buffs: direction unclear, so dominance requires an exact match.
var Ambiguous = []Kind{NoDraw, CombustHPLoss}

// State holds stack counts for every buff kind, indexed directly by Kind.
type State [numKinds]int16

// Get returns the stack count for k.
func (s State) Get(k Kind) int16 { return s[k] }

// Add adds delta stacks of k (delta may be negative).
func (s *State) Add(k Kind, delta int16) { s[k] += delta }

// Set overwrites the stack count for k.
func (s *State) Set(k Kind, v int16) { s[k] = v }

// Equal reports whether s and that hold identical stacks in every kind.
func (s State) Equal(that State) bool { return s == that }

// PlayerWorseOrEqual reports whether s (the player's buffs) is no
// better than that in every dimension, per §4.A's dominance test.
func (s State) PlayerWorseOrEqual(that State) bool {
	if s == that {
		return true
	}
	for _, k := range Positive {
		if s[k] > that[k] {
			return false
		}
	}
	for _, k := range Negative {
		if s[k] < that[k] {
			return false
		}
	}
	for _, k := range Ambiguous {
		if s[k] != that[k] {
			return false
		}
	}
	return true
}

// MobWorseOrEqual reports whether s (a monster's buffs) is no better
// for the player than that — positive buffs help the monster, so
// "worse" for the player means at least as many of them (and no more
// negative ones), i.e. the comparison flips from the player case per §4.A ("for each enemy slot... buff vector (positive
// buffs lower better, negative buffs higher better...)").
func (s State) MobWorseOrEqual(that State) bool {
	if s == that {
		return true
	}
	for _, k := range Positive {
		if s[k] < that[k] {
			return false
		}
	}
	for _, k := range Negative {
		if s[k] > that[k] {
			return false
		}
	}
	for _, k := range Ambiguous {
		if s[k] != that[k] {
			return false
		}
	}
	return true
}

// Cycle applies end-of-turn buff decay, mirroring buff_state.hpp's Cycle():
// Vulnerable/Weak/Frail tick down by one, Ritual adds to Strength,
// StrengthDown subtracts from Strength once and clears.
func (s *State) Cycle() {
	if s[Vulnerable] > 0 {
		s[Vulnerable]--
	}
	if s[Weak] > 0 {
		s[Weak]--
	}
	if s[Frail] > 0 {
		s[Frail]--
	}
	if s[Ritual] != 0 {
		s[Strength] += s[Ritual]
	}
	if s[StrengthDown] != 0 {
		s[Strength] -= s[StrengthDown]
		s[StrengthDown] = 0
	}
}
