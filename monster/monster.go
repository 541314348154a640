// Package monster defines enemy templates, their intent-selection
// rules, and the layout generator that seeds a fight's mob set
// (§4.C's "opaque collaborator" concretized, §3 monsters[0..M]).
package monster

import "github.com/spiresolve/spiresolve/buff"

// ActionType tags one step of an intent's effect list. Monster actions
// are always self- or player-directed, unlike card.Action which can
// target any enemy slot, so this is a separate small enum rather than
// reusing card.ActionType.
type ActionType uint8

const (
	ActionNone ActionType = iota
	ActionAttack
	ActionBlock
	ActionBuffSelf
	ActionDebuffPlayer
	ActionHeal
)

// Action is one effect of an Intent.
type Action struct {
	Type ActionType
	Arg0 int
	Arg1 int
}

// MaxIntentActions bounds an intent's effect list (monster.hpp uses 2).
const MaxIntentActions = 2

// Intent is one named choice a monster can make on its turn.
type Intent struct {
	Name    string
	Actions [MaxIntentActions]Action
}

// WeightedIntent is one outcome of a ChooseIntent call.
type WeightedIntent struct {
	Probability float64
	IntentIdx   int
}

// History is the last two intents chosen, used for anti-repeat rules.
// -1 means "no history yet".
type History [2]int8

// Template describes how to generate and drive one kind of monster.
// ID indexes into the global Templates table.
type Template struct {
	ID      int
	Name    string
	HPMin   int
	HPMax   int
	Intents []Intent
	// ChooseIntent enumerates the intent distribution given the
	// monster's current instance and turn, honoring anti-repeat rules
	// (§4.C generate_intents). Deterministic monsters return a single
	// outcome with probability 1.
	ChooseIntent func(inst *Instance, turn int) []WeightedIntent
}

// Templates is the read-only catalog of registered monster kinds.
var Templates []Template

func register(t Template) *Template {
	t.ID = len(Templates)
	Templates = append(Templates, t)
	return &Templates[len(Templates)-1]
}

// Instance is one live monster slot's mutable state (§3 monsters[0..M]).
// It is a plain value type so combat.State can copy it by assignment.
type Instance struct {
	TemplateID int // index into Templates, or -1 if this slot is empty
	HP         int
	MaxHP      int
	Block      int
	Buffs      buff.State
	History    History
	LastIntent int // index into Template.Intents chosen last turn, -1 if none
}

// Empty reports whether this slot holds no monster.
func (m Instance) Empty() bool { return m.TemplateID < 0 }

// Alive reports whether this slot holds a living monster.
func (m Instance) Alive() bool { return !m.Empty() && m.HP > 0 }

// Template returns the catalog template backing this instance.
func (m Instance) Template() *Template { return &Templates[m.TemplateID] }

// NewInstance creates a fresh monster from a template at a fixed HP
// (the layout generator enumerates the HP-variation chance branches,
// §4.C's GenerateBattle; by the time Instance is constructed the HP
// roll is already resolved).
func NewInstance(t *Template, hp int) Instance {
	return Instance{
		TemplateID: t.ID,
		HP:         hp,
		MaxHP:      hp,
		LastIntent: -1,
		History:    History{-1, -1},
	}
}

// EmptyInstance is the "no monster in this slot" marker (TemplateID
// -1). The zero-value Instance is not empty: its TemplateID 0 names
// the first registered template.
var EmptyInstance = Instance{TemplateID: -1, LastIntent: -1, History: History{-1, -1}}

// TakeDamage applies incoming damage to block then HP, per monster.hpp's
// Block-then-HP order. attackDamage controls whether CurlUp triggers.
func (m *Instance) TakeDamage(amount int, attackDamage bool) {
	if amount <= 0 {
		return
	}
	if m.Buffs.Get(buff.Vulnerable) > 0 {
		amount = amount * 3 / 2
	}
	if m.Block > 0 {
		if m.Block >= amount {
			m.Block -= amount
			return
		}
		amount -= m.Block
		m.Block = 0
	}
	if m.HP <= amount {
		m.HP = 0
		return
	}
	m.HP -= amount
	if attackDamage && m.Buffs.Get(buff.CurlUp) > 0 {
		m.Block += int(m.Buffs.Get(buff.CurlUp))
		m.Buffs.Set(buff.CurlUp, 0)
	}
}

// AddBlock grants block, scaled by Dexterity, per monster.hpp's Block().
func (m *Instance) AddBlock(amount int) {
	amount += int(m.Buffs.Get(buff.Dexterity))
	if amount > 0 {
		m.Block += amount
	}
}

// RecordIntent pushes idx onto the two-entry history (§3 "recent-intent history").
func (m *Instance) RecordIntent(idx int) {
	m.History[1] = m.History[0]
	m.History[0] = int8(idx)
	m.LastIntent = idx
}
