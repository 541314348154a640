// Package combat implements the mutable combat-state record and the
// four simulation entry points that drive it (§4.A, §4.C): start of
// battle, enemy intent generation, card play, and end of turn. The
// search package treats this package as an opaque step function over
// states; combat knows nothing about trees, frontiers, or recycling.
package combat

import (
	"github.com/spiresolve/spiresolve/buff"
	"github.com/spiresolve/spiresolve/card"
	"github.com/spiresolve/spiresolve/monster"
	"github.com/spiresolve/spiresolve/piles"
)

// Stance mirrors the teacher's small closed-enum style (mcts node flags).
type Stance uint8

const (
	StanceNone Stance = iota
	StanceWrath
	StanceCalm
)

// PendingKind tags one entry of a state's pending-action queue (§3).
type PendingKind uint8

const (
	PendingNone PendingKind = iota
	PendingGenerateBattle
	PendingGenerateIntents
	PendingDrawCards
)

// Pending is one queued chance-expansion token.
type Pending struct {
	Kind PendingKind
	N    int // draw count, for PendingDrawCards
}

// MaxMonsters is M from §3 ("up to M (>=2) slots").
const MaxMonsters = 2

// MaxPending bounds the pending-action queue. spec.md §3 sizes this at
// 2 for the base engine (draw-cards then generate-intents); Centennial
// Puzzle's "draw 3 on first HP loss" trigger can coexist with an
// in-flight turn-start queue, so this expansion widens the bound to 3
// rather than special-casing the relic outside the queue.
const MaxPending = 3

// PlayerAction records the decision that produced a state from its
// parent (§3 parent_decision): either a card play (with target) or an
// end-turn. Valid only when the parent had no pending chance action.
type PlayerAction struct {
	Decision bool // true iff this node was created by a decision edge, not a chance edge
	EndTurn  bool
	CardID   card.ID
	Target   int // enemy slot index, or the targeted hand card's id for hand-targeted cards; -1 if untargeted
}

// State is one combat configuration (§3). It is a plain value type:
// Go copies its scalar/array/pile-handle fields on assignment, and
// pile handles are immutable interned values, so a State can be
// copy-constructed by assignment wherever the teacher's node graph
// would copy-construct a game position.
type State struct {
	HP, MaxHP, Block, Energy, Turn int
	Stance                         Stance

	Draw, Hand, Discard, Exhaust piles.Handle

	Buffs buff.State

	Monsters [MaxMonsters]monster.Instance

	Relics card.Relics
	// One-shot battle flags, reset at StartBattle.
	AkabekoConsumed       bool
	CentennialTriggered   bool
	GainedBlockThisTurn   bool

	Pending [MaxPending]Pending
	NPending int

	Parent         PlayerAction
	Probability    float64
	Objective      float64
	TreeSolved     bool
	BattleDone     bool
	LastCardAttack bool
	LastCardSkill  bool
}

// New constructs the root state before StartBattle has run: full HP,
// empty piles, no pending actions. The caller (cli) fills in HP/deck
// from the chosen preset before enqueuing PendingGenerateBattle.
func New(maxHP int, relics card.Relics) State {
	return State{
		HP: maxHP, MaxHP: maxHP,
		Relics: relics,
	}
}

// Clone returns an independent copy. Go's plain assignment already
// does the job; Clone exists so a call site can read as an explicit
// copy. The search package copies states through Tree.CreateChild and
// does not call Clone.
func (s State) Clone() State { return s }

// IsTerminal reports whether the battle has concluded.
func (s *State) IsTerminal() bool { return s.BattleDone }

// HasPendingAction reports whether a chance-expansion step is owed.
func (s *State) HasPendingAction() bool {
	return s.NPending > 0 && s.Pending[0].Kind != PendingNone
}

// MobsAlive reports whether any enemy slot holds a living monster.
func (s *State) MobsAlive() bool {
	for i := range s.Monsters {
		if s.Monsters[i].Alive() {
			return true
		}
	}
	return false
}

// PushPending appends a chance token to the queue, which holds at most
// MaxPending entries; callers check the bound before pushing.
func (s *State) PushPending(p Pending) {
	s.Pending[s.NPending] = p
	s.NPending++
}

// PopPending removes the head of the queue, shifting the rest down.
func (s *State) PopPending() {
	if s.NPending == 0 {
		return
	}
	for i := 1; i < s.NPending; i++ {
		s.Pending[i-1] = s.Pending[i]
	}
	s.NPending--
	s.Pending[s.NPending] = Pending{}
}

// deathTiebreak implements §3's terminal-objective rule: on death,
// subtract remaining enemy HP (scaled down) so the line that inflicted
// the most damage before dying still ranks highest among losses.
const deathTiebreakDivisor = 1000.0

// finalizeObjective sets Objective and BattleDone once either the
// player or every enemy has died (§4.C: "any of the four [steps] may
// cause battle_done = true; after such a transition the state's
// objective is set to its final value").
func (s *State) finalizeObjective() {
	if s.HP <= 0 {
		s.HP = 0
		s.BattleDone = true
		s.TreeSolved = true
		var remaining float64
		for i := range s.Monsters {
			if s.Monsters[i].Alive() {
				remaining += float64(s.Monsters[i].HP)
			}
		}
		s.Objective = -remaining / deathTiebreakDivisor
		return
	}
	if !s.MobsAlive() {
		s.BattleDone = true
		s.TreeSolved = true
		s.Objective = float64(s.HP)
	}
}

// TakeDamage reduces player HP, respecting block, per the player-side
// mirror of monster.Instance.TakeDamage. attackDamage is not consulted
// here; player Thorns on melee hits is applied by the enemy-intent code
// in EndTurn.
func (s *State) TakeDamage(amount int, attackDamage bool) {
	if amount <= 0 {
		return
	}
	if s.Buffs.Get(buff.Vulnerable) > 0 {
		amount = amount * 3 / 2
	}
	if s.Block > 0 {
		if s.Block >= amount {
			s.Block -= amount
			return
		}
		amount -= s.Block
		s.Block = 0
	}
	s.HP -= amount
	if s.Relics.Has(card.RelicCentennialPuzzle) && !s.CentennialTriggered {
		s.CentennialTriggered = true
		if s.HP > 0 && s.NPending < MaxPending {
			s.PushPending(Pending{Kind: PendingDrawCards, N: 3})
		}
	}
	if s.HP <= 0 {
		s.finalizeObjective()
	}
}

// Heal restores player HP, capped at MaxHP.
func (s *State) Heal(amount int) {
	if amount <= 0 {
		return
	}
	s.HP += amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
}

// AddBlock grants the player block, scaled by Dexterity (mirrors
// monster.Instance.AddBlock).
func (s *State) AddBlock(amount int) {
	amount += int(s.Buffs.Get(buff.Dexterity))
	if amount > 0 {
		s.Block += amount
		s.GainedBlockThisTurn = true
	}
}

// AttackEnemy applies damage to one enemy slot, respecting
// Vulnerable/block/CurlUp, triggering the Akabeko first-attack bonus,
// and reflecting the enemy's Thorns back onto the player.
func (s *State) AttackEnemy(index int, damage int) {
	m := &s.Monsters[index]
	if !m.Alive() {
		return
	}
	if s.Relics.Has(card.RelicAkabeko) && !s.AkabekoConsumed {
		damage += 8
		s.AkabekoConsumed = true
	}
	damage += int(s.Buffs.Get(buff.Strength))
	m.TakeDamage(damage, true)
	if thorns := m.Buffs.Get(buff.Thorns); thorns > 0 {
		s.TakeDamage(int(thorns), false)
	}
	if !s.BattleDone && !s.MobsAlive() {
		s.finalizeObjective()
	}
}

// MaxPossibleObjective is an upper bound on any descendant's objective
// (§4.A): the player's HP plus whatever end-of-battle healing owned
// relics could still provide, capped at MaxHP. None of this module's
// relics heal, so it is min(MaxHP, HP) with no relic term.
func (s *State) MaxPossibleObjective() float64 {
	bound := s.HP
	if bound > s.MaxHP {
		bound = s.MaxHP
	}
	return float64(bound)
}
