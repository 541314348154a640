package search

import (
	"github.com/spiresolve/spiresolve/combat"
	"github.com/spiresolve/spiresolve/monster"
	"github.com/spiresolve/spiresolve/piles"
)

// Step pops the highest-ranked frontier node and expands it (§4.E's
// main-loop body). It returns false once the frontier is empty.
func (t *Tree) Step(fight *monster.Fight) bool {
	n, ok := t.popFrontier()
	if !ok {
		return false
	}
	t.Expanded++
	s := &t.nodes[n].State

	if s.HasPendingAction() {
		switch s.Pending[0].Kind {
		case combat.PendingGenerateBattle:
			t.expandGenerateBattle(n, fight)
		case combat.PendingGenerateIntents:
			t.expandGenerateIntents(n)
		case combat.PendingDrawCards:
			t.expandDrawCards(n)
		}
		return true
	}

	t.expandDecision(n)
	return true
}

// Run drives Step to completion (§4.E: "loop until the frontier is
// empty"). It returns the number of iterations performed.
func (t *Tree) Run(fight *monster.Fight) int {
	iterations := 0
	for t.Step(fight) {
		iterations++
	}
	return iterations
}

func (t *Tree) expandGenerateBattle(n nodeIndex, fight *monster.Fight) {
	for _, layout := range fight.Generator() {
		child := t.CreateChild(n, false)
		cs := &t.nodes[child].State
		cs.Parent = combat.PlayerAction{}
		cs.PopPending()
		combat.StartBattle(cs, layout.Monsters)
		cs.Probability = layout.Probability
		cs.Objective = cs.MaxPossibleObjective()
		t.insertFrontier(child)
	}
	t.UpdateTree(n)
}

func (t *Tree) expandGenerateIntents(n nodeIndex) {
	s := &t.nodes[n].State
	for _, outcome := range combat.GenerateIntents(s) {
		child := t.CreateChild(n, false)
		cs := &t.nodes[child].State
		cs.Parent = combat.PlayerAction{}
		cs.PopPending()
		combat.ApplyIntents(cs, outcome)
		cs.Probability = outcome.Probability
		cs.Objective = cs.MaxPossibleObjective()
		t.insertFrontier(child)
	}
	t.UpdateTree(n)
}

func (t *Tree) expandDrawCards(n nodeIndex) {
	s := &t.nodes[n].State
	store := t.Store

	if store.IsEmpty(s.Draw) && !store.IsEmpty(s.Discard) {
		child := t.CreateChild(n, false)
		cs := &t.nodes[child].State
		cs.Parent = combat.PlayerAction{}
		for _, p := range store.Pairs(s.Discard) {
			cs.Draw = store.AddCards(cs.Draw, p.ID, p.Count)
		}
		cs.Discard = piles.Empty
		cs.Probability = 1
		cs.Objective = cs.MaxPossibleObjective()
		t.insertFrontier(child)
		t.UpdateTree(n)
		return
	}

	k := s.Pending[0].N
	handSize := store.Count(s.Hand)
	drawSize := store.Count(s.Draw)
	kPrime := k
	if kPrime > drawSize {
		kPrime = drawSize
	}
	if cap := 10 - handSize; kPrime > cap {
		kPrime = cap
	}
	if kPrime < 0 {
		kPrime = 0
	}

	if kPrime == 0 {
		s.PopPending()
		t.insertFrontier(n)
		return
	}

	for _, o := range store.Select(s.Draw, kPrime) {
		child := t.CreateChild(n, false)
		cs := &t.nodes[child].State
		cs.Parent = combat.PlayerAction{}
		for _, p := range store.Pairs(o.Drawn) {
			cs.Hand = store.AddCards(cs.Hand, p.ID, p.Count)
		}
		cs.Draw = o.Remaining
		if remaining := k - kPrime; remaining > 0 {
			cs.Pending[0].N = remaining
		} else {
			cs.PopPending()
		}
		cs.Probability = o.Probability
		cs.Objective = cs.MaxPossibleObjective()
		t.insertFrontier(child)
	}
	t.UpdateTree(n)
}
