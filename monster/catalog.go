package monster

import "github.com/spiresolve/spiresolve/buff"

// Templates below are grounded on monster.hpp's BaseMonster/MonsterIntent
// shape and the original game's published enemy behavior, trimmed to
// what's needed to exercise the search engine's chance-node and
// anti-repeat machinery (§4.C expansion): a deterministic single-intent
// attacker for the worked scenarios (§8), plus enemies that exercise
// intent history, HP variation, and multi-slot fights.

var (
	TestMob  *Template
	JawWorm  *Template
	Cultist  *Template
	Louse    *Template
	Slime    *Template
)

func init() {
	// Test Mob: deterministic, always attacks for 10 — spec.md §8's
	// worked scenarios 1-7 are all built against this template.
	TestMob = register(Template{
		Name:  "Test Mob",
		HPMin: 100, HPMax: 100,
		Intents: []Intent{
			{Name: "Attack", Actions: [MaxIntentActions]Action{{Type: ActionAttack, Arg0: 10}}},
		},
		ChooseIntent: func(inst *Instance, turn int) []WeightedIntent {
			return []WeightedIntent{{Probability: 1, IntentIdx: 0}}
		},
	})

	// Jaw Worm: Chomp (attack 11) / Thrash (attack 7, block 5) / Bellow
	// (strength 3, block 6). Cannot repeat Chomp twice in a row, cannot
	// repeat Thrash twice in a row; first turn is always Chomp.
	JawWorm = register(Template{
		Name:  "Jaw Worm",
		HPMin: 40, HPMax: 44,
		Intents: []Intent{
			{Name: "Chomp", Actions: [MaxIntentActions]Action{{Type: ActionAttack, Arg0: 11}}},
			{Name: "Thrash", Actions: [MaxIntentActions]Action{{Type: ActionAttack, Arg0: 7}, {Type: ActionBlock, Arg0: 5}}},
			{Name: "Bellow", Actions: [MaxIntentActions]Action{{Type: ActionBuffSelf, Arg0: int(buff.Strength), Arg1: 3}, {Type: ActionBlock, Arg0: 6}}},
		},
		ChooseIntent: func(inst *Instance, turn int) []WeightedIntent {
			if turn == 1 {
				return []WeightedIntent{{Probability: 1, IntentIdx: 0}}
			}
			last := inst.History[0]
			weights := map[int]float64{0: 0.45, 1: 0.30, 2: 0.25}
			if last == 0 {
				delete(weights, 0)
			}
			if last == 1 {
				delete(weights, 1)
			}
			return normalizeWeights(weights)
		},
	})

	// Cultist: turn 1 always Incantation (Ritual buff), every turn
	// after always Dark Strike (attack). No randomness, but exercises
	// the "deterministic given history" anti-repeat framing since the
	// choice depends on turn number rather than a coin flip.
	Cultist = register(Template{
		Name:  "Cultist",
		HPMin: 48, HPMax: 54,
		Intents: []Intent{
			{Name: "Incantation", Actions: [MaxIntentActions]Action{{Type: ActionBuffSelf, Arg0: int(buff.Ritual), Arg1: 3}}},
			{Name: "Dark Strike", Actions: [MaxIntentActions]Action{{Type: ActionAttack, Arg0: 6}}},
		},
		ChooseIntent: func(inst *Instance, turn int) []WeightedIntent {
			if turn == 1 {
				return []WeightedIntent{{Probability: 1, IntentIdx: 0}}
			}
			return []WeightedIntent{{Probability: 1, IntentIdx: 1}}
		},
	})

	// Louse: Bite (attack 6) / Grow (strength 4), fixed values; the
	// damage and strength amounts are not rolled as chance branches.
	// Cannot repeat Grow three times in a row. HP itself varies 10-15
	// and is resolved by the layout generator (fight.go), not here.
	Louse = register(Template{
		Name:  "Louse",
		HPMin: 10, HPMax: 15,
		Intents: []Intent{
			{Name: "Bite", Actions: [MaxIntentActions]Action{{Type: ActionAttack, Arg0: 6}}},
			{Name: "Grow", Actions: [MaxIntentActions]Action{{Type: ActionBuffSelf, Arg0: int(buff.Strength), Arg1: 4}}},
		},
		ChooseIntent: func(inst *Instance, turn int) []WeightedIntent {
			if inst.History[0] == 1 && inst.History[1] == 1 {
				return []WeightedIntent{{Probability: 1, IntentIdx: 0}}
			}
			return []WeightedIntent{{Probability: 0.75, IntentIdx: 0}, {Probability: 0.25, IntentIdx: 1}}
		},
	})

	// Spike Slime (medium): Corrosive Spit (attack 8) / Lick (weak 1).
	// Exercises the M>=2 monster-slot requirement when fought in pairs
	// (fight.go); slimes do not split.
	Slime = register(Template{
		Name:  "Spike Slime",
		HPMin: 28, HPMax: 32,
		Intents: []Intent{
			{Name: "Corrosive Spit", Actions: [MaxIntentActions]Action{{Type: ActionAttack, Arg0: 8}}},
			{Name: "Lick", Actions: [MaxIntentActions]Action{{Type: ActionDebuffPlayer, Arg0: int(buff.Weak), Arg1: 1}}},
		},
		ChooseIntent: func(inst *Instance, turn int) []WeightedIntent {
			if turn == 1 {
				return []WeightedIntent{{Probability: 1, IntentIdx: 1}}
			}
			if inst.History[0] == 0 {
				return []WeightedIntent{{Probability: 1, IntentIdx: 1}}
			}
			return []WeightedIntent{{Probability: 0.6, IntentIdx: 0}, {Probability: 0.4, IntentIdx: 1}}
		},
	})
}

func normalizeWeights(weights map[int]float64) []WeightedIntent {
	var total float64
	for _, w := range weights {
		total += w
	}
	// Map iteration order is randomized in Go; the search must be
	// deterministic (§5), so outcomes are emitted in ascending index
	// order regardless of map iteration.
	out := make([]WeightedIntent, 0, len(weights))
	for idx := 0; idx < 3; idx++ {
		if w, ok := weights[idx]; ok {
			out = append(out, WeightedIntent{Probability: w / total, IntentIdx: idx})
		}
	}
	return out
}
