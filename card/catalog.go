package card

import "github.com/spiresolve/spiresolve/buff"

// Catalog entries below are grounded on cards_ironclad.hpp / cards_status.hpp
// in the original source, trimmed to the subset needed for spec.md §8's
// worked scenarios plus a little breadth (§4.C expansion).
//
// Upgraded variants are registered first so their plain IDs are known
// when the base card references them as Upgraded.

var (
	StrikePlusID ID
	StrikeID     ID

	DefendPlusID ID
	DefendID     ID

	BashPlusID ID
	BashID     ID

	ClotheslinePlusID ID
	ClotheslineID     ID

	IronWavePlusID ID
	IronWaveID     ID

	TwinStrikePlusID ID
	TwinStrikeID     ID

	CleavePlusID ID
	CleaveID     ID

	AngerPlusID ID
	AngerID     ID

	WhirlwindPlusID ID
	WhirlwindID     ID

	RagePlusID ID
	RageID     ID

	MetallicizePlusID ID
	MetallicizeID     ID

	InflamePlusID ID
	InflameID     ID

	CombustPlusID ID
	CombustID     ID

	FlexPlusID ID
	FlexID     ID

	ShrugItOffPlusID ID
	ShrugItOffID     ID

	OfferingPlusID ID
	OfferingID     ID

	EvolvePlusID ID
	EvolveID     ID

	WoundID ID
	DazedID ID
)

func init() {
	StrikePlusID = register("Strike+", 1, Nil, Flags{Attack: true, Targeted: true, Strike: true, Upgraded: true},
		Action{Type: ActionAttack, Arg0: 9})
	StrikeID = register("Strike", 1, StrikePlusID, Flags{Attack: true, Targeted: true, Strike: true},
		Action{Type: ActionAttack, Arg0: 6})

	DefendPlusID = register("Defend+", 1, Nil, Flags{Skill: true, Upgraded: true},
		Action{Type: ActionBlock, Arg0: 8})
	DefendID = register("Defend", 1, DefendPlusID, Flags{Skill: true},
		Action{Type: ActionBlock, Arg0: 5})

	BashPlusID = register("Bash+", 2, Nil, Flags{Attack: true, Targeted: true, Upgraded: true},
		Action{Type: ActionAttack, Arg0: 10},
		Action{Type: ActionDebuffOne, Arg0: int(buff.Vulnerable), Arg1: 3})
	BashID = register("Bash", 2, BashPlusID, Flags{Attack: true, Targeted: true},
		Action{Type: ActionAttack, Arg0: 8},
		Action{Type: ActionDebuffOne, Arg0: int(buff.Vulnerable), Arg1: 2})

	ClotheslinePlusID = register("Clothesline+", 2, Nil, Flags{Attack: true, Targeted: true, Upgraded: true},
		Action{Type: ActionAttack, Arg0: 14},
		Action{Type: ActionDebuffOne, Arg0: int(buff.Weak), Arg1: 3})
	ClotheslineID = register("Clothesline", 2, ClotheslinePlusID, Flags{Attack: true, Targeted: true},
		Action{Type: ActionAttack, Arg0: 12},
		Action{Type: ActionDebuffOne, Arg0: int(buff.Weak), Arg1: 2})

	IronWavePlusID = register("Iron Wave+", 1, Nil, Flags{Attack: true, Targeted: true, Upgraded: true},
		Action{Type: ActionAttack, Arg0: 7}, Action{Type: ActionBlock, Arg0: 7})
	IronWaveID = register("Iron Wave", 1, IronWavePlusID, Flags{Attack: true, Targeted: true},
		Action{Type: ActionAttack, Arg0: 5}, Action{Type: ActionBlock, Arg0: 5})

	TwinStrikePlusID = register("Twin Strike+", 1, Nil, Flags{Attack: true, Targeted: true, Upgraded: true},
		Action{Type: ActionAttack, Arg0: 7}, Action{Type: ActionAttack, Arg0: 7})
	TwinStrikeID = register("Twin Strike", 1, TwinStrikePlusID, Flags{Attack: true, Targeted: true},
		Action{Type: ActionAttack, Arg0: 5}, Action{Type: ActionAttack, Arg0: 5})

	CleavePlusID = register("Cleave+", 1, Nil, Flags{Attack: true, Upgraded: true},
		Action{Type: ActionAttackAll, Arg0: 11})
	CleaveID = register("Cleave", 1, CleavePlusID, Flags{Attack: true},
		Action{Type: ActionAttackAll, Arg0: 8})

	AngerPlusID = register("Anger+", 0, Nil, Flags{Attack: true, Targeted: true, Upgraded: true},
		Action{Type: ActionAttack, Arg0: 8})
	AngerID = register("Anger", 0, AngerPlusID, Flags{Attack: true, Targeted: true},
		Action{Type: ActionAttack, Arg0: 6})

	WhirlwindPlusID = register("Whirlwind+", -1, Nil, Flags{Attack: true, XCost: true, Upgraded: true},
		Action{Type: ActionAttackWhirlwind, Arg0: 8})
	WhirlwindID = register("Whirlwind", -1, WhirlwindPlusID, Flags{Attack: true, XCost: true},
		Action{Type: ActionAttackWhirlwind, Arg0: 5})

	RagePlusID = register("Rage+", 1, Nil, Flags{Skill: true, Upgraded: true},
		Action{Type: ActionBuffSelf, Arg0: int(buff.Rage), Arg1: 5})
	RageID = register("Rage", 1, RagePlusID, Flags{Skill: true},
		Action{Type: ActionBuffSelf, Arg0: int(buff.Rage), Arg1: 3})

	MetallicizePlusID = register("Metallicize+", 1, Nil, Flags{Power: true, Upgraded: true},
		Action{Type: ActionBuffSelf, Arg0: int(buff.Metallicize), Arg1: 4})
	MetallicizeID = register("Metallicize", 1, MetallicizePlusID, Flags{Power: true},
		Action{Type: ActionBuffSelf, Arg0: int(buff.Metallicize), Arg1: 3})

	InflamePlusID = register("Inflame+", 1, Nil, Flags{Power: true, Upgraded: true},
		Action{Type: ActionBuffSelf, Arg0: int(buff.Strength), Arg1: 3})
	InflameID = register("Inflame", 1, InflamePlusID, Flags{Power: true},
		Action{Type: ActionBuffSelf, Arg0: int(buff.Strength), Arg1: 2})

	CombustPlusID = register("Combust+", 1, Nil, Flags{Power: true, Upgraded: true},
		Action{Type: ActionBuffSelf, Arg0: int(buff.CombustHPLoss), Arg1: 1},
		Action{Type: ActionBuffSelf, Arg0: int(buff.CombustDamage), Arg1: 7})
	CombustID = register("Combust", 1, CombustPlusID, Flags{Power: true},
		Action{Type: ActionBuffSelf, Arg0: int(buff.CombustHPLoss), Arg1: 1},
		Action{Type: ActionBuffSelf, Arg0: int(buff.CombustDamage), Arg1: 5})

	FlexPlusID = register("Flex+", 1, Nil, Flags{Skill: true, Upgraded: true},
		Action{Type: ActionBuffSelf, Arg0: int(buff.Strength), Arg1: 4},
		Action{Type: ActionBuffSelf, Arg0: int(buff.StrengthDown), Arg1: 4})
	FlexID = register("Flex", 1, FlexPlusID, Flags{Skill: true},
		Action{Type: ActionBuffSelf, Arg0: int(buff.Strength), Arg1: 2},
		Action{Type: ActionBuffSelf, Arg0: int(buff.StrengthDown), Arg1: 2})

	ShrugItOffPlusID = register("Shrug It Off+", 1, Nil, Flags{Skill: true, Upgraded: true},
		Action{Type: ActionBlock, Arg0: 11}, Action{Type: ActionDrawCards, Arg0: 1})
	ShrugItOffID = register("Shrug It Off", 1, ShrugItOffPlusID, Flags{Skill: true},
		Action{Type: ActionBlock, Arg0: 8}, Action{Type: ActionDrawCards, Arg0: 1})

	OfferingPlusID = register("Offering+", 0, Nil, Flags{Skill: true, Exhausts: true, Upgraded: true},
		Action{Type: ActionLoseHP, Arg0: 6}, Action{Type: ActionGainEnergy, Arg0: 2}, Action{Type: ActionDrawCards, Arg0: 5})
	OfferingID = register("Offering", 0, OfferingPlusID, Flags{Skill: true, Exhausts: true},
		Action{Type: ActionLoseHP, Arg0: 6}, Action{Type: ActionGainEnergy, Arg0: 2}, Action{Type: ActionDrawCards, Arg0: 3})

	// Evolve draws a card whenever a status card is drawn — the
	// simulator doesn't model "whenever X is drawn" triggers, so it is
	// registered but its action list is intentionally left as the
	// unimplemented-effect scry placeholder (§7, §9 Open Question 4).
	EvolvePlusID = register("Evolve+", 1, Nil, Flags{Power: true, Upgraded: true},
		Action{Type: ActionScry, Arg0: 2})
	EvolveID = register("Evolve", 1, EvolvePlusID, Flags{Power: true},
		Action{Type: ActionScry, Arg0: 1})

	WoundID = register("Wound", 0, Nil, Flags{Status: true, Unplayable: true})
	DazedID = register("Dazed", 0, Nil, Flags{Status: true, Unplayable: true, Ethereal: true})
}
