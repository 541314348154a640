package card

// Relic is a bit position in the owned-relics bitset (§3 "relics — a
// bitset of owned relics plus a few one-shot active flags"). Grounded
// on relics.hpp's RelicStruct bitfield, collapsed to a uint64 bitset
// since Go doesn't have C's anonymous-bitfield struct idiom.
type Relic uint8

const (
	RelicVajra Relic = iota // +1 Strength at battle start
	RelicOddlySmoothStone   // +1 Dexterity at battle start
	RelicBagOfPreparation   // +2 cards in the opening draw
	RelicAkabeko            // first attack played deals +8 damage (one-shot per battle)
	RelicAnchor             // 10 block at battle start
	RelicOrichalcum         // +6 block at end of turn if no block was gained that turn
	RelicCentennialPuzzle   // draw 3 cards the first time damage gets through block this battle (one-shot); direct HP loss (Offering, Combust) does not trigger it

	relicCount
)

// Relics is a bitset of owned relics.
type Relics uint64

// Has reports whether r owns relic.
func (r Relics) Has(relic Relic) bool { return r&(1<<relic) != 0 }

// With returns r with relic added.
func (r Relics) With(relic Relic) Relics { return r | (1 << relic) }

var relicByName = map[string]Relic{
	"vajra":              RelicVajra,
	"oddlysmoothstone":   RelicOddlySmoothStone,
	"bagofpreparation":   RelicBagOfPreparation,
	"akabeko":            RelicAkabeko,
	"anchor":             RelicAnchor,
	"orichalcum":         RelicOrichalcum,
	"centennialpuzzle":   RelicCentennialPuzzle,
}

// RelicByName resolves a case/space/underscore-insensitive relic name
// (§6's CLI relics= parsing rule).
func RelicByName(name string) (Relic, bool) {
	r, ok := relicByName[normalize(name)]
	return r, ok
}
