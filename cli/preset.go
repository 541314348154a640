package cli

import "github.com/spiresolve/spiresolve/card"

// Preset is a starting character bundle (§6 character= flag):
// default HP, starting deck, and starting relics.
type Preset struct {
	Name   string
	MaxHP  int
	Deck   []DeckEntry
	Relics card.Relics
}

// Presets is the read-only catalog of registered starting characters.
var Presets = map[string]*Preset{}

func registerPreset(p Preset) {
	Presets[normalizePresetName(p.Name)] = &p
}

// PresetByName resolves a case/space/underscore-insensitive preset
// name.
func PresetByName(name string) (*Preset, bool) {
	p, ok := Presets[normalizePresetName(name)]
	return p, ok
}

func normalizePresetName(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r == ' ' || r == '_' || r == '-':
			continue
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

func init() {
	registerPreset(Preset{
		Name:  "Warrior",
		MaxHP: 80,
		Deck: []DeckEntry{
			{ID: card.StrikeID, Count: 5},
			{ID: card.DefendID, Count: 4},
			{ID: card.BashID, Count: 1},
		},
		Relics: card.Relics(0).With(card.RelicVajra),
	})

	registerPreset(Preset{
		Name:  "Rogue",
		MaxHP: 70,
		Deck: []DeckEntry{
			{ID: card.StrikeID, Count: 5},
			{ID: card.DefendID, Count: 5},
		},
		Relics: card.Relics(0).With(card.RelicOddlySmoothStone),
	})
}
