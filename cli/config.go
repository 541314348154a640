// Package cli resolves the §6 command-line configuration (character
// preset, deck/relic overrides, starting HP, fight choice) into a
// combat.State and monster.Fight the search package can run, and
// reports every invalid setting at once rather than failing on the
// first one — the teacher's Agent.Close follows the same "collect
// every failure, report them all" shape with go-multierror.
package cli

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spiresolve/spiresolve/card"
	"github.com/spiresolve/spiresolve/combat"
	"github.com/spiresolve/spiresolve/monster"
	"github.com/spiresolve/spiresolve/piles"
)

// Config is the raw, unvalidated set of CLI flag values (§6).
type Config struct {
	Character string
	Deck      string // overrides the preset deck when non-empty
	HP        string // "full", or a positive integer
	MaxHP     int    // 0 means "use the preset's default"
	Relics    string // additive to the preset's relics
	Fight     string
}

// Resolved is the validated configuration, ready to seed a search.
type Resolved struct {
	Store *piles.Store
	Root  combat.State
	Fight *monster.Fight
}

// Resolve validates cfg and builds the root combat state and fight.
// Every invalid flag is collected into a single *multierror.Error
// rather than returning on the first failure (§7).
func Resolve(cfg Config) (*Resolved, error) {
	var errs *multierror.Error

	preset, ok := PresetByName(cfg.Character)
	if !ok {
		errs = multierror.Append(errs, newConfigError("character", "unknown character \""+cfg.Character+"\""))
	}

	fight, ok := monster.FightByName(cfg.Fight)
	if !ok {
		errs = multierror.Append(errs, newConfigError("fight", "unknown fight \""+cfg.Fight+"\""))
	}

	deckEntries, relics, maxHP := resolveDeckRelicsHP(cfg, preset, &errs)

	hp, hpErr := resolveHP(cfg.HP, maxHP)
	if hpErr != nil {
		errs = multierror.Append(errs, hpErr)
	}

	if errs.ErrorOrNil() != nil {
		return nil, errs
	}

	store := piles.New()
	var draw piles.Handle
	for _, e := range deckEntries {
		draw = store.AddCards(draw, piles.CardID(e.ID), e.Count)
	}

	root := combat.New(maxHP, relics)
	root.HP = hp
	root.Draw = draw

	return &Resolved{Store: store, Root: root, Fight: fight}, nil
}

func resolveDeckRelicsHP(cfg Config, preset *Preset, errs **multierror.Error) ([]DeckEntry, card.Relics, int) {
	var deckEntries []DeckEntry
	var relics card.Relics
	maxHP := 0

	if preset != nil {
		deckEntries = preset.Deck
		relics = preset.Relics
		maxHP = preset.MaxHP
	}
	if cfg.MaxHP > 0 {
		maxHP = cfg.MaxHP
	}
	if maxHP <= 0 {
		*errs = multierror.Append(*errs, newConfigError("maxhp", "must be positive"))
	}

	if strings.TrimSpace(cfg.Deck) != "" {
		entries, err := parseDeck(cfg.Deck)
		if err != nil {
			*errs = multierror.Append(*errs, err)
		} else {
			deckEntries = entries
		}
	}
	if len(deckEntries) == 0 && preset == nil {
		*errs = multierror.Append(*errs, newConfigError("deck", "deck is empty"))
	}

	if strings.TrimSpace(cfg.Relics) != "" {
		extra, err := parseRelics(cfg.Relics)
		if err != nil {
			*errs = multierror.Append(*errs, err)
		} else {
			relics |= extra
		}
	}

	return deckEntries, relics, maxHP
}

func resolveHP(raw string, maxHP int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "full") {
		return maxHP, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, wrapConfigError("hp", err)
	}
	if n <= 0 {
		return 0, newConfigError("hp", "must be positive, or \"full\"")
	}
	if n > maxHP {
		return 0, newConfigError("hp", "exceeds maxhp")
	}
	return n, nil
}
