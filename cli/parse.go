package cli

import (
	"strconv"
	"strings"

	"github.com/spiresolve/spiresolve/card"
)

func errUnknownCard(name string) error {
	return newConfigError("deck", "unknown card \""+name+"\"")
}

func errEmptyDeck() error {
	return newConfigError("deck", "deck is empty")
}

func errUnknownRelic(name string) error {
	return newConfigError("relics", "unknown relic \""+name+"\"")
}

// DeckEntry is one parsed deck token: count copies of a card.
type DeckEntry struct {
	ID    card.ID
	Count int
}

// parseDeck parses the §6 deck= grammar: comma-separated card names,
// each optionally prefixed with an "NxName" multiplicity (e.g.
// "5xStrike,2xDefend,Bash").
func parseDeck(s string) ([]DeckEntry, error) {
	var out []DeckEntry
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		count := 1
		name := tok
		if i := strings.IndexByte(tok, 'x'); i > 0 {
			if n, err := strconv.Atoi(strings.TrimSpace(tok[:i])); err == nil {
				count = n
				name = strings.TrimSpace(tok[i+1:])
			}
		}
		id, ok := card.ByName(name)
		if !ok {
			return nil, errUnknownCard(name)
		}
		out = append(out, DeckEntry{ID: id, Count: count})
	}
	if len(out) == 0 {
		return nil, errEmptyDeck()
	}
	return out, nil
}

// parseRelics parses the §6 relics= grammar: comma-separated,
// case/space/underscore-insensitive relic names.
func parseRelics(s string) (card.Relics, error) {
	var relics card.Relics
	if strings.TrimSpace(s) == "" {
		return relics, nil
	}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		r, ok := card.RelicByName(tok)
		if !ok {
			return 0, errUnknownRelic(tok)
		}
		relics = relics.With(r)
	}
	return relics, nil
}
