package piles

// UpgradeLookup maps a base card id to its upgraded version, if any.
// The piles package has no notion of a card catalog, so the caller of
// DeckWorseOrEqual supplies this.
type UpgradeLookup func(id CardID) (upgraded CardID, ok bool)

// DeckWorseOrEqual reports whether pile a is deck-worse-or-equal to
// pile b (§4.B): identical totals, and for every non-upgraded card c in
// b, the count of c-or-its-upgrade in a is <= the count in b, and the
// count of c's upgrade in a is <= that in b. Models "an upgraded card
// is never worse than its base".
func (s *Store) DeckWorseOrEqual(a, b Handle, upgradeOf UpgradeLookup) bool {
	if a == b {
		return true
	}
	if s.entries[a].total != s.entries[b].total {
		return false
	}
	for _, item := range s.entries[b].pairs {
		id := item.ID
		if _, isUpgrade := baseOf(upgradeOf, s.entries[b].pairs, id); isUpgrade {
			continue // handled as the upgraded-count term of its base
		}
		thatCount := item.Count
		thisCount := s.CountCard(a, id)
		var thisUpgraded, thatUpgraded int
		if upgraded, ok := upgradeOf(id); ok {
			thisUpgraded = s.CountCard(a, upgraded)
			thatUpgraded = s.CountCard(b, upgraded)
		}
		if thisUpgraded > thatUpgraded {
			return false
		}
		if thisCount+thisUpgraded > thatCount+thatUpgraded {
			return false
		}
	}
	return true
}

// baseOf reports whether id is the upgraded form of some other card
// present in pairs, by scanning for a card whose upgrade is id.
func baseOf(upgradeOf UpgradeLookup, pairs []pair, id CardID) (base CardID, isUpgrade bool) {
	for _, p := range pairs {
		if up, ok := upgradeOf(p.ID); ok && up == id {
			return p.ID, true
		}
	}
	return 0, false
}
