// Package piles implements a canonicalizing interner for multisets of
// cards ("piles": draw, hand, discard, exhaust). Two piles built by
// different edit paths but holding the same multiset always resolve to
// the same Handle, so pile equality is a pointer/index comparison
// rather than a deep comparison.
package piles

import "sort"

// CardID indexes into whatever catalog the caller uses; the store
// itself is catalog-agnostic.
type CardID int

// Handle is an interned reference to one specific pile value. The zero
// Handle always refers to the empty pile.
type Handle int32

// Empty is the always-present empty-pile sentinel.
const Empty Handle = 0

// pair is one (card id, count) entry in a pile's canonical form.
type pair struct {
	ID    CardID
	Count int
}

type entry struct {
	pairs []pair // sorted by ID ascending
	total int

	// successor edges, materialized lazily on first miss (§4.B).
	add    map[CardID]Handle
	remove map[CardID]Handle
}

// Store is the shared multiset interner. It is not safe for concurrent
// use — per spec.md §5, the search that drives it is single-threaded.
type Store struct {
	entries []entry
	index   map[string]Handle // canonical-key -> handle, for first-miss lookups
}

// New returns a store pre-seeded with the empty-pile sentinel at Empty.
func New() *Store {
	s := &Store{
		entries: make([]entry, 1, 256),
		index:   make(map[string]Handle, 256),
	}
	s.entries[0] = entry{}
	s.index[canonicalKey(nil)] = Empty
	return s
}

// Count returns the total number of cards held by h.
func (s *Store) Count(h Handle) int {
	return s.entries[h].total
}

// CountCard returns the number of copies of id held by h.
func (s *Store) CountCard(h Handle, id CardID) int {
	for _, p := range s.entries[h].pairs {
		if p.ID == id {
			return p.Count
		}
		if p.ID > id {
			break
		}
	}
	return 0
}

// IsEmpty reports whether h is the empty pile.
func (s *Store) IsEmpty(h Handle) bool {
	return h == Empty
}

// Pairs returns the canonical (id, count) list for h. The caller must
// not mutate the returned slice.
func (s *Store) Pairs(h Handle) []pairView {
	src := s.entries[h].pairs
	out := make([]pairView, len(src))
	for i, p := range src {
		out[i] = pairView{ID: p.ID, Count: p.Count}
	}
	return out
}

// pairView is the exported read-only view of a canonical pair.
type pairView struct {
	ID    CardID
	Count int
}

// AddCard returns the interned handle for h plus one copy of id.
func (s *Store) AddCard(h Handle, id CardID) Handle {
	e := &s.entries[h]
	if e.add == nil {
		e.add = make(map[CardID]Handle, 4)
	}
	if next, ok := e.add[id]; ok {
		return next
	}

	next := s.internAfterEdit(h, id, +1)
	e = &s.entries[h] // s.entries may have grown; refresh pointer
	e.add[id] = next

	ne := &s.entries[next]
	if ne.remove == nil {
		ne.remove = make(map[CardID]Handle, 4)
	}
	ne.remove[id] = h
	return next
}

// AddCards adds n copies of id, one interned edge at a time.
func (s *Store) AddCards(h Handle, id CardID, n int) Handle {
	for i := 0; i < n; i++ {
		h = s.AddCard(h, id)
	}
	return h
}

// RemoveCard returns the interned handle for h minus one copy of id.
// Precondition: h contains at least one copy of id.
func (s *Store) RemoveCard(h Handle, id CardID) Handle {
	e := &s.entries[h]
	if e.remove == nil {
		e.remove = make(map[CardID]Handle, 4)
	}
	if next, ok := e.remove[id]; ok {
		return next
	}

	next := s.internAfterEdit(h, id, -1)
	e = &s.entries[h]
	e.remove[id] = next

	ne := &s.entries[next]
	if ne.add == nil {
		ne.add = make(map[CardID]Handle, 4)
	}
	ne.add[id] = h
	return next
}

// internAfterEdit builds the canonical form of h with id's count
// adjusted by delta, looks it up (or creates it), and returns its handle.
// It does not link the add/remove edge back onto h — callers do that,
// since which edge to set (add vs remove) depends on the edit direction.
func (s *Store) internAfterEdit(h Handle, id CardID, delta int) Handle {
	src := s.entries[h].pairs
	next := make([]pair, 0, len(src)+1)
	inserted := false
	total := s.entries[h].total + delta
	for _, p := range src {
		if p.ID == id {
			c := p.Count + delta
			if c > 0 {
				next = append(next, pair{ID: id, Count: c})
			}
			inserted = true
			continue
		}
		next = append(next, p)
	}
	if !inserted && delta > 0 {
		next = append(next, pair{ID: id, Count: delta})
		sort.Slice(next, func(i, j int) bool { return next[i].ID < next[j].ID })
	}

	key := canonicalKey(next)
	if handle, ok := s.index[key]; ok {
		return handle
	}
	handle := Handle(len(s.entries))
	s.entries = append(s.entries, entry{pairs: next, total: total})
	s.index[key] = handle
	return handle
}

func canonicalKey(pairs []pair) string {
	// A sorted (id,count) list has exactly one textual rendering; used
	// only as the first-miss hash-cons lookup key, never compared
	// directly by callers (handle identity is the real equality).
	b := make([]byte, 0, len(pairs)*8)
	for _, p := range pairs {
		b = appendVarint(b, int64(p.ID))
		b = append(b, ':')
		b = appendVarint(b, int64(p.Count))
		b = append(b, ',')
	}
	return string(b)
}

func appendVarint(b []byte, v int64) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	if v == 0 {
		return append(b, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(b, tmp[i:]...)
}
