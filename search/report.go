package search

import "github.com/spiresolve/spiresolve/card"

// CardPlay records one card played along a terminal's ancestry, with
// the turn number it was played on (§4.G per-turn frequencies).
type CardPlay struct {
	Turn   int
	CardID card.ID
}

// TerminalRecord summarizes one solved terminal leaf for report.Compute
// (§4.G), without exposing the tree's internal node/arena
// representation to the report package.
type TerminalRecord struct {
	Probability      float64 // unconditional: product of ancestral probabilities
	HP               int
	TurnCount        int
	RemainingEnemyHP int
	Plays            []CardPlay
}

// Terminals returns every live terminal leaf reachable in the solved
// tree. Stale entries (whose slot has since been recycled) are skipped.
func (t *Tree) Terminals() []TerminalRecord {
	var out []TerminalRecord
	for _, e := range t.terminals {
		if t.nodes[e.idx].Generation != e.generation {
			continue
		}
		out = append(out, t.terminalRecord(e.idx))
	}
	return out
}

func (t *Tree) terminalRecord(idx nodeIndex) TerminalRecord {
	leaf := &t.nodes[idx].State
	rec := TerminalRecord{HP: leaf.HP, TurnCount: leaf.Turn}
	for i := range leaf.Monsters {
		if leaf.Monsters[i].Alive() {
			rec.RemainingEnemyHP += leaf.Monsters[i].HP
		}
	}

	// Walk strictly up to, but not including, the root: the root carries
	// no ancestral branch probability of its own (search.Solve seeds it
	// at 1 for callers that read it directly, but a stray unseeded root
	// must never silently zero out every terminal's probability).
	prob := 1.0
	cur := idx
	for cur.valid() && cur != t.root {
		n := &t.nodes[cur]
		prob *= n.State.Probability
		if n.State.Parent.Decision && !n.State.Parent.EndTurn {
			rec.Plays = append(rec.Plays, CardPlay{Turn: n.State.Turn, CardID: n.State.Parent.CardID})
		}
		cur = n.Parent
	}
	rec.Probability = prob
	return rec
}
