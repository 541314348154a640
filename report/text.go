package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/spiresolve/spiresolve/card"
	"github.com/spiresolve/spiresolve/combat"
	"github.com/spiresolve/spiresolve/search"
)

// WriteSummary renders the §6 "human-readable report" to w: expected
// Δhp, 5/95-percentile, turn length, death chance with conditional
// remaining enemy HP, and per-turn per-card frequencies.
func WriteSummary(w io.Writer, s Stats) {
	fmt.Fprintf(w, "expected hp change: %+.3f (min %+d, max %+d, p5 %+.1f, p95 %+.1f)\n",
		s.MeanDeltaHP, s.MinDeltaHP, s.MaxDeltaHP, s.P5DeltaHP, s.P95DeltaHP)
	fmt.Fprintf(w, "death probability: %.4f", s.DeathProbability)
	if s.DeathProbability > 0 {
		fmt.Fprintf(w, " (conditional remaining enemy hp: %.2f)", s.ConditionalRemainingEnemyHP)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "expected turn count: %.3f\n", s.MeanTurnCount)

	fmt.Fprintln(w, "turn-count distribution:")
	for _, tc := range s.TurnHistogram {
		fmt.Fprintf(w, "  turn %d: %.4f\n", tc.Turn, tc.Probability)
	}

	fmt.Fprintln(w, "per-turn play frequency:")
	for _, f := range s.PlayFrequency {
		fmt.Fprintf(w, "  turn %d, %s: %.4f\n", f.Turn, card.Get(f.CardID).Name, f.Probability)
	}
}

// printableTreeCeiling is the §6 "fixed printable-tree ceiling": above
// this many live nodes, WriteTree declines to dump (the tree would be
// too large to be useful as text).
const printableTreeCeiling = 5000

// WriteTree dumps the solved tree to w as an indented text outline
// (§6 tree.txt), gated on the printable-tree ceiling.
func WriteTree(w io.Writer, t *search.Tree) error {
	if t.LiveNodeCount() > printableTreeCeiling {
		fmt.Fprintf(w, "(tree has %d nodes, exceeding the %d-node printable ceiling; skipped)\n",
			t.LiveNodeCount(), printableTreeCeiling)
		return nil
	}
	dumpNode(w, t, t.RootID(), 0)
	return nil
}

func dumpNode(w io.Writer, t *search.Tree, id search.NodeID, depth int) {
	indent := strings.Repeat("  ", depth)
	s := t.State(id)
	action := t.ParentAction(id)
	fmt.Fprintf(w, "%s%s (p=%.4f obj=%.3f hp=%d turn=%d)\n",
		indent, describeAction(action), s.Probability, s.Objective, s.HP, s.Turn)
	for _, child := range t.ChildrenOf(id) {
		dumpNode(w, t, child, depth+1)
	}
}

func describeAction(a combat.PlayerAction) string {
	switch {
	case a.Decision && a.EndTurn:
		return "end turn"
	case a.Decision:
		return fmt.Sprintf("play %s -> %d", card.Get(a.CardID).Name, a.Target)
	default:
		return "chance"
	}
}
