// Package report computes and renders the §4.G end-of-search
// statistics from a solved search.Tree's terminal set: the teacher has
// no analogue (a self-play trainer logs epochs, not a single solved
// outcome distribution), so this package's shape is grounded on
// spec.md §4.G/§6 directly, using gonum/stat for the percentile work
// the teacher already depends on for its MCTS prior distributions.
package report

import (
	"sort"

	"github.com/spiresolve/spiresolve/card"
	"github.com/spiresolve/spiresolve/search"
	"gonum.org/v1/gonum/stat"
)

// DeltaHP is one bucket of the Δhp histogram.
type DeltaHP struct {
	Delta       int
	Probability float64
}

// CardFrequency is one (turn, card) cell of the per-turn play
// frequency table, conditioned on having reached that turn. Only card
// plays are counted; per-turn draw frequencies are not computed.
type CardFrequency struct {
	Turn        int
	CardID      card.ID
	Probability float64
}

// Stats holds every §4.G statistic, computed once over a tree's full
// terminal set.
type Stats struct {
	StartHP int

	MeanDeltaHP float64
	MinDeltaHP  int
	MaxDeltaHP  int
	P5DeltaHP   float64
	P95DeltaHP  float64
	Histogram   []DeltaHP

	DeathProbability            float64
	ConditionalRemainingEnemyHP float64

	MeanTurnCount  float64
	TurnHistogram  []TurnCount

	PlayFrequency []CardFrequency
}

// TurnCount is one bucket of the turn-count distribution.
type TurnCount struct {
	Turn        int
	Probability float64
}

// Compute reduces a tree's terminal set into Stats. startHP is the
// root state's HP, needed to turn each terminal's absolute HP into a
// Δhp relative to battle start.
func Compute(startHP int, terminals []search.TerminalRecord) Stats {
	s := Stats{StartHP: startHP}
	if len(terminals) == 0 {
		return s
	}

	deltaTotals := map[int]float64{}
	turnTotals := map[int]float64{}
	reachTotals := map[int]float64{}
	type playKey struct {
		turn int
		id   card.ID
	}
	playTotals := map[playKey]float64{}

	var deathRemainingWeighted float64

	for _, term := range terminals {
		delta := term.HP - startHP
		deltaTotals[delta] += term.Probability
		s.MeanDeltaHP += float64(delta) * term.Probability

		turnTotals[term.TurnCount] += term.Probability
		s.MeanTurnCount += float64(term.TurnCount) * term.Probability

		if term.HP == 0 {
			s.DeathProbability += term.Probability
			deathRemainingWeighted += float64(term.RemainingEnemyHP) * term.Probability
		}

		for _, play := range term.Plays {
			playTotals[playKey{play.Turn, play.CardID}] += term.Probability
		}
		for turn := 1; turn <= term.TurnCount; turn++ {
			reachTotals[turn] += term.Probability
		}
	}

	if s.DeathProbability > 0 {
		s.ConditionalRemainingEnemyHP = deathRemainingWeighted / s.DeathProbability
	}

	deltas := make([]float64, 0, len(deltaTotals))
	for d := range deltaTotals {
		deltas = append(deltas, float64(d))
	}
	sort.Float64s(deltas)
	weights := make([]float64, len(deltas))
	for i, d := range deltas {
		weights[i] = deltaTotals[int(d)]
		s.Histogram = append(s.Histogram, DeltaHP{Delta: int(d), Probability: deltaTotals[int(d)]})
	}
	s.MinDeltaHP = int(deltas[0])
	s.MaxDeltaHP = int(deltas[len(deltas)-1])
	s.P5DeltaHP = stat.Quantile(0.05, stat.Empirical, deltas, weights)
	s.P95DeltaHP = stat.Quantile(0.95, stat.Empirical, deltas, weights)

	turns := make([]int, 0, len(turnTotals))
	for turn := range turnTotals {
		turns = append(turns, turn)
	}
	sort.Ints(turns)
	for _, turn := range turns {
		s.TurnHistogram = append(s.TurnHistogram, TurnCount{Turn: turn, Probability: turnTotals[turn]})
	}

	for key, prob := range playTotals {
		cond := prob
		if reach := reachTotals[key.turn]; reach > 0 {
			cond = prob / reach
		}
		s.PlayFrequency = append(s.PlayFrequency, CardFrequency{Turn: key.turn, CardID: key.id, Probability: cond})
	}
	sort.Slice(s.PlayFrequency, func(i, j int) bool {
		a, b := s.PlayFrequency[i], s.PlayFrequency[j]
		if a.Turn != b.Turn {
			return a.Turn < b.Turn
		}
		return a.CardID < b.CardID
	})

	return s
}
