package piles

import "math/big"

// Outcome is one way of drawing k cards from a pile.
type Outcome struct {
	Probability float64
	Drawn       Handle
	Remaining   Handle
}

// Select enumerates the exhaustive set of ways to draw exactly k cards
// from pile h (§4.B). Probabilities derive from the multiset
// hypergeometric distribution: for multiplicities m1..mn and draw k,
// each multi-index (k1..kn) with sum k has probability
// Π C(mi,ki) / C(Σmi, k). Enumeration order is lexicographic-descending
// over (k1..kn), matching the card types' ascending-id canonical order.
func (s *Store) Select(h Handle, k int) []Outcome {
	src := s.entries[h].pairs
	total := s.entries[h].total
	if k <= 0 || total == 0 {
		return []Outcome{{Probability: 1, Drawn: Empty, Remaining: h}}
	}
	if k > total {
		k = total
	}

	denom := binomial(total, k)
	var out []Outcome

	counts := make([]int, len(src))
	var recurse func(idx, remainingDraw, remainingPool int)
	recurse = func(idx, remainingDraw, remainingPool int) {
		if idx == len(src) {
			if remainingDraw != 0 {
				return
			}
			out = append(out, s.materializeOutcome(h, src, counts, denom))
			return
		}
		m := src[idx].Count
		poolAfter := remainingPool - m
		// ki ranges from high to low -> lexicographic-descending scan.
		maxKi := m
		if maxKi > remainingDraw {
			maxKi = remainingDraw
		}
		minKi := remainingDraw - poolAfter
		if minKi < 0 {
			minKi = 0
		}
		for ki := maxKi; ki >= minKi; ki-- {
			counts[idx] = ki
			recurse(idx+1, remainingDraw-ki, poolAfter)
		}
		counts[idx] = 0
	}
	recurse(0, k, total)
	return out
}

func (s *Store) materializeOutcome(h Handle, src []pair, counts []int, denom *big.Int) Outcome {
	num := big.NewInt(1)
	drawn := Empty
	remaining := h
	for i, p := range src {
		ki := counts[i]
		num.Mul(num, binomial(p.Count, ki))
		for j := 0; j < ki; j++ {
			drawn = s.AddCard(drawn, p.ID)
			remaining = s.RemoveCard(remaining, p.ID)
		}
	}
	prob := new(big.Rat).SetFrac(num, denom)
	f, _ := prob.Float64()
	return Outcome{Probability: f, Drawn: drawn, Remaining: remaining}
}

var binomialCache = map[[2]int]*big.Int{}

// binomial computes C(n, r) exactly via big.Int, memoized, matching
// SPEC_FULL's "avoid overflow for large hands" note.
func binomial(n, r int) *big.Int {
	if r < 0 || r > n {
		return big.NewInt(0)
	}
	key := [2]int{n, r}
	if v, ok := binomialCache[key]; ok {
		return v
	}
	if r > n-r {
		r = n - r
	}
	result := big.NewInt(1)
	for i := 0; i < r; i++ {
		result.Mul(result, big.NewInt(int64(n-i)))
		result.Div(result, big.NewInt(int64(i+1)))
	}
	binomialCache[key] = result
	return result
}
