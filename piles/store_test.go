package piles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterningIsPathIndependent(t *testing.T) {
	s := New()

	// path 1: add 2 strikes then a defend
	a := s.AddCards(Empty, 1, 2)
	a = s.AddCard(a, 2)

	// path 2: add defend then 2 strikes, one at a time
	b := s.AddCard(Empty, 2)
	b = s.AddCard(b, 1)
	b = s.AddCard(b, 1)

	require.Equal(t, a, b, "two piles with identical multisets must share a handle")
	require.Equal(t, 3, s.Count(a))
}

func TestAddRemoveRoundTrip(t *testing.T) {
	s := New()
	h := s.AddCards(Empty, 1, 3)
	h2 := s.RemoveCard(h, 1)
	h2 = s.AddCard(h2, 1)
	require.Equal(t, h, h2)
}

func TestRemoveToEmptyReturnsSentinel(t *testing.T) {
	s := New()
	h := s.AddCard(Empty, 5)
	h = s.RemoveCard(h, 5)
	require.Equal(t, Empty, h)
	require.True(t, s.IsEmpty(h))
}

func TestSelectProbabilitiesSumToOne(t *testing.T) {
	s := New()
	h := s.AddCards(Empty, 1, 3) // 3 Strikes
	h = s.AddCards(h, 2, 2)      // 2 Defends

	outcomes := s.Select(h, 2)
	var sum float64
	for _, o := range outcomes {
		sum += o.Probability
		require.Equal(t, 2, s.Count(o.Drawn))
		require.Equal(t, 3, s.Count(o.Remaining))
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestSelectInvariantUnderAddOrder(t *testing.T) {
	s := New()
	h1 := s.AddCards(Empty, 1, 2)
	h1 = s.AddCards(h1, 2, 1)

	h2 := s.AddCard(Empty, 2)
	h2 = s.AddCard(h2, 1)
	h2 = s.AddCard(h2, 1)

	require.Equal(t, h1, h2)
	o1 := s.Select(h1, 2)
	o2 := s.Select(h2, 2)
	require.Equal(t, len(o1), len(o2))
}

func TestSelectDrawingEntirePile(t *testing.T) {
	s := New()
	h := s.AddCards(Empty, 1, 2)
	outcomes := s.Select(h, 2)
	require.Len(t, outcomes, 1)
	require.Equal(t, h, outcomes[0].Drawn)
	require.Equal(t, Empty, outcomes[0].Remaining)
	require.InDelta(t, 1.0, outcomes[0].Probability, 1e-12)
}

func TestDeckWorseOrEqualUpgradeMonotonicity(t *testing.T) {
	s := New()
	const strike, strikePlus, defend = 1, 2, 3
	upgradeOf := func(id CardID) (CardID, bool) {
		if id == strike {
			return strikePlus, true
		}
		return 0, false
	}

	base := s.AddCards(Empty, strike, 2)
	base = s.AddCard(base, defend)

	upgraded := s.AddCard(Empty, strikePlus)
	upgraded = s.AddCard(upgraded, strike)
	upgraded = s.AddCard(upgraded, defend)

	require.True(t, s.DeckWorseOrEqual(base, upgraded, upgradeOf))
	require.False(t, s.DeckWorseOrEqual(upgraded, base, upgradeOf))
}
