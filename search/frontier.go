package search

import (
	"container/heap"

	"github.com/chewxy/math32"
)

// pathObjective is the frontier-ordering key from §4.D: a cheap ranking
// heuristic computed without looking at children, distinct from the
// exact `objective` field. It tolerates float32 the way the teacher's
// mcts.Node scoring does, since it never participates in the
// epsilon-exact invariants of §8 — those stay float64 on combat.State.
func pathObjective(n *Node) float32 {
	s := &n.State
	v := 5*float32(s.HP) + 1000*float32(n.Depth)
	for i := range s.Monsters {
		m := &s.Monsters[i]
		if !m.Empty() {
			v += math32.Max(float32(m.MaxHP-m.HP), 0)
		}
	}
	return v
}

type frontierEntry struct {
	idx           nodeIndex
	pathObjective float32
	generation    int32
	sequence      int64
}

// frontierHeap is a max-heap on (pathObjective desc, sequence asc),
// matching §9's "do not use float equality for tie-breaking — fall
// back to a stable integer identity on numerical ties."
type frontierHeap []frontierEntry

func (h frontierHeap) Len() int { return len(h) }
func (h frontierHeap) Less(i, j int) bool {
	if h[i].pathObjective != h[j].pathObjective {
		return h[i].pathObjective > h[j].pathObjective
	}
	return h[i].sequence < h[j].sequence
}
func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(frontierEntry)) }
func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// insertFrontier pushes idx onto the frontier with a freshly-computed
// ranking key and the slot's current generation, so a later pop can
// detect whether the slot has since been recycled for something else.
func (t *Tree) insertFrontier(idx nodeIndex) {
	n := &t.nodes[idx]
	heap.Push(&t.frontier, frontierEntry{
		idx:           idx,
		pathObjective: pathObjective(n),
		generation:    n.Generation,
		sequence:      t.nextSequence(),
	})
}

// popFrontier returns the live node with the highest path_objective, or
// (nilNode, false) once every entry still on the heap is stale.
func (t *Tree) popFrontier() (nodeIndex, bool) {
	for t.frontier.Len() > 0 {
		e := heap.Pop(&t.frontier).(frontierEntry)
		if t.nodes[e.idx].Generation == e.generation {
			return e.idx, true
		}
	}
	return nilNode, false
}

func (t *Tree) insertTerminal(idx nodeIndex) {
	n := &t.nodes[idx]
	t.terminals = append(t.terminals, frontierEntry{idx: idx, generation: n.Generation})
}

func (t *Tree) nextSequence() int64 {
	t.sequence++
	return t.sequence
}
