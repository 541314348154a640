package search

// UpdateTree implements §4.F: starting at start, recompute its
// objective/solved status from its current children, then continue to
// its parent, stopping as soon as a node's recomputed value is
// unchanged from before (a fixed point — §8 property 4).
func (t *Tree) UpdateTree(start nodeIndex) {
	cur := start
	for cur.valid() {
		if !t.recompute(cur) {
			return
		}
		cur = t.nodes[cur].Parent
	}
}

// recompute applies §4.F's three cases to node a and reports whether
// its objective or solved flag changed.
func (t *Tree) recompute(a nodeIndex) bool {
	kids := t.children[a]
	if len(kids) == 0 {
		// Leaf: objective/solved were set at creation time (terminal
		// finalization or max_possible_objective seeding).
		return false
	}

	s := &t.nodes[a].State
	oldObj, oldSolved := s.Objective, s.TreeSolved

	if len(kids) == 1 {
		k := kids[0]
		s.Objective = t.nodes[k].State.Objective
		s.TreeSolved = t.nodes[k].State.TreeSolved
		return s.Objective != oldObj || s.TreeSolved != oldSolved
	}

	if s.HasPendingAction() {
		t.recomputeChanceParent(a, kids)
	} else {
		t.recomputeDecisionParent(a, kids)
	}
	s = &t.nodes[a].State
	discarding := t.MemoryDiscardThreshold > 0 && t.Created > t.MemoryDiscardThreshold
	if s.TreeSolved && len(t.children[a]) == 0 && !discarding {
		panic("search: solved node left with no children outside the memory-discard policy")
	}
	return s.Objective != oldObj || s.TreeSolved != oldSolved
}

func (t *Tree) recomputeChanceParent(a nodeIndex, kids []nodeIndex) {
	var sumP, sumPO float64
	allSolved := true
	for _, k := range kids {
		ks := &t.nodes[k].State
		sumP += ks.Probability
		sumPO += ks.Probability * ks.Objective
		if !ks.TreeSolved {
			allSolved = false
		}
	}
	s := &t.nodes[a].State
	if sumP > 0 {
		s.Objective = sumPO / sumP
	}
	s.TreeSolved = allSolved
	if allSolved && t.MemoryDiscardThreshold > 0 && t.Created > t.MemoryDiscardThreshold {
		t.discardChildren(a)
	}
}

func (t *Tree) recomputeDecisionParent(a nodeIndex, kids []nodeIndex) {
	if t.nodes[a].State.HasPendingAction() {
		panic("search: recomputeDecisionParent called on a node with a pending chance action")
	}

	var maxSolvedIdx, maxUnsolvedIdx nodeIndex = nilNode, nilNode
	var maxSolved, maxUnsolved float64
	haveSolved, haveUnsolved := false, false
	for _, k := range kids {
		obj := t.nodes[k].State.Objective
		if t.nodes[k].State.TreeSolved {
			if !haveSolved || obj > maxSolved {
				maxSolved, maxSolvedIdx, haveSolved = obj, k, true
			}
		} else {
			if !haveUnsolved || obj > maxUnsolved {
				maxUnsolved, maxUnsolvedIdx, haveUnsolved = obj, k, true
			}
		}
	}
	_ = maxUnsolvedIdx
	s := &t.nodes[a].State

	switch {
	case haveSolved && !haveUnsolved:
		for _, k := range kids {
			if k != maxSolvedIdx {
				t.DeleteSubtree(k, true)
			}
		}
		t.children[a] = []nodeIndex{maxSolvedIdx}
		s.TreeSolved = true
		s.Objective = maxSolved
		if t.MemoryDiscardThreshold > 0 && t.Created > t.MemoryDiscardThreshold {
			t.discardChildren(a)
		}

	case !haveSolved:
		s.Objective = maxUnsolved
		s.TreeSolved = false

	default:
		kept := make([]nodeIndex, 0, len(kids))
		for _, k := range kids {
			switch {
			case k == maxSolvedIdx:
				kept = append(kept, k)
			case t.nodes[k].State.TreeSolved, t.nodes[k].State.Objective <= maxSolved:
				t.DeleteSubtree(k, true)
			default:
				kept = append(kept, k)
			}
		}
		t.children[a] = kept
		if len(kept) == 1 {
			s.TreeSolved = true
		}
		best := maxSolved
		if maxUnsolved > best {
			best = maxUnsolved
		}
		s.Objective = best
	}
}

// discardChildren implements §4.F's memory policy: once the tree has
// grown past MemoryDiscardThreshold, a solved node's children are
// dropped immediately after their contribution lands on the parent.
// Their objective and the one-line decomposition already recorded on
// the parent are sufficient for reporting.
func (t *Tree) discardChildren(a nodeIndex) {
	for _, k := range t.children[a] {
		t.DeleteSubtree(k, true)
	}
	t.children[a] = t.children[a][:0]
}
