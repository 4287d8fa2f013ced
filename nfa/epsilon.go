package nfa

// epsilonClose eliminates every epsilon transition: for each state s, the
// transitive closure of states reachable by epsilon alone is folded into
// s's own character transitions and accept status, then the epsilon table
// is discarded entirely. After this call NFA.Eps is empty and invariant 1
// (no epsilon transitions remain) holds.
func epsilonClose(n *NFA) {
	closures := make(map[StateID]map[StateID]bool, n.nstates)
	for s := StateID(0); int(s) < n.nstates; s++ {
		closures[s] = epsilonClosureOf(n, s)
	}

	for s := StateID(0); int(s) < n.nstates; s++ {
		for t := range closures[s] {
			if n.Accept[t] {
				n.Accept[s] = true
			}
			for c, targets := range n.Trans[t] {
				for u := range targets {
					n.addChar(s, c, u)
				}
			}
		}
	}

	n.Eps = make(map[StateID]map[StateID]bool)
}

// epsilonClosureOf returns the set of states reachable from s by one or
// more epsilon transitions (s itself is included so the fold-in loop above
// also picks up s's own direct character transitions).
func epsilonClosureOf(n *NFA, s StateID) map[StateID]bool {
	closure := map[StateID]bool{s: true}
	stack := []StateID{s}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for t := range n.Eps[cur] {
			if !closure[t] {
				closure[t] = true
				stack = append(stack, t)
			}
		}
	}
	return closure
}

// prune runs a forward DFS from start, keeps only reachable states, and
// renumbers them densely in [0, n) in the order first visited — satisfying
// the Design Notes' "renumber during prune for cache-friendly simulator
// loops" guidance. Invoked after initial epsilon elimination and again
// after literal-extraction rewiring (see package literal).
func prune(n *NFA) {
	order := []StateID{}
	visited := map[StateID]bool{}
	stack := []StateID{n.Start}
	visited[n.Start] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, cur)
		for _, targets := range n.Trans[cur] {
			for t := range targets {
				if !visited[t] {
					visited[t] = true
					stack = append(stack, t)
				}
			}
		}
	}

	// order is a DFS discovery order (LIFO), not sorted; renumber by that
	// order so identifiers stay dense without requiring a particular
	// traversal shape from callers.
	remap := make(map[StateID]StateID, len(order))
	for i, s := range order {
		remap[s] = toID(i)
	}

	newTrans := make(map[StateID]map[byte]map[StateID]bool, len(order))
	newAccept := make(map[StateID]bool, len(n.Accept))
	for _, old := range order {
		newID := remap[old]
		for c, targets := range n.Trans[old] {
			for t := range targets {
				if nt, ok := remap[t]; ok {
					m, ok := newTrans[newID]
					if !ok {
						m = make(map[byte]map[StateID]bool)
						newTrans[newID] = m
					}
					ts, ok := m[c]
					if !ok {
						ts = make(map[StateID]bool)
						m[c] = ts
					}
					ts[nt] = true
				}
			}
		}
		if n.Accept[old] {
			newAccept[newID] = true
		}
	}

	n.Trans = newTrans
	n.Accept = newAccept
	n.Start = remap[n.Start]
	n.nextID = toID(len(order))
	n.nstates = len(order)
}
