package literal

import "github.com/coregx/earleygrep/nfa"

// reverseTrans is shaped exactly like nfa.NFA's own transition table, but
// edges point backward: reverseTrans[to][c][from] holds for every original
// (from, c, to) character transition.
type reverseTrans map[nfa.StateID]map[byte]map[nfa.StateID]bool

func reverseOf(n *nfa.NFA) reverseTrans {
	rev := reverseTrans{}
	for from, byChar := range n.Trans {
		for c, targets := range byChar {
			for to := range targets {
				m, ok := rev[to]
				if !ok {
					m = map[byte]map[nfa.StateID]bool{}
					rev[to] = m
				}
				ts, ok := m[c]
				if !ok {
					ts = map[nfa.StateID]bool{}
					m[c] = ts
				}
				ts[from] = true
			}
		}
	}
	return rev
}

func (r reverseTrans) outChars(s nfa.StateID) []byte {
	m := r[s]
	if len(m) == 0 {
		return nil
	}
	out := make([]byte, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	return out
}

func (r reverseTrans) hasSelfLoop(s nfa.StateID) bool {
	for _, targets := range r[s] {
		if targets[s] {
			return true
		}
	}
	return false
}

// extractSuffix walks the frontier backward from n's accept states over
// the reverse transition relation, per spec §4.4's suffix algorithm. The
// characters are accumulated in traversal order — accept-toward-start,
// i.e. back to front — and reversed before return.
func extractSuffix(n *nfa.NFA) string {
	rev := reverseOf(n)
	frontier := map[nfa.StateID]bool{}
	for s := range n.Accept {
		frontier[s] = true
	}

	var reversed []byte
	for len(frontier) > 0 {
		for s := range frontier {
			if s == n.Start {
				return reverseBytes(reversed)
			}
		}
		for s := range frontier {
			if rev.hasSelfLoop(s) {
				return reverseBytes(reversed)
			}
		}

		c, ok := commonOutCharRev(rev, frontier)
		if !ok {
			return reverseBytes(reversed)
		}

		next := map[nfa.StateID]bool{}
		for s := range frontier {
			for t := range rev[s][c] {
				next[t] = true
			}
		}
		reversed = append(reversed, c)
		frontier = next
	}
	return reverseBytes(reversed)
}

func commonOutCharRev(rev reverseTrans, frontier map[nfa.StateID]bool) (c byte, ok bool) {
	first := true
	for s := range frontier {
		chars := rev.outChars(s)
		if len(chars) != 1 {
			return 0, false
		}
		if first {
			c = chars[0]
			first = false
			continue
		}
		if chars[0] != c {
			return 0, false
		}
	}
	return c, true
}

func reverseBytes(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return string(out)
}

// rewireSuffix implements the suffix-mode rewiring of spec §4.4: the
// reversed transition table becomes the working transitions, the old start
// becomes the sole accept, and a fresh start epsilon-links to the frontier
// reached after consuming suffix backward from the accepts. Callers must
// feed reversed line text to the simulator against the result.
func rewireSuffix(n *nfa.NFA, suffix string) {
	rev := reverseOf(n)
	frontier := map[nfa.StateID]bool{}
	for s := range n.Accept {
		frontier[s] = true
	}
	// Replay the walk to find the frontier reached after consuming the
	// full (un-reversed-order) suffix backward, i.e. iterating suffix's
	// characters from its last to its first.
	for i := len(suffix) - 1; i >= 0; i-- {
		next := map[nfa.StateID]bool{}
		for s := range frontier {
			for t := range rev[s][suffix[i]] {
				next[t] = true
			}
		}
		frontier = next
	}

	oldStart := n.Start
	newAccept := map[nfa.StateID]bool{oldStart: true}

	newTrans := make(map[nfa.StateID]map[byte]map[nfa.StateID]bool, len(rev))
	for s, byChar := range rev {
		m := make(map[byte]map[nfa.StateID]bool, len(byChar))
		for c, targets := range byChar {
			ts := make(map[nfa.StateID]bool, len(targets))
			for t := range targets {
				ts[t] = true
			}
			m[c] = ts
		}
		newTrans[s] = m
	}
	n.Trans = newTrans
	n.Accept = newAccept

	s := n.NewState()
	for t := range frontier {
		n.AddEpsilon(s, t)
	}
	n.Start = s
	nfa.Close(n)
	nfa.Prune(n)
}
