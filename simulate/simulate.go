// Package simulate runs a compiled, epsilon-free NFA over a line of text,
// finding leftmost-longest match ends — either for every possible start
// offset (no anchor) or for a known ascending set of anchor offsets
// produced by package boyermoore.
//
// Both entry points are deterministic-time in the line length: each
// maintains a live-state set no larger than the automaton itself, using
// internal/sparse for O(1) membership and iteration.
package simulate

import (
	"github.com/coregx/earleygrep/internal/sparse"
	"github.com/coregx/earleygrep/nfa"
)

// NoAnchor runs the NFA over line with no pre-filtering: every line offset
// is a candidate match start. The result end has length len(line); end[i]
// is the exclusive end of the longest match recorded for start i, or -1 if
// none. When the threads of two starts reach the same automaton state, only
// the smaller start is carried forward, so end[i] for the larger start can
// be shorter than the longest match beginning there (never longer).
//
// A position where the automaton accepts without consuming a character
// (e.g. "a*" at any offset) records end[i] == i — a genuine zero-length
// match, distinguishable from "no match". The source this engine was
// distilled from instead recorded i+1 for this case, which is
// indistinguishable from a real one-character match and made empty-match
// suppression impossible to implement correctly; this is the resolution
// to the "empty-match semantics" open question (see search.Config).
func NoAnchor(n *nfa.NFA, line []byte) []int {
	end := make([]int, len(line))
	for i := range end {
		end[i] = -1
	}
	if len(line) == 0 {
		return end
	}

	capacity := uint32(n.NumStates())
	cur := sparse.NewSparseSet(capacity)
	curOrigin := make([]int, capacity)
	next := sparse.NewSparseSet(capacity)
	nextOrigin := make([]int, capacity)

	start := uint32(n.Start)
	for i := 0; i < len(line); i++ {
		if !cur.Contains(start) {
			cur.Insert(start)
			curOrigin[start] = i
		}
		if n.IsAccept(n.Start) {
			end[i] = i
		}

		next.Clear()
		c := line[i]
		cur.Iter(func(s uint32) {
			origin := curOrigin[s]
			for u := range n.CharTargets(nfa.StateID(s), c) {
				uu := uint32(u)
				if next.Contains(uu) {
					if origin < nextOrigin[uu] {
						nextOrigin[uu] = origin
					}
				} else {
					next.Insert(uu)
					nextOrigin[uu] = origin
				}
			}
		})
		cur, next = next, cur
		curOrigin, nextOrigin = nextOrigin, curOrigin

		cur.Iter(func(s uint32) {
			if n.IsAccept(nfa.StateID(s)) {
				o := curOrigin[s]
				if i+1 > end[o] {
					end[o] = i + 1
				}
			}
		})
	}
	return end
}

// Anchored runs the NFA starting fresh at each offset in starts (ascending
// literal-end offsets from package boyermoore), skipping any anchor whose
// implied match start has already been covered by a prior non-overlapping
// match. out has the same length as starts; out[k] is the exclusive match
// end for starts[k], or 0 if that anchor produced no match (including
// skipped anchors).
func Anchored(n *nfa.NFA, line []byte, starts []int, literalLen int) []int {
	out := make([]int, len(starts))
	endIdx := 0

	capacity := uint32(n.NumStates())
	live := sparse.NewSparseSet(capacity)
	next := sparse.NewSparseSet(capacity)

	for k, anchorEnd := range starts {
		matchStart := anchorEnd - literalLen
		if matchStart < endIdx {
			continue
		}

		if n.IsAccept(n.Start) {
			endIdx = anchorEnd
			out[k] = endIdx
		}

		live.Clear()
		live.Insert(uint32(n.Start))
		pos := anchorEnd
		for pos < len(line) {
			c := line[pos]
			next.Clear()
			live.Iter(func(s uint32) {
				for u := range n.CharTargets(nfa.StateID(s), c) {
					next.Insert(uint32(u))
				}
			})
			if next.IsEmpty() {
				break
			}
			live, next = next, live
			pos++

			accepted := false
			live.Iter(func(s uint32) {
				if n.IsAccept(nfa.StateID(s)) {
					accepted = true
				}
			})
			if accepted {
				endIdx = pos
				out[k] = endIdx
			}
		}
	}
	return out
}
