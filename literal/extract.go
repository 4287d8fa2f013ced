// Package literal discovers a fixed anchor string — a literal prefix or, if
// none exists, a literal suffix — common to every string an NFA accepts,
// then rewires the automaton around it so it recognizes only what follows
// (or precedes) that anchor.
//
// The walk is NFA-structural: it inspects the compiled automaton's
// transition graph directly (see package nfa), not the regex syntax tree.
// That lets it see through alternation and repetition that happen to agree
// on their first (or last) character, at the cost of being conservative
// where the frontier's outgoing edges diverge — see extractPrefix and
// commonOutChar for the exact stopping rule, grounded on the frontier walk
// the source engine performs over its Thompson NFA.
package literal

import "github.com/coregx/earleygrep/nfa"

// Mode describes how a Result's Literal anchors matches against a line.
type Mode int

const (
	// None means no usable literal was found; the driver must simulate
	// every line offset directly.
	None Mode = iota
	// Prefix means Literal is a fixed prefix of every accepted string;
	// the rewired NFA matches the tail that follows it.
	Prefix
	// Suffix means Literal is a fixed suffix of every accepted string;
	// the rewired NFA (working over reversed text) matches the tail that
	// precedes it, read backward.
	Suffix
)

// Result is the outcome of Extract: the discovered anchor (possibly empty)
// and how it relates to the (possibly mutated) NFA it was extracted from.
type Result struct {
	Literal string
	Mode    Mode
}

// Extract discovers the longest fixed prefix of n, or — if none exists — a
// fixed suffix, rewiring n in place to recognize exactly the remainder
// (§4.4). If neither exists, n is left unchanged and Mode is None.
func Extract(n *nfa.NFA) Result {
	if prefix := extractPrefix(n); prefix != "" {
		rewirePrefix(n, prefix)
		return Result{Literal: prefix, Mode: Prefix}
	}
	if suffix := extractSuffix(n); suffix != "" {
		rewireSuffix(n, suffix)
		return Result{Literal: suffix, Mode: Suffix}
	}
	return Result{Mode: None}
}

// extractPrefix walks the frontier forward from n.Start per the four-step
// rule in spec §4.4, without mutating n. It returns the accumulated prefix,
// possibly empty.
func extractPrefix(n *nfa.NFA) string {
	frontier := map[nfa.StateID]bool{n.Start: true}
	var prefix []byte

	for len(frontier) > 0 {
		for s := range frontier {
			if n.IsAccept(s) {
				return string(prefix)
			}
		}
		for s := range frontier {
			if n.HasSelfLoop(s) {
				return string(prefix)
			}
		}

		c, ok := commonOutChar(n, frontier)
		if !ok {
			return string(prefix)
		}

		next := map[nfa.StateID]bool{}
		for s := range frontier {
			for t := range n.CharTargets(s, c) {
				next[t] = true
			}
		}
		prefix = append(prefix, c)
		frontier = next
	}
	return string(prefix)
}

// commonOutChar requires every state in frontier to have exactly one
// outgoing character transition, and that character to be the same across
// the whole frontier; otherwise ok is false.
func commonOutChar(n *nfa.NFA, frontier map[nfa.StateID]bool) (c byte, ok bool) {
	first := true
	for s := range frontier {
		chars := n.OutChars(s)
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

// rewirePrefix implements the prefix-mode rewiring of spec §4.4: a fresh
// start state epsilon-linked to the final frontier, then epsilon closure
// and reachability pruning rerun so the compiled NFA recognizes exactly
// the tails of accepted strings after prefix.
func rewirePrefix(n *nfa.NFA, prefix string) {
	frontier := frontierAfter(n, prefix)
	s := n.NewState()
	for t := range frontier {
		n.AddEpsilon(s, t)
	}
	n.Start = s
	nfa.Close(n)
	nfa.Prune(n)
}

// frontierAfter replays the deterministic walk extractPrefix performed,
// returning the frontier state set reached after consuming prefix.
func frontierAfter(n *nfa.NFA, prefix string) map[nfa.StateID]bool {
	frontier := map[nfa.StateID]bool{n.Start: true}
	for i := 0; i < len(prefix); i++ {
		next := map[nfa.StateID]bool{}
		for s := range frontier {
			for t := range n.CharTargets(s, prefix[i]) {
				next[t] = true
			}
		}
		frontier = next
	}
	return frontier
}
