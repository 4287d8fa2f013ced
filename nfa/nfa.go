// Package nfa implements Thompson-style NFA construction from a collapsed
// regex parse tree, followed by epsilon elimination and unreachable-state
// pruning.
//
// The automaton model is deliberately simple: states are dense integers,
// transitions are a mapping from state to {label -> set of states}, and a
// label is either epsilon or a single literal byte. This is not a
// byte-range/sparse-table NFA tuned for a general regexp/syntax AST; it is
// built directly from the grammar package's parse tree (see resyntax), one
// state-graph mutation at a time, matching how the source this engine was
// distilled from represents its automaton.
package nfa

import "github.com/coregx/earleygrep/internal/conv"

// StateID identifies one NFA state. Identifiers are dense in [0, n) once an
// NFA has been through Prune.
type StateID uint32

// NFA is the automaton: a start state, a set of accept states, and a
// transition table keyed by state and label. Epsilon transitions are held
// separately from character transitions so epsilon elimination can drop the
// whole eps table in one step once it has done its work.
type NFA struct {
	Start   StateID
	Accept  map[StateID]bool
	Trans   map[StateID]map[byte]map[StateID]bool
	Eps     map[StateID]map[StateID]bool
	nextID  StateID
	nstates int
}

func newNFA() *NFA {
	return &NFA{
		Accept: make(map[StateID]bool),
		Trans:  make(map[StateID]map[byte]map[StateID]bool),
		Eps:    make(map[StateID]map[StateID]bool),
	}
}

// NumStates returns the current number of allocated states (not
// necessarily dense; call Prune first for a dense count).
func (n *NFA) NumStates() int { return n.nstates }

func (n *NFA) newState() StateID {
	id := n.nextID
	n.nextID++
	n.nstates++
	return id
}

func (n *NFA) addChar(from StateID, c byte, to StateID) {
	m, ok := n.Trans[from]
	if !ok {
		m = make(map[byte]map[StateID]bool)
		n.Trans[from] = m
	}
	targets, ok := m[c]
	if !ok {
		targets = make(map[StateID]bool)
		m[c] = targets
	}
	targets[to] = true
}

func (n *NFA) addEps(from, to StateID) {
	if from == to {
		return
	}
	m, ok := n.Eps[from]
	if !ok {
		m = make(map[StateID]bool)
		n.Eps[from] = m
	}
	m[to] = true
}

// IsAccept reports whether s is an accept state.
func (n *NFA) IsAccept(s StateID) bool { return n.Accept[s] }

// CharTargets returns the (possibly nil) set of states reachable from s on
// byte c.
func (n *NFA) CharTargets(s StateID, c byte) map[StateID]bool {
	m := n.Trans[s]
	if m == nil {
		return nil
	}
	return m[c]
}

// OutChars returns the distinct bytes s has a character transition on.
func (n *NFA) OutChars(s StateID) []byte {
	m := n.Trans[s]
	if len(m) == 0 {
		return nil
	}
	out := make([]byte, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	return out
}

// HasSelfLoop reports whether s has a character transition back to itself.
func (n *NFA) HasSelfLoop(s StateID) bool {
	for _, targets := range n.Trans[s] {
		if targets[s] {
			return true
		}
	}
	return false
}

func toID(i int) StateID { return StateID(conv.IntToUint32(i)) }

// NewState allocates and returns a fresh state identifier. Exported for
// package literal's rewiring step, which introduces a new start state when
// it anchors the automaton around an extracted literal.
func (n *NFA) NewState() StateID { return n.newState() }

// AddEpsilon adds an epsilon transition from -> to. Exported for package
// literal's rewiring step.
func (n *NFA) AddEpsilon(from, to StateID) { n.addEps(from, to) }

// Close eliminates all epsilon transitions in n in place.
func Close(n *NFA) { epsilonClose(n) }

// Prune removes states unreachable from n.Start and densely renumbers what
// remains, in place.
func Prune(n *NFA) { prune(n) }
