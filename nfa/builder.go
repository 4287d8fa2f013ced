package nfa

import "github.com/coregx/earleygrep/grammar"

// frag is a fragment of the automaton under construction: one start state
// and the set of states that accept for this fragment alone. Every
// combinator below takes one or two frags and returns a new one, allocating
// any fresh state it needs directly in the shared NFA (so state identifiers
// are never reused and never collide — the rebasing the source does by
// shifting a subordinate NFA's IDs happens for free here because all
// combinators draw from the same counter).
type frag struct {
	start   StateID
	accepts []StateID
}

type builder struct {
	n *NFA
}

func (b *builder) literal(c byte) frag {
	s0 := b.n.newState()
	s1 := b.n.newState()
	b.n.addChar(s0, c, s1)
	return frag{start: s0, accepts: []StateID{s1}}
}

func (b *builder) class(set []byte) frag {
	s0 := b.n.newState()
	s1 := b.n.newState()
	for _, c := range set {
		b.n.addChar(s0, c, s1)
	}
	return frag{start: s0, accepts: []StateID{s1}}
}

func (b *builder) concat(a, c frag) frag {
	for _, acc := range a.accepts {
		b.n.addEps(acc, c.start)
	}
	return frag{start: a.start, accepts: c.accepts}
}

func (b *builder) union(a, c frag) frag {
	s := b.n.newState()
	b.n.addEps(s, a.start)
	b.n.addEps(s, c.start)
	accepts := append(append([]StateID{}, a.accepts...), c.accepts...)
	return frag{start: s, accepts: accepts}
}

func (b *builder) star(a frag) frag {
	for _, acc := range a.accepts {
		b.n.addEps(acc, a.start)
	}
	accepts := append(append([]StateID{}, a.accepts...), a.start)
	return frag{start: a.start, accepts: accepts}
}

func (b *builder) plus(a frag) frag {
	for _, acc := range a.accepts {
		b.n.addEps(acc, a.start)
	}
	return frag{start: a.start, accepts: a.accepts}
}

func (b *builder) question(a frag) frag {
	accepts := append(append([]StateID{}, a.accepts...), a.start)
	return frag{start: a.start, accepts: accepts}
}

// metaEscapes is the set of characters admissible after a backslash as a
// literal escape (as opposed to a character-class letter); see resyntax.
const metaEscapes = "|*()+?\\."

func isMetaEscape(c byte) bool {
	for i := 0; i < len(metaEscapes); i++ {
		if metaEscapes[i] == c {
			return true
		}
	}
	return false
}

// Compile builds an NFA from a collapsed regex parse tree (see resyntax and
// grammar.Parse), dispatching on each node's symbol per spec §4.3, then
// runs epsilon elimination and reachability pruning.
func Compile(tree *grammar.Node) (*NFA, error) {
	n := newNFA()
	b := &builder{n: n}
	f, err := b.build(tree)
	if err != nil {
		return nil, err
	}
	n.Start = f.start
	for _, a := range f.accepts {
		n.Accept[a] = true
	}
	epsilonClose(n)
	prune(n)
	return n, nil
}

func (b *builder) build(node *grammar.Node) (frag, error) {
	if node.IsTerminal() {
		if node.Char == '.' {
			return b.class(classDot), nil
		}
		return b.literal(node.Char), nil
	}

	switch node.Name {
	case "RE":
		return b.build(node.Children[0])

	case "Union":
		if len(node.Children) == 3 {
			left, err := b.build(node.Children[0])
			if err != nil {
				return frag{}, err
			}
			right, err := b.build(node.Children[2])
			if err != nil {
				return frag{}, err
			}
			return b.union(left, right), nil
		}
		return b.build(node.Children[0])

	case "Concat":
		if len(node.Children) == 2 {
			left, err := b.build(node.Children[0])
			if err != nil {
				return frag{}, err
			}
			right, err := b.build(node.Children[1])
			if err != nil {
				return frag{}, err
			}
			return b.concat(left, right), nil
		}
		return b.build(node.Children[0])

	case "Repeat":
		base, err := b.build(node.Children[0])
		if err != nil {
			return frag{}, err
		}
		if len(node.Children) == 1 {
			return base, nil
		}
		switch node.Children[1].Char {
		case '*':
			return b.star(base), nil
		case '+':
			return b.plus(base), nil
		case '?':
			return b.question(base), nil
		default:
			return frag{}, &BuildError{Message: "unknown repeat operator"}
		}

	case "Term":
		if len(node.Children) == 3 {
			return b.build(node.Children[1])
		}
		return b.build(node.Children[0])

	case "Literal":
		if len(node.Children) == 2 {
			second := node.Children[1].Char
			if isMetaEscape(second) {
				return b.literal(second), nil
			}
			set, ok := classByLetter(second)
			if !ok {
				return frag{}, &BuildError{Message: "unknown character class letter"}
			}
			return b.class(set), nil
		}
		return b.build(node.Children[0])

	default:
		return frag{}, &BuildError{Message: "unrecognized parse tree node: " + node.Name}
	}
}
