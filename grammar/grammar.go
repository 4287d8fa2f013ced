// Package grammar implements a general context-free grammar representation
// and an Earley recognizer/parser that produces a collapsed parse tree for
// any admissible grammar.
//
// The parser is deliberately generic: it knows nothing about regular
// expressions. resyntax builds the concrete grammar this engine parses
// regex patterns with; grammar only knows about Symbol, Production, and
// Grammar.
package grammar

// Symbol is either a terminal (a single input character) or a non-terminal
// (an interned grammar symbol name). Symbols appear only in grammar
// productions and in the parse tree they produce.
type Symbol struct {
	Terminal    byte
	NonTerminal string
	isTerminal  bool
}

// Term constructs a terminal symbol matching the literal byte c.
func Term(c byte) Symbol {
	return Symbol{Terminal: c, isTerminal: true}
}

// NT constructs a non-terminal symbol named name.
func NT(name string) Symbol {
	return Symbol{NonTerminal: name}
}

// IsTerminal reports whether s is a terminal.
func (s Symbol) IsTerminal() bool { return s.isTerminal }

// String returns a short human-readable form, used by error messages and
// debug output; it is not a serialization format.
func (s Symbol) String() string {
	if s.isTerminal {
		return string(rune(s.Terminal))
	}
	return s.NonTerminal
}

// Production is an ordered sequence of symbols, the right-hand side of a
// grammar rule.
type Production []Symbol

// Grammar is a start non-terminal plus a mapping from each non-terminal to
// an ordered list of productions. The mapping is insertion-built by the
// caller and is read-only once parsing begins.
type Grammar struct {
	Start string
	Rules map[string][]Production
}

// New creates an empty grammar rooted at start.
func New(start string) *Grammar {
	return &Grammar{Start: start, Rules: make(map[string][]Production)}
}

// Add appends a production for lhs. Productions for a given lhs are tried
// in the order they were added; this matters only for which of several
// ambiguous parses the recognizer happens to return (§4.1's ambiguity
// policy), not for recognition itself.
func (g *Grammar) Add(lhs string, rhs ...Symbol) {
	g.Rules[lhs] = append(g.Rules[lhs], Production(rhs))
}

// productions returns the productions for non-terminal name, or nil if
// name has none (an empty non-terminal never matches anything).
func (g *Grammar) productions(name string) []Production {
	return g.Rules[name]
}
