// Package resyntax supplies the one concrete grammar this engine parses:
// the regular expression surface described by spec §4.2. It is a thin,
// fixed instance of grammar.Grammar — all of the recognition machinery
// lives in package grammar.
package resyntax

import (
	"fmt"

	"github.com/coregx/earleygrep/grammar"
)

// metaChars is the set of characters with syntactic meaning; each must be
// escaped with a leading backslash to be matched literally.
const metaChars = "|*()+?\\."

// classLetters are the single letters admissible after a backslash to name
// a built-in character class (§4.3.1); nfa.Compile maps each to a byte set.
const classLetters = "sSdDwW"

// Grammar constructs the RE grammar:
//
//	RE     -> Union
//	Union  -> Union '|' Concat | Concat
//	Concat -> Concat Repeat      | Repeat
//	Repeat -> Term '*' | Term '+' | Term '?' | Term
//	Term   -> '(' Union ')' | Literal
//	Literal-> <printable char not in metaChars, or tab>
//	        | '\' <metaChars char>
//	        | '.'
//	        | '\' <classLetters char>
//
// Left recursion in Union and Concat enforces left-associativity, matching
// how the regex source itself groups adjacent alternatives/factors.
func Grammar() *grammar.Grammar {
	g := grammar.New("RE")

	g.Add("RE", grammar.NT("Union"))

	g.Add("Union", grammar.NT("Union"), grammar.Term('|'), grammar.NT("Concat"))
	g.Add("Union", grammar.NT("Concat"))

	g.Add("Concat", grammar.NT("Concat"), grammar.NT("Repeat"))
	g.Add("Concat", grammar.NT("Repeat"))

	g.Add("Repeat", grammar.NT("Term"), grammar.Term('*'))
	g.Add("Repeat", grammar.NT("Term"), grammar.Term('+'))
	g.Add("Repeat", grammar.NT("Term"), grammar.Term('?'))
	g.Add("Repeat", grammar.NT("Term"))

	g.Add("Term", grammar.Term('('), grammar.NT("Union"), grammar.Term(')'))
	g.Add("Term", grammar.NT("Literal"))

	g.Add("Literal", grammar.Term('\t'))
	for c := byte(0x20); c <= 0x7E; c++ {
		if containsByte(metaChars, c) {
			continue
		}
		g.Add("Literal", grammar.Term(c))
	}
	for i := 0; i < len(metaChars); i++ {
		g.Add("Literal", grammar.Term('\\'), grammar.Term(metaChars[i]))
	}
	g.Add("Literal", grammar.Term('.'))
	for i := 0; i < len(classLetters); i++ {
		g.Add("Literal", grammar.Term('\\'), grammar.Term(classLetters[i]))
	}

	return g
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

// Parse parses pattern against Grammar and returns its collapsed tree. A
// pattern rejected by the grammar is reported as a *SyntaxError, the
// user-facing "invalid regex" error spec §4.1 delegates to C2's wrapper.
func Parse(pattern string) (*grammar.Node, error) {
	tree, ok := grammar.Parse(Grammar(), []byte(pattern))
	if !ok {
		return nil, &SyntaxError{Pattern: pattern}
	}
	return tree, nil
}

// SyntaxError reports that a pattern is not admitted by the regex grammar.
type SyntaxError struct {
	Pattern string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("resyntax: invalid regex %q", e.Pattern)
}
