package grammar_test

import (
	"fmt"

	"github.com/coregx/earleygrep/grammar"
)

// Example demonstrates building a tiny grammar and parsing admissible input
// with it, mirroring the shape resyntax uses for the regex grammar itself.
func Example() {
	g := grammar.New("S")
	g.Add("S", grammar.Term('('), grammar.NT("S"), grammar.Term(')'))
	g.Add("S", grammar.Term('a'))

	tree, ok := grammar.Parse(g, []byte("((a))"))
	if !ok {
		fmt.Println("rejected")
		return
	}
	fmt.Println(string(tree.Fringe()))
	// Output: ((a))
}
