package resyntax_test

import (
	"fmt"

	"github.com/coregx/earleygrep/resyntax"
)

// Example parses a pattern and prints its collapsed parse tree's fringe,
// which always reproduces the original pattern text.
func Example() {
	tree, err := resyntax.Parse(`ab+|c\.d`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(string(tree.Fringe()))
	// Output: ab+|c\.d
}
