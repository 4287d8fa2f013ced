package search_test

import (
	"fmt"

	"github.com/coregx/earleygrep/search"
)

// Example compiles a pattern once and matches it against a line, the shape
// cmd/earleygrep uses for every line of its input file.
func Example() {
	d, err := search.Compile("Cal(tech|ifornia)", search.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, m := range d.MatchLine([]byte("Caltech is in California")) {
		fmt.Println(m.Text)
	}
	// Output:
	// Caltech
	// California
}
