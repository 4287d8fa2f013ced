// Command earleygrep prints every regex match in a file, one per line, as
// "N:match" where N is the 1-based line number.
//
// Usage: earleygrep <regex> <file>
package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/coregx/earleygrep/search"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <regex> <file>\n", os.Args[0])
		os.Exit(2)
	}

	pattern := os.Args[1]
	path := os.Args[2]
	// Trailing arguments beyond <regex> <file> are accepted and ignored.

	driver, err := search.Compile(pattern, search.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "earleygrep: %v\n", err)
		os.Exit(1)
	}

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "earleygrep: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	var stat unix.Stat_t
	if err := unix.Fstat(int(file.Fd()), &stat); err != nil {
		fmt.Fprintf(os.Stderr, "earleygrep: %v\n", err)
		os.Exit(1)
	}
	if stat.Mode&unix.S_IFMT != unix.S_IFREG {
		fmt.Fprintf(os.Stderr, "earleygrep: %s: not a regular file\n", path)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		// scanner.Bytes() strips the line terminator, so '.' and '\S'
		// never see it (spec invariant).
		for _, m := range driver.MatchLine(scanner.Bytes()) {
			fmt.Fprintf(out, "%d:%s\n", lineNo, m.Text)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "earleygrep: %v\n", err)
		os.Exit(1)
	}
}
