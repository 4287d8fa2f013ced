// Package search implements the match driver (C7): it compiles a pattern
// once into a Driver, then for each line dispatches to the Boyer-Moore
// scanner and NFA simulator in whichever of the three modes (prefix,
// suffix, none) the literal extractor chose, dedupes overlapping
// candidates, and returns matches in ascending, non-overlapping order.
package search

import (
	"github.com/coregx/earleygrep/boyermoore"
	"github.com/coregx/earleygrep/literal"
	"github.com/coregx/earleygrep/nfa"
	"github.com/coregx/earleygrep/resyntax"
	"github.com/coregx/earleygrep/simulate"
)

// Config holds the driver's few runtime knobs. There are no environment
// variables or config files (spec §6); a Config is always constructed in
// code.
type Config struct {
	// SuppressEmptyMatches drops zero-length matches from driver output.
	// DefaultConfig sets it to true; a zero-valued Config leaves it false.
	// The source engine leaves this ambiguous; this is the resolved Open
	// Question (spec §9).
	SuppressEmptyMatches bool
	// MaxPatternLength guards against pathological memory use from the
	// Earley recognizer's O(n^2) item storage on a huge pattern. Patterns
	// longer than this are rejected with ErrPatternTooLong before parsing;
	// a value of zero or less disables the check.
	MaxPatternLength int
}

// DefaultConfig returns the driver's default configuration:
// SuppressEmptyMatches true, MaxPatternLength 4096.
func DefaultConfig() Config {
	return Config{SuppressEmptyMatches: true, MaxPatternLength: 4096}
}

// Match is one reported match on a line: the half-open byte range [Start,
// End) and its text.
type Match struct {
	Start, End int
	Text       string
}

// Driver holds one compiled, possibly literal-rewired NFA and is safe to
// share read-only across goroutines (spec §5): MatchLine takes no mutable
// driver state.
type Driver struct {
	nfa     *nfa.NFA
	scanner *boyermoore.Scanner
	mode    literal.Mode
	litLen  int
	cfg     Config
}

// Compile parses pattern (§4.2), builds its NFA (§4.3), extracts a literal
// anchor if one exists (§4.4), and returns a Driver ready to match lines.
func Compile(pattern string, cfg Config) (*Driver, error) {
	if cfg.MaxPatternLength > 0 && len(pattern) > cfg.MaxPatternLength {
		return nil, &ErrPatternTooLong{Length: len(pattern), Max: cfg.MaxPatternLength}
	}
	tree, err := resyntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	n, err := nfa.Compile(tree)
	if err != nil {
		return nil, err
	}
	res := literal.Extract(n)

	d := &Driver{nfa: n, mode: res.Mode, litLen: len(res.Literal), cfg: cfg}
	if res.Mode != literal.None {
		d.scanner = boyermoore.New(res.Literal)
	}
	return d, nil
}

// MatchLine finds every non-overlapping, leftmost-longest match in line
// per spec §4.7, dispatching on the mode C4 chose at Compile time.
func (d *Driver) MatchLine(line []byte) []Match {
	switch d.mode {
	case literal.Prefix:
		return d.matchPrefix(line)
	case literal.Suffix:
		return d.matchSuffix(line)
	default:
		return d.matchNone(line)
	}
}

func (d *Driver) matchPrefix(line []byte) []Match {
	anchors := d.scanner.Find(line)
	if len(anchors) == 0 {
		return nil
	}
	out := simulate.Anchored(d.nfa, line, anchors, d.litLen)
	return d.collectAnchored(line, anchors, out, false)
}

func (d *Driver) matchSuffix(line []byte) []Match {
	rev := reverseBytes(line)
	anchors := d.scanner.Find(rev)
	if len(anchors) == 0 {
		return nil
	}
	out := simulate.Anchored(d.nfa, rev, anchors, d.litLen)
	return d.collectAnchored(rev, anchors, out, true)
}

// collectAnchored builds a Match for each out[k] != 0. text is the
// (possibly reversed) buffer the simulator ran over; anchors[k]-litLen is
// the match start in that buffer's orientation. In suffix mode the
// discovered substring is read back-to-front and must be reversed again
// before it reflects the original line, and the matches are returned in
// ascending order of their start in the original line.
func (d *Driver) collectAnchored(text []byte, anchors, out []int, reversedText bool) []Match {
	var matches []Match
	for k, end := range out {
		if end == 0 {
			continue
		}
		start := anchors[k] - d.litLen
		if end == start && d.cfg.SuppressEmptyMatches {
			continue
		}
		substr := text[start:end]
		if reversedText {
			n := len(text)
			origStart, origEnd := n-end, n-start
			matches = append(matches, Match{
				Start: origStart,
				End:   origEnd,
				Text:  string(reverseBytes(substr)),
			})
			continue
		}
		matches = append(matches, Match{Start: start, End: end, Text: string(substr)})
	}
	if reversedText {
		// Anchors ascend over the reversed text, so the original-line
		// starts descend; restore ascending order.
		for i, j := 0, len(matches)-1; i < j; i, j = i+1, j-1 {
			matches[i], matches[j] = matches[j], matches[i]
		}
	}
	return matches
}

func (d *Driver) matchNone(line []byte) []Match {
	end := simulate.NoAnchor(d.nfa, line)
	var matches []Match
	for i := 0; i < len(end); {
		e := end[i]
		if e == -1 {
			i++
			continue
		}
		if e == i && d.cfg.SuppressEmptyMatches {
			i++
			continue
		}
		matches = append(matches, Match{Start: i, End: e, Text: string(line[i:e])})
		if e > i {
			i = e
		} else {
			i++
		}
	}
	return matches
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
