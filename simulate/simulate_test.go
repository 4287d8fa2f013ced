package simulate

import (
	"testing"

	"github.com/coregx/earleygrep/boyermoore"
	"github.com/coregx/earleygrep/literal"
	"github.com/coregx/earleygrep/nfa"
	"github.com/coregx/earleygrep/resyntax"
)

func compile(t *testing.T, pattern string) *nfa.NFA {
	t.Helper()
	tree, err := resyntax.Parse(pattern)
	if err != nil {
		t.Fatalf("resyntax.Parse(%q): %v", pattern, err)
	}
	n, err := nfa.Compile(tree)
	if err != nil {
		t.Fatalf("nfa.Compile(%q): %v", pattern, err)
	}
	return n
}

// rewiredPrefix compiles pattern, extracts its literal prefix (failing the
// test if it isn't one), and returns both the post-rewire NFA (which
// recognizes only the tail after the literal) and the literal's length, the
// shape package search hands to Anchored.
func rewiredPrefix(t *testing.T, pattern string) (*nfa.NFA, int) {
	t.Helper()
	n := compile(t, pattern)
	res := literal.Extract(n)
	if res.Mode != literal.Prefix {
		t.Fatalf("pattern %q: expected Prefix mode, got %v", pattern, res.Mode)
	}
	return n, len(res.Literal)
}

func TestNoAnchor_NoMatchIsSentinelNegativeOne(t *testing.T) {
	n := compile(t, "z")
	end := NoAnchor(n, []byte("abc"))
	for i, e := range end {
		if e != -1 {
			t.Fatalf("end[%d] = %d, want -1 (no match)", i, e)
		}
	}
}

func TestNoAnchor_ZeroLengthMatchIsDistinctFromNoMatch(t *testing.T) {
	n := compile(t, "a*")
	end := NoAnchor(n, []byte("xxx"))
	// "a*" accepts the empty string at every offset, including one past the
	// last character it never reaches here since x isn't 'a' — each offset
	// records a genuine zero-length match: end[i] == i, not -1.
	for i, e := range end {
		if e != i {
			t.Fatalf("end[%d] = %d, want %d (zero-length match, not -1)", i, e, i)
		}
	}
}

func TestNoAnchor_ConsumingMatchOverwritesZeroLength(t *testing.T) {
	n := compile(t, "a*")
	end := NoAnchor(n, []byte("aab"))
	// Per §4.6.1, once origin 1's thread merges into the already-live state
	// carrying origin 0 (both now at the same automaton state), only the
	// smaller origin continues to be tracked; origin 1 keeps only its own
	// zero-length record. This never loses information the driver needs:
	// origin 0's reported match [0,2) always covers index 1, so the
	// non-overlap walk in package search skips index 1 without ever reading
	// its (stale) entry.
	want := []int{2, 1, 2}
	for i, w := range want {
		if end[i] != w {
			t.Fatalf("end[%d] = %d, want %d", i, end[i], w)
		}
	}
}

func TestNoAnchor_EmptyLine(t *testing.T) {
	n := compile(t, "a*")
	end := NoAnchor(n, []byte(""))
	if len(end) != 0 {
		t.Fatalf("expected empty result for empty line, got %v", end)
	}
}

func TestNoAnchor_LongestMatchWins(t *testing.T) {
	n := compile(t, "ab+")
	end := NoAnchor(n, []byte("xabbby"))
	if end[1] != 5 {
		t.Fatalf("end[1] = %d, want 5 (longest match \"abbb\")", end[1])
	}
}

func TestAnchored_NoAnchorsGivesEmptyResult(t *testing.T) {
	n, litLen := rewiredPrefix(t, "ab+")
	line := []byte("xyzzz")
	scanner := boyermoore.New("ab")
	anchors := scanner.Find(line)
	if len(anchors) != 0 {
		t.Fatalf("expected no literal anchors in %q, got %v", line, anchors)
	}
	out := Anchored(n, line, anchors, litLen)
	if len(out) != 0 {
		t.Fatalf("expected no results, got %v", out)
	}
}

func TestAnchored_MatchesAfterAnchor(t *testing.T) {
	n, litLen := rewiredPrefix(t, "ab+")
	line := []byte("zabbby")
	scanner := boyermoore.New("ab")
	anchors := scanner.Find(line)
	out := Anchored(n, line, anchors, litLen)
	if len(out) != 1 || out[0] != 5 {
		t.Fatalf("out = %v, want [5] (full match \"abbb\" ending at 5)", out)
	}
}

func TestAnchored_SkipsCoveredStarts(t *testing.T) {
	n, litLen := rewiredPrefix(t, "a+")
	line := []byte("aaaa")
	scanner := boyermoore.New("a")
	anchors := scanner.Find(line)
	out := Anchored(n, line, anchors, litLen)
	if len(anchors) != 4 {
		t.Fatalf("expected 4 literal anchors, got %v", anchors)
	}
	if out[0] != 4 {
		t.Fatalf("out[0] = %d, want 4 (consumes the whole run)", out[0])
	}
	for k := 1; k < len(out); k++ {
		if out[k] != 0 {
			t.Fatalf("expected later anchors skipped once covered, got %v", out)
		}
	}
}
