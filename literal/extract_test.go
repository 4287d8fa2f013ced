package literal

import (
	"testing"

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

func acceptsWhole(n *nfa.NFA, s string) bool {
	cur := map[nfa.StateID]bool{n.Start: true}
	for i := 0; i < len(s); i++ {
		next := map[nfa.StateID]bool{}
		for s0 := range cur {
			for t := range n.CharTargets(s0, s[i]) {
				next[t] = true
			}
		}
		cur = next
		if len(cur) == 0 {
			return false
		}
	}
	for s0 := range cur {
		if n.IsAccept(s0) {
			return true
		}
	}
	return false
}

func TestExtract_Prefix(t *testing.T) {
	n := compile(t, "ab+")
	res := Extract(n)
	if res.Mode != Prefix {
		t.Fatalf("expected Prefix mode, got %v (literal %q)", res.Mode, res.Literal)
	}
	// "ab+" requires at least "ab"; the third char ('b' or end) is the
	// first point of divergence (more b's, or stop), so "ab" is the
	// longest guaranteed prefix.
	if res.Literal != "ab" {
		t.Fatalf("expected literal %q, got %q", "ab", res.Literal)
	}
	// Rewired NFA should accept exactly the tails of ab+ after "ab": "", "b", "bb"...
	if !acceptsWhole(n, "") || !acceptsWhole(n, "b") {
		t.Errorf("rewired NFA should accept tail strings after prefix")
	}
	if acceptsWhole(n, "ab") {
		t.Errorf("rewired NFA should not accept non-tail strings")
	}
}

func TestExtract_PrefixSharedAcrossAlternation(t *testing.T) {
	n := compile(t, "Caltech|California")
	res := Extract(n)
	// Caltech and California share "Cal" as a common prefix, since both
	// diverge only after it.
	if res.Mode != Prefix || res.Literal != "Cal" {
		t.Fatalf("expected prefix \"Cal\", got mode=%v literal=%q", res.Mode, res.Literal)
	}
}

func TestExtract_Suffix(t *testing.T) {
	n := compile(t, "b?aaa")
	res := Extract(n)
	if res.Mode != Suffix {
		t.Fatalf("expected Suffix mode, got %v (literal %q)", res.Mode, res.Literal)
	}
	if res.Literal != "aaa" {
		t.Fatalf("expected suffix %q, got %q", "aaa", res.Literal)
	}
	// The rewired NFA works over reversed text; it should accept the
	// empty string (b?aaa minus its "aaa" suffix leaves "" or "b",
	// reversed is still "" or "b").
	if !acceptsWhole(n, "") || !acceptsWhole(n, "b") {
		t.Errorf("rewired suffix NFA should accept reversed remainders")
	}
}

func TestExtract_None(t *testing.T) {
	n := compile(t, ".*fail.*")
	res := Extract(n)
	if res.Mode != None {
		t.Fatalf("expected None mode, got %v (literal %q)", res.Mode, res.Literal)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	n := compile(t, "ab+")
	first := Extract(n)
	if first.Mode != Prefix {
		t.Fatalf("expected prefix on first extraction")
	}
	second := Extract(n)
	if second.Literal != "" {
		t.Fatalf("second extraction on a prefix-rewired NFA should find nothing more, got %q", second.Literal)
	}
}

func TestExtract_NoEpsilonAfterRewire(t *testing.T) {
	for _, pat := range []string{"ab+", "b?aaa", "Caltech|California"} {
		n := compile(t, pat)
		Extract(n)
		if len(n.Eps) != 0 {
			t.Errorf("pattern %q: epsilon transitions remain after rewiring", pat)
		}
	}
}
