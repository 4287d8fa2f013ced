package nfa

import (
	"testing"

	"github.com/coregx/earleygrep/resyntax"
)

func compile(t *testing.T, pattern string) *NFA {
	t.Helper()
	tree, err := resyntax.Parse(pattern)
	if err != nil {
		t.Fatalf("resyntax.Parse(%q): %v", pattern, err)
	}
	n, err := Compile(tree)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return n
}

// accepts is a small whole-string acceptance check used only by these
// tests, independent of package simulate's line-oriented API.
func accepts(n *NFA, s string) bool {
	cur := map[StateID]bool{n.Start: true}
	for i := 0; i < len(s); i++ {
		next := map[StateID]bool{}
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

func TestCompile_NoEpsilonRemains(t *testing.T) {
	n := compile(t, "a(b|c)*d+e?")
	if len(n.Eps) != 0 {
		t.Fatalf("expected no epsilon transitions after Compile, got %d sources", len(n.Eps))
	}
}

func TestCompile_EveryStateReachable(t *testing.T) {
	n := compile(t, "foo(d|l)")
	visited := map[StateID]bool{n.Start: true}
	stack := []StateID{n.Start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, targets := range n.Trans[cur] {
			for t := range targets {
				if !visited[t] {
					visited[t] = true
					stack = append(stack, t)
				}
			}
		}
	}
	if len(visited) != n.NumStates() {
		t.Fatalf("reachable states = %d, total states = %d", len(visited), n.NumStates())
	}
}

func TestCompile_Acceptance(t *testing.T) {
	cases := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"Caltech|California", []string{"Caltech", "California"}, []string{"Calte", "xCaltech"}},
		{"foo(d|l)", []string{"food", "fool"}, []string{"foo", "foox"}},
		{"c(ab)*", []string{"c", "cab", "cabab"}, []string{"ca", "cabx"}},
		{"ab+", []string{"ab", "abb", "abbb"}, []string{"a"}},
		{`\d`, []string{"2", "3", "7"}, []string{"x", ""}},
		{"b?aaa", []string{"aaa", "baaa"}, []string{"aa", "baa"}},
	}
	for _, c := range cases {
		n := compile(t, c.pattern)
		for _, s := range c.accept {
			if !accepts(n, s) {
				t.Errorf("pattern %q: expected to accept %q", c.pattern, s)
			}
		}
		for _, s := range c.reject {
			if accepts(n, s) {
				t.Errorf("pattern %q: expected to reject %q", c.pattern, s)
			}
		}
	}
}

func TestCompile_DotClass(t *testing.T) {
	n := compile(t, ".")
	if !accepts(n, "x") || !accepts(n, " ") || !accepts(n, "\t") {
		t.Fatalf("dot should accept tab, space, and printable chars")
	}
	if accepts(n, "") || accepts(n, "xy") {
		t.Fatalf("dot should accept exactly one character")
	}
}

func TestCompile_EscapedMetaIsLiteral(t *testing.T) {
	n := compile(t, `\.`)
	if !accepts(n, ".") {
		t.Fatalf(`\. should accept a literal dot`)
	}
	if accepts(n, "x") {
		t.Fatalf(`\. should reject non-dot characters`)
	}
}
