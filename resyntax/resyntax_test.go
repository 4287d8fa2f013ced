package resyntax

import "testing"

func TestParse_Accepts(t *testing.T) {
	cases := []string{
		"ab*|c+",
		"a(b|c)",
		`\s\d\D\w\W`,
		`\*`,
		"Caltech|California",
		"foo(d|l)",
		"c(ab)*",
		"ab+",
		".*fail.*",
		`\d`,
		"b?aaa",
		`\.`,
		"a\tb",
	}
	for _, pat := range cases {
		tree, err := Parse(pat)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", pat, err)
			continue
		}
		if got := string(tree.Fringe()); got != pat {
			t.Errorf("Parse(%q): fringe = %q", pat, got)
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := []string{
		"",
		"(",
		"a(b",
		"*a",
		"a|",
		`\q`,
	}
	for _, pat := range cases {
		if _, err := Parse(pat); err == nil {
			t.Errorf("Parse(%q): expected error", pat)
		}
	}
}

func TestGrammar_MetaCharsAllEscapable(t *testing.T) {
	for i := 0; i < len(metaChars); i++ {
		pat := string([]byte{'\\', metaChars[i]})
		if _, err := Parse(pat); err != nil {
			t.Errorf("Parse(%q): expected escaped meta char to parse, got %v", pat, err)
		}
	}
}
