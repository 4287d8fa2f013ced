package nfa

import "fmt"

// BuildError reports a malformed parse tree reaching the NFA builder — a
// contract violation between resyntax and nfa, not a user-facing regex
// syntax error (those are caught earlier, by grammar.Parse returning ok=false).
type BuildError struct {
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("nfa: build error: %s", e.Message)
}
