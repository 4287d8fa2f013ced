package grammar

import "fmt"

// ParseError reports that input was not admitted by a grammar's language.
// Parse itself returns (nil, false) rather than an error; ParseError is an
// error value naming the rejected input for callers that want one. resyntax
// does not use it: it reports rejected patterns with its own SyntaxError.
type ParseError struct {
	Input string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("grammar: input %q not admitted by grammar", e.Input)
}
