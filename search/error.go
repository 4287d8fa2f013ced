package search

import "fmt"

// ErrPatternTooLong reports that a pattern exceeded Config.MaxPatternLength
// and was rejected before parsing, guarding against pathological Earley
// item storage on huge patterns.
type ErrPatternTooLong struct {
	Length, Max int
}

func (e *ErrPatternTooLong) Error() string {
	return fmt.Sprintf("search: pattern length %d exceeds maximum %d", e.Length, e.Max)
}
