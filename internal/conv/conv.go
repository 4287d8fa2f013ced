// Package conv provides safe integer conversion helpers; package nfa uses
// it for its state identifiers.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32. Used when assigning dense NFA
// state IDs, which are counted as ints but stored compactly as uint32.
func IntToUint32(n int) uint32 {
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: integer overflow converting int to uint32")
	}
	return uint32(n)
}
