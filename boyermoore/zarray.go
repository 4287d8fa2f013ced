// Package boyermoore implements a Boyer-Moore-Galil bytewise scanner for a
// single non-empty literal, used to find candidate anchor offsets inside a
// line before the NFA simulator extends each candidate into a full match.
//
// Preprocessing (bad-character, good-suffix, and full-shift tables) is
// derived from the Z-array of the pattern and of its reverse, exactly as
// the source this engine was distilled from builds them; see zarray.go and
// tables.go.
package boyermoore

// zArray computes the Z-array of s: z[i] is the length of the longest
// common prefix of s and s[i:]. z[0] is conventionally len(s).
//
// This is the textbook linear-time Z-algorithm; it produces the same
// values as the naive O(n^2) "match_length" + box-tracking construction
// the source engine hand-rolls, just without recomputing overlapping
// comparisons.
func zArray(s []byte) []int {
	n := len(s)
	z := make([]int, n)
	if n == 0 {
		return z
	}
	z[0] = n
	l, r := 0, 0
	for i := 1; i < n; i++ {
		if i < r {
			if rest := r - i; z[i-l] < rest {
				z[i] = z[i-l]
			} else {
				z[i] = rest
			}
		}
		for i+z[i] < n && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
	}
	return z
}

func reverseBytes(s []byte) []byte {
	out := make([]byte, len(s))
	for i, c := range s {
		out[len(s)-1-i] = c
	}
	return out
}
