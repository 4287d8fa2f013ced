package boyermoore

// alphabetSize is the number of distinct bytes this scanner indexes: tab
// plus every byte from space (0x20) through tilde (0x7E).
const alphabetSize = 96

// alphabetIndex maps an admissible byte to its table index: tab -> 0,
// space..tilde -> 1..95. Bytes outside this range are a contract
// violation — the driver must never hand the scanner a line containing
// one (spec §4.5, §7).
func alphabetIndex(c byte) int {
	if c == '\t' {
		return 0
	}
	if c >= ' ' && c <= '~' {
		return int(c) - 0x1F
	}
	panic("boyermoore: byte out of admissible alphabet")
}

// badCharTable builds R[c][i]: the rightmost index j <= i with L[j] == c,
// or -1 if c never occurs in L[:i+1].
func badCharTable(l []byte) [][]int {
	n := len(l)
	r := make([][]int, alphabetSize)
	for c := range r {
		r[c] = make([]int, n)
	}
	last := make([]int, alphabetSize)
	for c := range last {
		last[c] = -1
	}
	for i := 0; i < n; i++ {
		last[alphabetIndex(l[i])] = i
		for c := 0; c < alphabetSize; c++ {
			r[c][i] = last[c]
		}
	}
	return r
}

// goodSuffixTable builds l[i]: the largest j with L[j+1:] == L[i:] and
// L[j] != L[i-1], or -1 if none — derived from the Z-array of the reverse
// of L per standard Boyer-Moore-Galil construction.
func goodSuffixTable(l []byte) []int {
	n := len(l)
	out := make([]int, n)
	for i := range out {
		out[i] = -1
	}
	if n == 0 {
		return out
	}
	nArr := zArray(reverseBytes(l))
	// reverse nArr in place to match the orientation used below
	for i, j := 0, len(nArr)-1; i < j; i, j = i+1, j-1 {
		nArr[i], nArr[j] = nArr[j], nArr[i]
	}
	for j := 0; j < n-1; j++ {
		i := n - nArr[j]
		if i != n {
			out[i] = j
		}
	}
	return out
}

// fullShiftTable builds f[i]: the length of the longest *proper* border of
// L (a suffix of L that is also a prefix of L, shorter than L itself) that
// fits entirely within L[i:]. f[0] is therefore L's own period complement
// (n - f[0] is the shift Find applies after a full match), not n itself —
// the trivial whole-string self-match at k+1 == n is excluded since it
// isn't a proper border and would otherwise collapse f[0] to n, producing
// a zero shift.
func fullShiftTable(l []byte) []int {
	n := len(l)
	f := make([]int, n)
	z := zArray(l)
	longest := 0
	for k := 0; k < n; k++ {
		idx := n - 1 - k
		if k+1 < n && z[idx] == k+1 {
			if z[idx] > longest {
				longest = z[idx]
			}
		}
		f[idx] = longest
	}
	return f
}
