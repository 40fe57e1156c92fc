package kmp

// PrefixFunction computes pi[0..n) over the pattern's bytes in one O(n)
// pass: pi[i] is the length of the longest proper prefix of
// pattern[0..i] that is also a suffix of it; pi[0] is 0 by definition.
func PrefixFunction(pattern string) []int {
	pi := make([]int, len(pattern))
	for i := 1; i < len(pattern); i++ {
		// Start from the best border of the previous position and chase
		// failure links until it extends or bottoms out at 0.
		j := pi[i-1]
		for j > 0 && pattern[i] != pattern[j] {
			j = pi[j-1]
		}
		if pattern[i] == pattern[j] {
			j++
		}
		pi[i] = j
	}

	return pi
}

// FindAll returns every 0-based byte offset where pattern occurs in
// text, overlapping occurrences included. The empty slice for an empty
// pattern or a pattern longer than the text is a "no occurrences"
// outcome, not an error.
func FindAll(text, pattern string) []int {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return []int{}
	}

	pi := PrefixFunction(pattern)
	res := []int{}

	// Single left-to-right scan; j tracks the currently matched prefix
	// length of the pattern.
	j := 0
	for i := 0; i < n; i++ {
		for j > 0 && text[i] != pattern[j] {
			j = pi[j-1]
		}
		if text[i] == pattern[j] {
			j++
		}
		if j == m {
			res = append(res, i+1-m)
			// Resume from the longest border so overlapping matches are
			// still found.
			j = pi[j-1]
		}
	}

	return res
}
