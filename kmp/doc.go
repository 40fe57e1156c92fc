// Package kmp provides the Knuth–Morris–Pratt string machinery: the
// prefix function and linear-time, overlap-aware substring search.
//
// What
//
//   - PrefixFunction(pattern) returns pi[0..n): pi[i] is the length of
//     the longest proper prefix of pattern[0..i] that is also its
//     suffix.
//   - FindAll(text, pattern) returns every 0-based offset where pattern
//     occurs in text, overlapping occurrences included. An empty pattern
//     or a pattern longer than the text yields an empty slice — a valid
//     "no occurrences" answer, never an error.
//
// Why
//
//   - Substring search in O(n + m) with no backtracking over the text:
//     on a mismatch the precomputed prefix function says exactly how far
//     the matched prefix can be salvaged, so the text is scanned once.
//
// Bytes, not runes
//
//	Both functions operate on raw bytes; returned offsets are byte
//	offsets into the UTF-8 encoding. For ASCII inputs byte and rune
//	offsets coincide.
//
// Amortized linearity
//
//	The inner fallback loop (j = pi[j-1]) looks nested, but j only grows
//	by at most one per text byte and every fallback shrinks it, so the
//	total fallback work is bounded by the number of bytes scanned.
//
// Complexity (n = len(text), m = len(pattern))
//
//   - Time:   O(m) PrefixFunction; O(n + m) FindAll.
//   - Memory: O(m).
//
// Usage
//
//	pi := kmp.PrefixFunction("ababcabab") // [0 0 1 2 0 1 2 3 4]
//	hits := kmp.FindAll("aaaaa", "aa")    // [0 1 2 3] — overlaps included
package kmp
