// Package sparsetable provides a static sparse table answering idempotent
// range queries (minimum by default) in O(1) after an O(n log n) build.
//
// What
//
//   - Build(arr) precomputes the log table and all doubling rows from an
//     input slice; the source is copied, never aliased.
//   - Query(l, r) answers the inclusive range [l, r] in O(1) with a
//     comma-ok result: ok is false for an empty table, an inverted
//     interval (l > r), or r out of bounds — absence is communicated by
//     the signature, not by an error.
//   - WithCombine substitutes the combiner for any other idempotent
//     operation (max, gcd, bitwise and/or); everything else is
//     operation-agnostic.
//   - The structure is immutable after Build; no update operation exists.
//
// Why
//
//   - Answer huge volumes of range-minimum (or similar) queries over a
//     frozen array: RMQ for lowest-common-ancestor schemes, sliding
//     analytics over historical series, offline query batches.
//
// Correctness of the two-window trick
//
//	A query [l, r] picks k = floor(log2(r-l+1)) and combines the windows
//	[l, l+2^k) and [r-2^k+1, r]. The windows overlap, which is precisely
//	why the combiner must be idempotent: overlap cannot distort min-like
//	operations. Idempotence (together with commutativity and
//	associativity) is a documented precondition of WithCombine, not a
//	runtime check.
//
// Complexity (n = source length)
//
//   - Time:   O(n log n) Build; O(1) Query.
//   - Memory: O(n log n).
//
// Usage
//
//	st := sparsetable.Build([]int64{5, 2, 4, 7, 1, 3})
//	v, ok := st.Query(1, 4) // 1, true
//	_, ok = st.Query(4, 1)  // inverted → false
//
//	maxed := sparsetable.Build(values,
//	    sparsetable.WithCombine[int64](func(a, b int64) int64 {
//	        return max(a, b)
//	    }))
package sparsetable
