// Package fenwick provides a binary indexed tree (Fenwick tree) over
// signed 64-bit integers: point updates and inclusive prefix/range sums
// in O(log n).
//
// What
//
//   - New(size) builds an all-zero logical array of the given size.
//   - FromSlice(values) builds the same final state as size sequential
//     Adds, but in one O(n) cascading pass.
//   - Add(index, delta) adjusts a single logical element.
//   - PrefixSum(index) returns the inclusive sum over [0, index].
//   - RangeSum(start, end) returns the inclusive sum over [start, end];
//     an inverted range (start > end) yields 0 — a valid empty-range
//     outcome, never an error.
//   - Len() reports the logical size; Internal() copies out the raw
//     1-indexed tree array for introspection and testing.
//
// Why
//
//   - Running totals under mutation: frequency tables, inversions,
//     order-statistics helpers, cumulative metrics — wherever a plain
//     prefix-sum array would cost O(n) per update.
//
// Representation
//
//	The tree array is 1-indexed with length size+1. Slot i accumulates
//	the logical elements covered by the lowest set bit of i: ancestors of
//	a point update are reached by i += i & -i, and a prefix sum walks
//	down via i -= i & -i. The logical array is never stored directly.
//
// Complexity (n = logical size)
//
//   - Time:   O(log n) Add/PrefixSum/RangeSum; O(n) FromSlice; O(1) Len.
//   - Memory: O(n).
//
// Usage
//
//	ft := fenwick.FromSlice([]int64{1, 2, 3, 4, 5, 6, 7, 8})
//	total, _ := ft.RangeSum(2, 4) // 3+4+5 = 12
//	_ = ft.Add(2, 10)             // logical a[2] += 10
//
// Errors
//
//   - ErrNegativeSize     if New is called with size < 0.
//   - ErrIndexOutOfRange  if Add/PrefixSum index ≥ size, or RangeSum
//     end ≥ size with start ≤ end.
package fenwick
