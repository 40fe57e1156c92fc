// Package unionfind provides a production-grade disjoint-set union (DSU)
// over a fixed universe of integer elements, with path compression and
// union by size.
//
// What
//
//   - Track a partition of the elements 0..n-1 into disjoint sets.
//   - New(n) starts from n singleton sets.
//   - Find(p) returns the canonical representative of p's set and fully
//     compresses the traversed path (every visited node is relinked
//     directly to the root).
//   - Union(p, q) merges the two sets and reports whether connectivity
//     actually changed; merging an already-joined pair is a legitimate
//     no-op, not an error.
//   - Connected(p, q) answers reachability; Count() reports the current
//     number of disjoint sets in O(1).
//   - Parents() exposes a read-only copy of the parent array for
//     introspection and testing; it never aliases internal state.
//
// Why
//
//   - Connectivity queries over incremental edge insertions: Kruskal-style
//     spanning trees, percolation, clustering, equivalence closure.
//   - Amortized near-constant cost per operation — O(α(n)), the inverse
//     Ackermann function, effectively ≤ 4 for any feasible n.
//
// Determinism
//
//	All operations are deterministic. Union ties (equal sizes) attach
//	q's root under p's root, so the parent array after any fixed
//	operation sequence is fully reproducible.
//
// Complexity (n = universe size)
//
//   - Time:   O(α(n)) amortized per Find/Union/Connected; O(1) Count.
//   - Memory: O(n) for the parent and size arrays.
//
// Usage
//
//	uf, err := unionfind.New(10)
//	if err != nil { /* handle ErrNegativeSize */ }
//
//	merged, err := uf.Union(1, 2) // true, nil
//	merged, err = uf.Union(1, 2)  // false, nil — already joined
//	ok, err := uf.Connected(1, 2) // true, nil
//	sets := uf.Count()            // 9
//
// Errors
//
//   - ErrNegativeSize     if New is called with n < 0.
//   - ErrIndexOutOfRange  if an element argument is outside [0, n).
package unionfind
