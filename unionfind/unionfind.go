package unionfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for DSU construction and element access.
var (
	// ErrNegativeSize is returned by New when n < 0.
	ErrNegativeSize = errors.New("unionfind: size must be non-negative")

	// ErrIndexOutOfRange is returned when an element argument falls
	// outside the universe [0, n).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)

// UnionFind tracks a partition of the elements 0..n-1 into disjoint sets.
//
// Invariants:
//   - parent chains always terminate at a root (parent[root] == root);
//   - size[r] is the element count of r's set, meaningful only at roots;
//   - count equals the number of distinct roots.
//
// Not safe for concurrent use; callers serialize access externally.
// Note that Find, Union and Connected all mutate the parent array
// (path compression), so even read-style calls require exclusion.
type UnionFind struct {
	parent []int // parent[i] == i  ⇔  i is a root
	size   []int // subtree sizes, valid at roots only
	count  int   // current number of disjoint sets
}

// New creates a UnionFind of n singleton sets.
// Returns ErrNegativeSize if n < 0. New(0) is valid and yields an empty
// universe on which every element access fails with ErrIndexOutOfRange.
func New(n int) (*UnionFind, error) {
	// 1. Validate the universe size.
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSize, n)
	}

	// 2. Each element starts as its own root with set size 1.
	parent := make([]int, n)
	size := make([]int, n)
	for i := 0; i < n; i++ {
		parent[i] = i
		size[i] = 1
	}

	return &UnionFind{parent: parent, size: size, count: n}, nil
}

// Find returns the representative (root) of p's set.
// Every node on the path from p to the root is relinked directly to the
// root (full path compression), which keeps future lookups near O(1).
// Returns ErrIndexOutOfRange if p is outside [0, n).
func (u *UnionFind) Find(p int) (int, error) {
	if err := u.check(p); err != nil {
		return 0, err
	}

	return u.find(p), nil
}

// find is the unchecked lookup used internally once bounds are known good.
func (u *UnionFind) find(p int) int {
	// 1. First pass: walk up to the root.
	root := p
	for root != u.parent[root] {
		root = u.parent[root]
	}

	// 2. Second pass: relink every traversed node straight to the root.
	for p != root {
		next := u.parent[p]
		u.parent[p] = root
		p = next
	}

	return root
}

// Union merges the sets containing p and q using union by size: the root
// of the smaller set is attached under the root of the larger one, with
// ties attaching q's root under p's root. Reports whether connectivity
// changed; false means p and q were already in the same set (a valid
// outcome, never an error).
func (u *UnionFind) Union(p, q int) (bool, error) {
	// 1. Validate both endpoints before touching any state.
	if err := u.check(p); err != nil {
		return false, err
	}
	if err := u.check(q); err != nil {
		return false, err
	}

	// 2. Resolve both roots (compressing paths as a side effect).
	rootP := u.find(p)
	rootQ := u.find(q)
	if rootP == rootQ {
		// Already connected; nothing to merge.
		return false, nil
	}

	// 3. Attach the smaller tree under the larger; on a tie, q under p.
	if u.size[rootP] < u.size[rootQ] {
		u.parent[rootP] = rootQ
		u.size[rootQ] += u.size[rootP]
	} else {
		u.parent[rootQ] = rootP
		u.size[rootP] += u.size[rootQ]
	}

	// 4. One fewer disjoint set after an effective merge.
	u.count--

	return true, nil
}

// Connected reports whether p and q share a representative.
func (u *UnionFind) Connected(p, q int) (bool, error) {
	rootP, err := u.Find(p)
	if err != nil {
		return false, err
	}
	rootQ, err := u.Find(q)
	if err != nil {
		return false, err
	}

	return rootP == rootQ, nil
}

// Count returns the current number of disjoint sets. O(1), no side effects.
func (u *UnionFind) Count() int {
	return u.count
}

// Len returns the universe size n.
func (u *UnionFind) Len() int {
	return len(u.parent)
}

// Parents returns a copy of the parent array for introspection and tests.
// Mutating the returned slice has no effect on the structure.
func (u *UnionFind) Parents() []int {
	out := make([]int, len(u.parent))
	copy(out, u.parent)

	return out
}

// check validates a single element index against the universe.
func (u *UnionFind) check(p int) error {
	if p < 0 || p >= len(u.parent) {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, p, len(u.parent))
	}

	return nil
}
