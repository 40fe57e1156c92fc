package fenwick

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree construction and element access.
var (
	// ErrNegativeSize is returned by New when size < 0.
	ErrNegativeSize = errors.New("fenwick: size must be non-negative")

	// ErrIndexOutOfRange is returned when an index argument falls outside
	// the logical array [0, size).
	ErrIndexOutOfRange = errors.New("fenwick: index out of range")
)

// Tree is a binary indexed tree over a logical array a[0..size) of int64.
// The backing array is the standard 1-indexed encoding: tree[i] holds the
// sum of the (i & -i) logical elements ending at position i.
//
// Invariant: PrefixSum(i) == a[0] + ... + a[i] for every valid i.
// Not safe for concurrent mutation; callers serialize access externally.
type Tree struct {
	tree []int64 // 1-indexed, len == size+1; tree[0] unused
}

// New creates a Tree whose logical array is all zeros.
// Returns ErrNegativeSize if size < 0.
func New(size int) (*Tree, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSize, size)
	}

	return &Tree{tree: make([]int64, size+1)}, nil
}

// FromSlice builds a Tree equal to New(len(values)) followed by one Add
// per element, but in a single O(n) pass: each slot accumulates its own
// value, then pushes its running total up to its immediate ancestor
// (idx + (idx & -idx)) when that ancestor is in range.
func FromSlice(values []int64) *Tree {
	tree := make([]int64, len(values)+1)
	for i, v := range values {
		idx := i + 1
		tree[idx] += v
		// Cascade this slot's total into its parent slot.
		if parent := idx + (idx & -idx); parent < len(tree) {
			tree[parent] += tree[idx]
		}
	}

	return &Tree{tree: tree}
}

// Add applies a[index] += delta, updating the O(log n) slots covering it.
// Returns ErrIndexOutOfRange if index is outside [0, size).
func (t *Tree) Add(index int, delta int64) error {
	if err := t.check(index); err != nil {
		return err
	}

	// Walk the ancestor chain: each step clears the lowest covered range
	// and moves to the next slot that also spans index.
	for idx := index + 1; idx < len(t.tree); idx += idx & -idx {
		t.tree[idx] += delta
	}

	return nil
}

// PrefixSum returns the inclusive sum a[0] + ... + a[index].
// Returns ErrIndexOutOfRange if index is outside [0, size).
func (t *Tree) PrefixSum(index int) (int64, error) {
	if err := t.check(index); err != nil {
		return 0, err
	}

	var sum int64
	for idx := index + 1; idx > 0; idx -= idx & -idx {
		sum += t.tree[idx]
	}

	return sum, nil
}

// RangeSum returns the inclusive sum a[start] + ... + a[end].
//
// An inverted range (start > end) yields (0, nil): the empty range is a
// legitimate outcome and start is deliberately not validated in that
// case. When start ≤ end, end is bounds-checked; start < size then
// follows for free. start == 0 short-circuits to PrefixSum(end) so the
// start-1 subtraction never underflows.
func (t *Tree) RangeSum(start, end int) (int64, error) {
	if start > end {
		return 0, nil
	}

	upper, err := t.PrefixSum(end)
	if err != nil {
		return 0, err
	}
	if start == 0 {
		return upper, nil
	}

	lower, err := t.PrefixSum(start - 1)
	if err != nil {
		return 0, err
	}

	return upper - lower, nil
}

// Len returns the logical array size.
func (t *Tree) Len() int {
	return len(t.tree) - 1
}

// Internal returns a copy of the raw 1-indexed tree array (slot 0
// included, always zero) for introspection and tests. Mutating the
// returned slice has no effect on the structure.
func (t *Tree) Internal() []int64 {
	out := make([]int64, len(t.tree))
	copy(out, t.tree)

	return out
}

// check validates a single logical index.
func (t *Tree) check(index int) error {
	if index < 0 || index >= len(t.tree)-1 {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, len(t.tree)-1)
	}

	return nil
}
