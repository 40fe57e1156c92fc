package treap_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsplayground/treap"
)

// TestInsert_Contains_Len_InOrder covers the basic multiset lifecycle
// with a duplicate key collapsed into one node.
func TestInsert_Contains_Len_InOrder(t *testing.T) {
	tr := treap.New(treap.WithSeed(12345))
	assert.True(t, tr.IsEmpty())

	tr.Insert(5)
	tr.Insert(3)
	tr.Insert(7)
	tr.Insert(3) // duplicate

	assert.Equal(t, 4, tr.Len())
	assert.False(t, tr.IsEmpty())
	assert.True(t, tr.Contains(3))
	assert.True(t, tr.Contains(5))
	assert.True(t, tr.Contains(7))
	assert.False(t, tr.Contains(42))
	assert.Equal(t, []int64{3, 3, 5, 7}, tr.InOrder())
}

// TestRemove_Duplicates checks that removal peels one occurrence at a
// time, that the node disappears with its last occurrence, and that
// removing an absent key is a silent no-op.
func TestRemove_Duplicates(t *testing.T) {
	tr := treap.New(treap.WithSeed(999))
	tr.Insert(10)
	tr.Insert(10)
	tr.Insert(5)
	tr.Insert(15)
	require.Equal(t, 4, tr.Len())

	// First removal only decrements the multiplicity.
	tr.Remove(10)
	assert.True(t, tr.Contains(10))
	assert.Equal(t, 3, tr.Len())

	// Second removal splices the node out.
	tr.Remove(10)
	assert.False(t, tr.Contains(10))
	assert.Equal(t, 2, tr.Len())

	// Absent key: nothing happens.
	tr.Remove(42)
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, []int64{5, 15}, tr.InOrder())
}

// TestInsertRemove_RoundTrip verifies the round-trip property: inserting
// a key into a populated treap and removing it again restores the exact
// ordered content.
func TestInsertRemove_RoundTrip(t *testing.T) {
	tr := treap.New(treap.WithSeed(2024))
	for _, k := range []int64{8, 3, 11, 3, -5, 0, 8} {
		tr.Insert(k)
	}
	before := tr.InOrder()

	tr.Insert(6)
	tr.Remove(6)

	assert.Equal(t, before, tr.InOrder())
	assert.Equal(t, len(before), tr.Len())
}

// TestInOrder_AlwaysSorted runs a deterministic insert/remove mix and
// asserts the traversal never violates the ordering invariant.
func TestInOrder_AlwaysSorted(t *testing.T) {
	tr := treap.New(treap.WithSeed(0xFEED))
	keys := []int64{14, -3, 14, 0, 99, -80, 7, 7, 7, 22, 1, -3}

	for i, k := range keys {
		tr.Insert(k)
		got := tr.InOrder()
		require.Len(t, got, i+1)
		require.True(t, sort.SliceIsSorted(got, func(a, b int) bool {
			return got[a] < got[b]
		}), "after inserting %d", k)
	}

	for i, k := range keys {
		tr.Remove(k)
		got := tr.InOrder()
		require.Len(t, got, len(keys)-i-1)
		require.True(t, sort.SliceIsSorted(got, func(a, b int) bool {
			return got[a] < got[b]
		}), "after removing %d", k)
	}
	assert.True(t, tr.IsEmpty())
}

// TestMassInsertRemove drains a few hundred distinct keys and expects a
// clean empty state at the end.
func TestMassInsertRemove(t *testing.T) {
	tr := treap.New(treap.WithSeed(31337))

	const n = 500
	for v := int64(0); v < n; v++ {
		tr.Insert(v)
	}
	require.Equal(t, n, tr.Len())
	for v := int64(0); v < n; v++ {
		require.True(t, tr.Contains(v))
	}

	for v := int64(0); v < n; v++ {
		tr.Remove(v)
		assert.False(t, tr.Contains(v), "key %d must be gone", v)
	}
	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Len())
}

// TestWithSeed_Deterministic builds two treaps from the same seed and
// operation sequence; every observable must agree.
func TestWithSeed_Deterministic(t *testing.T) {
	ops := []int64{9, 1, 5, 1, 30, -2, 5, 5}

	a := treap.New(treap.WithSeed(777))
	b := treap.New(treap.WithSeed(777))
	for _, k := range ops {
		a.Insert(k)
		b.Insert(k)
	}
	a.Remove(5)
	b.Remove(5)

	assert.Equal(t, a.Len(), b.Len())
	assert.Equal(t, a.InOrder(), b.InOrder())
}

// TestDefaultSeeds_IndependentInstances makes sure default-constructed
// treaps still behave correctly (the shapes may differ, the contents
// must not).
func TestDefaultSeeds_IndependentInstances(t *testing.T) {
	a := treap.New()
	b := treap.New()
	for _, k := range []int64{4, 2, 9, 2} {
		a.Insert(k)
		b.Insert(k)
	}

	want := []int64{2, 2, 4, 9}
	assert.Equal(t, want, a.InOrder())
	assert.Equal(t, want, b.InOrder())
}
