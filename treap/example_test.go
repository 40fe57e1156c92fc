package treap_test

import (
	"fmt"

	"github.com/katalvlaran/dsplayground/treap"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleTreap
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	An ordered multiset: duplicates are kept as multiplicities, removal
//	peels one occurrence at a time, traversal stays sorted throughout.
//
// Use case:
//
//	Sorted collections under churn — order books, sliding medians,
//	rank/select scaffolding.
//
// Complexity: expected O(log n) per Insert/Remove/Contains
func ExampleTreap() {
	tr := treap.New(treap.WithSeed(42))

	for _, k := range []int64{5, 3, 7, 3} {
		tr.Insert(k)
	}
	fmt.Println(tr.InOrder())

	tr.Remove(3) // one occurrence survives
	fmt.Println(tr.InOrder(), tr.Contains(3))

	tr.Remove(3) // last occurrence gone
	fmt.Println(tr.InOrder(), tr.Contains(3))
	// Output:
	// [3 3 5 7]
	// [3 5 7] true
	// [5 7] false
}
