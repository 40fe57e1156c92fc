// Package treap provides an ordered int64 multiset backed by a treap: a
// binary search tree on keys that is simultaneously a max-heap on
// uniformly random priorities, giving expected O(log n) depth without any
// explicit rebalancing thresholds.
//
// What
//
//   - New() creates an empty multiset; WithSeed(s) injects a
//     deterministic per-instance priority stream for reproducible tests.
//   - Insert(key) adds one occurrence; duplicates are collapsed into a
//     per-node multiplicity counter rather than extra nodes.
//   - Remove(key) drops one occurrence; the node is spliced out (its two
//     children merged) only when the last occurrence goes. Removing an
//     absent key is a no-op.
//   - Contains(key) is a plain BST descent, no mutation.
//   - Len() reports the total element count including duplicates, O(1).
//   - InOrder() returns a freshly built ascending slice, each key
//     repeated per its multiplicity — a snapshot, not a live cursor.
//
// Why
//
//   - An ordered multiset with expected-logarithmic insert/remove/lookup
//     and none of the rotation bookkeeping of red-black or AVL trees:
//     the i.i.d. random priorities do the balancing probabilistically.
//
// Invariants
//
//   - BST order: left subtree keys < node key < right subtree keys
//     (equal keys never form separate nodes).
//   - Heap order: a node's priority ≥ both children's priorities.
//   - size == left.size + count + right.size at every node.
//
// Randomness
//
//	Priorities come from a per-instance splitmix64 stream. By default the
//	seed is drawn from a process-wide atomic counter advanced by the
//	splitmix64 golden gamma, so concurrently created treaps get distinct
//	streams without locking. WithSeed pins the stream for determinism.
//
// Complexity (n = Len())
//
//   - Time:   expected O(log n) Insert/Remove/Contains; O(n) InOrder;
//     O(1) Len.
//   - Memory: O(d) where d is the number of distinct keys.
//
// Usage
//
//	t := treap.New()
//	t.Insert(5)
//	t.Insert(3)
//	t.Insert(3)
//	t.Remove(3)
//	fmt.Println(t.InOrder()) // [3 5]
//
//	// Deterministic shape for tests:
//	t = treap.New(treap.WithSeed(12345))
package treap
