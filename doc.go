// Package dsplayground is your in-memory playground for the classic
// algorithmic data structures — from near-constant-time set merging to
// linear-time substring search.
//
// 🚀 What is dsplayground?
//
//	A small, focused, pure-Go library that brings together:
//		• UnionFind   — disjoint-set membership & merging (path compression + union by size)
//		• FenwickTree — point updates & prefix sums in O(log n)
//		• SparseTable — O(1) idempotent range queries (min by default) after O(n log n) build
//		• Treap       — ordered multiset balanced by random priorities
//		• KMP         — prefix function & overlap-aware substring search in O(n + m)
//
// ✨ Why choose dsplayground?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable contracts – sentinel errors for bad indices, comma-ok for absence
//   - Pure Go – no cgo, no hidden deps in the algorithmic core
//   - Inspectable – read-only accessors expose internal state for learning & tests
//
// Under the hood, everything is organized under five leaf packages,
// none depending on another:
//
//	unionfind/   — disjoint-set union (DSU)
//	fenwick/     — binary indexed tree
//	sparsetable/ — static range-minimum (or any idempotent op) index
//	treap/       — randomized balanced BST with duplicate counting
//	kmp/         — Knuth–Morris–Pratt string search
//
// Quick ASCII example:
//
//	    {0} {1} {2} {3}          union(1,2); union(2,3)
//	     │                 ⇒      {0} {1,2,3}
//	     └── four singletons            └── two sets, count()==2
//
// A scripted terminal playground lives in cmd/dsplay: one subcommand per
// structure, rendering internal state after each operation.
//
//	go get github.com/katalvlaran/dsplayground
package dsplayground
