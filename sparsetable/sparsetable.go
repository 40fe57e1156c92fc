package sparsetable

import "cmp"

// Option configures table construction via functional arguments.
type Option[T cmp.Ordered] func(*options[T])

type options[T cmp.Ordered] struct {
	combine func(a, b T) T
}

// WithCombine substitutes the combining operation used both during Build
// and in Query. The operation must be idempotent (f(x,x)==x),
// commutative, and associative — min, max, gcd, bitwise and/or all
// qualify; sum does not. A nil fn is ignored and the default (min) kept.
func WithCombine[T cmp.Ordered](fn func(a, b T) T) Option[T] {
	return func(o *options[T]) {
		if fn != nil {
			o.combine = fn
		}
	}
}

// SparseTable answers idempotent range queries over a frozen slice.
//
// Invariants: table[0] is a copy of the source; table[k][i] combines
// table[k-1][i] with table[k-1][i+2^(k-1)]. Immutable after Build, so
// concurrent readers are safe once construction has completed.
type SparseTable[T cmp.Ordered] struct {
	table   [][]T          // table[k][i] covers [i, i+2^k)
	log     []int          // log[len] = floor(log2(len)), log[0] unused
	combine func(a, b T) T // idempotent combiner
}

// Build precomputes all doubling rows from arr in O(n log n).
// An empty (or nil) arr yields a valid table on which every Query
// reports no result.
func Build[T cmp.Ordered](arr []T, opts ...Option[T]) *SparseTable[T] {
	// 1. Resolve options; minimum is the default combiner.
	o := options[T]{combine: func(a, b T) T { return min(a, b) }}
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Precompute floor(log2) for every queryable length 1..n.
	n := len(arr)
	log := make([]int, n+1)
	for i := 2; i <= n; i++ {
		log[i] = log[i/2] + 1
	}

	st := &SparseTable[T]{log: log, combine: o.combine}
	if n == 0 {
		return st
	}

	// 3. Row 0 is a private copy of the source.
	maxK := log[n] + 1
	st.table = make([][]T, 1, maxK)
	st.table[0] = make([]T, n)
	copy(st.table[0], arr)

	// 4. Each further row k combines two half-windows from row k-1.
	for k := 1; k < maxK; k++ {
		width := 1 << k
		prev := st.table[k-1]
		row := make([]T, n-width+1)
		for i := range row {
			row[i] = o.combine(prev[i], prev[i+width/2])
		}
		st.table = append(st.table, row)
	}

	return st
}

// Query answers the inclusive range [l, r]. The second result is false —
// and the first is the zero value — when the table is empty, l > r, or
// r is out of bounds; a false here means "no result", not a failure.
func (s *SparseTable[T]) Query(l, r int) (T, bool) {
	var zero T
	if len(s.table) == 0 {
		return zero, false
	}
	if l < 0 || l > r || r >= len(s.table[0]) {
		return zero, false
	}

	// Two overlapping 2^k windows cover [l, r] exactly.
	k := s.log[r-l+1]

	return s.combine(s.table[k][l], s.table[k][r+1-(1<<k)]), true
}

// Len returns the length of the source array the table was built from.
func (s *SparseTable[T]) Len() int {
	if len(s.table) == 0 {
		return 0
	}

	return len(s.table[0])
}
