package sparsetable_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsplayground/sparsetable"
)

// BenchmarkBuild measures table construction over a large array.
func BenchmarkBuild(b *testing.B) {
	const n = 1 << 14
	r := rand.New(rand.NewSource(42))
	arr := make([]int64, n)
	for i := range arr {
		arr[i] = r.Int63()
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = sparsetable.Build(arr)
	}
}

// BenchmarkQuery measures random O(1) interval lookups.
func BenchmarkQuery(b *testing.B) {
	const n = 1 << 16
	r := rand.New(rand.NewSource(42))
	arr := make([]int64, n)
	for i := range arr {
		arr[i] = r.Int63()
	}
	st := sparsetable.Build(arr)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l, rr := r.Intn(n), r.Intn(n)
		if l > rr {
			l, rr = rr, l
		}
		_, _ = st.Query(l, rr)
	}
}
