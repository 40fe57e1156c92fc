package kmp_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/dsplayground/kmp"
)

// BenchmarkFindAll_Dense measures search over a highly repetitive text
// where fallback links are constantly exercised.
func BenchmarkFindAll_Dense(b *testing.B) {
	text := strings.Repeat("ab", 1<<15)
	pattern := "ababab"

	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = kmp.FindAll(text, pattern)
	}
}

// BenchmarkFindAll_Sparse measures search with essentially no partial
// matches.
func BenchmarkFindAll_Sparse(b *testing.B) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 1<<10)
	pattern := "wolverine"

	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = kmp.FindAll(text, pattern)
	}
}

// BenchmarkPrefixFunction measures the table build alone.
func BenchmarkPrefixFunction(b *testing.B) {
	pattern := strings.Repeat("abcab", 1<<12)

	b.ReportAllocs()
	b.SetBytes(int64(len(pattern)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = kmp.PrefixFunction(pattern)
	}
}
