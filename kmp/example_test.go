package kmp_test

import (
	"fmt"

	"github.com/katalvlaran/dsplayground/kmp"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFindAll
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Overlap-aware search: "aa" occurs four times in "aaaaa" because
//	matches may share bytes.
//
// Use case:
//
//	Log scanning, repeated-motif detection, anywhere naive search's
//	O(n·m) worst case bites.
//
// Complexity: O(n + m)
func ExampleFindAll() {
	fmt.Println(kmp.FindAll("aaaaa", "aa"))
	fmt.Println(kmp.FindAll("ababcabababc", "abab"))
	fmt.Println(kmp.FindAll("hello", "xyz"))
	// Output:
	// [0 1 2 3]
	// [0 5 7]
	// []
}

// ExamplePrefixFunction shows the border lengths that drive the search.
func ExamplePrefixFunction() {
	fmt.Println(kmp.PrefixFunction("ababcabab"))
	// Output:
	// [0 0 1 2 0 1 2 3 4]
}
