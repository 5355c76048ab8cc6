package contains_test

import (
	"testing"

	"contains"
)

const benchSize = 100_000

// BenchmarkContainsSeq_WorstCase benchmarks the naive window scan against a
// needle that almost matches at every position.
// Expectation: O(n*m) behavior, every window compared nearly to the end.
func BenchmarkContainsSeq_WorstCase(b *testing.B) {
	haystack := make([]int, benchSize)
	needle := make([]int, 64)
	needle[len(needle)-1] = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = contains.ContainsSeq(haystack, needle)
	}
}

// BenchmarkContainsSeq_EarlyHit benchmarks the common case where the needle
// sits near the front of the haystack.
func BenchmarkContainsSeq_EarlyHit(b *testing.B) {
	haystack := make([]int, benchSize)
	for i := range haystack {
		haystack[i] = i
	}
	needle := []int{10, 11, 12, 13}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = contains.ContainsSeq(haystack, needle)
	}
}

func BenchmarkContains_Miss(b *testing.B) {
	haystack := make([]int, benchSize)
	for i := range haystack {
		haystack[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = contains.Contains(haystack, -1)
	}
}
