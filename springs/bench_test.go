package springs_test

import (
	"testing"

	"github.com/katalvlaran/puzzlekit/springs"
)

// BenchmarkCount_Folded measures one memoized count on a dense base record.
func BenchmarkCount_Folded(b *testing.B) {
	row, err := springs.ParseRow("?###???????? 3,2,1")
	if err != nil {
		b.Fatalf("ParseRow error: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = springs.Count(row)
	}
}

// BenchmarkCount_Unfolded measures the five-fold expanded variant, where the
// suffix memoization is what keeps the work polynomial.
func BenchmarkCount_Unfolded(b *testing.B) {
	row, err := springs.ParseRow("?###???????? 3,2,1")
	if err != nil {
		b.Fatalf("ParseRow error: %v", err)
	}
	unfolded, err := springs.Unfold(row, 5)
	if err != nil {
		b.Fatalf("Unfold error: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = springs.Count(unfolded)
	}
}
