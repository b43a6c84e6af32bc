package distmat_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/dendra/distmat"
	"github.com/katalvlaran/dendra/groups"
)

// syntheticPairs builds full coverage over n names with predictable values.
func syntheticPairs(n int) []distmat.Pair {
	pairs := make([]distmat.Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, distmat.Pair{
				A:     fmt.Sprintf("e%03d", i),
				B:     fmt.Sprintf("e%03d", j),
				Value: float64(j - i),
			})
		}
	}

	return pairs
}

// benchmarkFromPairs runs the builder on full coverage over n names.
func benchmarkFromPairs(b *testing.B, n int) {
	pairs := syntheticPairs(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := distmat.FromPairs(pairs); err != nil {
			b.Fatalf("FromPairs failed: %v", err)
		}
	}
}

// BenchmarkFromPairs_N20 benchmarks synthesis over 20 names (190 pairs).
func BenchmarkFromPairs_N20(b *testing.B) { benchmarkFromPairs(b, 20) }

// BenchmarkFromPairs_N100 benchmarks synthesis over 100 names (4950 pairs).
func BenchmarkFromPairs_N100(b *testing.B) { benchmarkFromPairs(b, 100) }

// BenchmarkFromCentroids_N100 benchmarks Euclidean synthesis over 100 points.
func BenchmarkFromCentroids_N100(b *testing.B) {
	cs := make([]groups.Centroid, 100)
	for i := range cs {
		cs[i] = groups.Centroid{
			Name: fmt.Sprintf("g%03d", i),
			X:    float64(i),
			Y:    float64(i % 7),
			Z:    float64(i % 13),
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := distmat.FromCentroids(cs); err != nil {
			b.Fatalf("FromCentroids failed: %v", err)
		}
	}
}

// BenchmarkValidate_N100 benchmarks the full structural gate on a clean
// 100×100 matrix.
func BenchmarkValidate_N100(b *testing.B) {
	m, err := distmat.FromPairs(syntheticPairs(100))
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = distmat.Validate(m); err != nil {
			b.Fatalf("Validate failed: %v", err)
		}
	}
}
