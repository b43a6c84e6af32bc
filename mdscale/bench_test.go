package mdscale_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/dendra/distmat"
	"github.com/katalvlaran/dendra/groups"
	"github.com/katalvlaran/dendra/mdscale"
)

// benchMatrix builds n distinct lattice points in 3-D and takes their
// pairwise distances: full-rank, symmetric, fully deterministic.
func benchMatrix(b *testing.B, n int) *distmat.Matrix {
	b.Helper()

	cs := make([]groups.Centroid, n)
	for i := range cs {
		cs[i] = groups.Centroid{
			Name: fmt.Sprintf("p%03d", i),
			X:    float64(i % 5),
			Y:    float64((i / 5) % 7),
			Z:    float64(i / 35),
		}
	}

	m, err := distmat.FromCentroids(cs)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}

	return m
}

// benchmarkScale runs the full gate + factorization + extraction path.
func benchmarkScale(b *testing.B, n, dim int) {
	m := benchMatrix(b, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mdscale.Scale(m, dim); err != nil {
			b.Fatalf("Scale failed: %v", err)
		}
	}
}

// BenchmarkScale_N50_Dim3 embeds 50 entities into 3-D.
func BenchmarkScale_N50_Dim3(b *testing.B) { benchmarkScale(b, 50, 3) }

// BenchmarkScale_N100_Dim3 embeds 100 entities into 3-D.
func BenchmarkScale_N100_Dim3(b *testing.B) { benchmarkScale(b, 100, 3) }

// BenchmarkScale_N100_Dim2 embeds 100 entities into the plane.
func BenchmarkScale_N100_Dim2(b *testing.B) { benchmarkScale(b, 100, 2) }
