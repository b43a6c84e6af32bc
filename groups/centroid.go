package groups

import (
	"fmt"

	"github.com/katalvlaran/dendra/clusterfile"
)

// Centroid is the arithmetic mean of one group's member positions, one value
// per coordinate axis.
type Centroid struct {
	Name    string
	X, Y, Z float64
}

// Centroids partitions pos by the assignment and computes per-group means,
// axis by axis.
//
// The result lists explicit groups in ordinal order; the overflow bucket
// appears last and only when it is populated. An explicit group with zero
// members is a degenerate-data error — its centroid is undefined and a
// silent origin point would corrupt every downstream distance.
//
// Errors:
//   - ErrNilAssignment when a is nil.
//   - ErrPositionCount when len(pos) differs from a.N().
//   - ErrEmptyGroup for an explicit group with no members, wrapped with the
//     group name.
//
// Complexity: O(n + B) time, O(B) space for B buckets.
func Centroids(a *Assignment, pos []clusterfile.Position) ([]Centroid, error) {
	if a == nil {
		return nil, fmt.Errorf("groups: Centroids: %w", ErrNilAssignment)
	}
	if len(pos) != a.N() {
		return nil, fmt.Errorf("groups: Centroids: %d positions for %d sequences: %w",
			len(pos), a.N(), ErrPositionCount)
	}

	buckets := a.Buckets()

	var (
		sumX  = make([]float64, buckets)
		sumY  = make([]float64, buckets)
		sumZ  = make([]float64, buckets)
		count = make([]int, buckets)
	)

	// Single deterministic pass: accumulate per-bucket sums in index order.
	var (
		i int // sequence index
		g int // owning ordinal
	)
	for i = 0; i < a.N(); i++ {
		g = a.groupOf[i]
		sumX[g] += pos[i].X
		sumY[g] += pos[i].Y
		sumZ[g] += pos[i].Z
		count[g]++
	}

	overflow := a.Overflow()
	out := make([]Centroid, 0, buckets)

	var ord int
	for ord = 0; ord < buckets; ord++ {
		if count[ord] == 0 {
			if ord == overflow {
				continue // an empty overflow bucket is implicit, not declared
			}

			return nil, fmt.Errorf("groups: Centroids: group %q: %w", a.names[ord], ErrEmptyGroup)
		}
		inv := 1.0 / float64(count[ord])
		out = append(out, Centroid{
			Name: a.names[ord],
			X:    sumX[ord] * inv,
			Y:    sumY[ord] * inv,
			Z:    sumZ[ord] * inv,
		})
	}

	return out, nil
}
