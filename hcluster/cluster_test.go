package hcluster_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dendra/distmat"
	"github.com/katalvlaran/dendra/hcluster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineMatrix places a,b,c,d at 0,2,5,9 on a line; every linkage behaves
// differently enough on it to pin the merge sequences by hand.
func lineMatrix(t *testing.T) *distmat.Matrix {
	t.Helper()
	m, err := distmat.New(
		[]string{"a", "b", "c", "d"},
		[]float64{
			0, 2, 5, 9,
			2, 0, 3, 7,
			5, 3, 0, 4,
			9, 7, 4, 0,
		})
	require.NoError(t, err)

	return m
}

// ultraMatrix is a 3-leaf ultrametric: a,b join at 2, c joins them at 4.
func ultraMatrix(t *testing.T) *distmat.Matrix {
	t.Helper()
	m, err := distmat.New(
		[]string{"a", "b", "c"},
		[]float64{
			0, 2, 4,
			2, 0, 4,
			4, 4, 0,
		})
	require.NoError(t, err)

	return m
}

// TestCluster_SingleLinkage pins the full merge sequence: nearest-neighbor
// chaining absorbs c then d.
func TestCluster_SingleLinkage(t *testing.T) {
	dend, err := hcluster.Cluster(lineMatrix(t), hcluster.WithLinkage(hcluster.Single))
	require.NoError(t, err)

	assert.Equal(t, []hcluster.Merge{
		{Left: 0, Right: 1, Distance: 2, Size: 2},
		{Left: 2, Right: 4, Distance: 3, Size: 3},
		{Left: 3, Right: 5, Distance: 4, Size: 4},
	}, dend.Merges())
	assert.Equal(t, []int{3, 2, 0, 1}, dend.LeafOrder(), "left-to-right traversal as built")
}

// TestCluster_CompleteLinkage pins the sequence: farthest-neighbor pairs
// c with d instead of chaining.
func TestCluster_CompleteLinkage(t *testing.T) {
	dend, err := hcluster.Cluster(lineMatrix(t), hcluster.WithLinkage(hcluster.Complete))
	require.NoError(t, err)

	assert.Equal(t, []hcluster.Merge{
		{Left: 0, Right: 1, Distance: 2, Size: 2},
		{Left: 2, Right: 3, Distance: 4, Size: 2},
		{Left: 4, Right: 5, Distance: 9, Size: 4},
	}, dend.Merges())
}

// TestCluster_AverageLinkage pins the sequence AND the documented
// tie-break: at step 2 both {ab,c} and {c,d} sit at distance 4; the
// ascending scan keeps the lower slot pair {ab,c}.
func TestCluster_AverageLinkage(t *testing.T) {
	dend, err := hcluster.Cluster(lineMatrix(t), hcluster.WithLinkage(hcluster.Average))
	require.NoError(t, err)

	merges := dend.Merges()
	require.Len(t, merges, 3)
	assert.Equal(t, hcluster.Merge{Left: 0, Right: 1, Distance: 2, Size: 2}, merges[0])
	assert.Equal(t, hcluster.Merge{Left: 2, Right: 4, Distance: 4, Size: 3}, merges[1],
		"tie resolves to the lowest active pair, not to {c,d}")
	assert.Equal(t, 3, merges[2].Left)
	assert.Equal(t, 5, merges[2].Right)
	assert.InDelta(t, 20.0/3.0, merges[2].Distance, 1e-9, "(2·8 + 1·4)/3")
	assert.Equal(t, 4, merges[2].Size)
}

// TestCluster_WardLinkage pins the sequence; heights follow the
// minimum-variance form sqrt((2·n1·n2/(n1+n2))·‖c1−c2‖²).
func TestCluster_WardLinkage(t *testing.T) {
	dend, err := hcluster.Cluster(lineMatrix(t), hcluster.WithLinkage(hcluster.Ward))
	require.NoError(t, err)

	merges := dend.Merges()
	require.Len(t, merges, 3)
	assert.Equal(t, hcluster.Merge{Left: 0, Right: 1, Distance: 2, Size: 2}, merges[0])
	assert.Equal(t, hcluster.Merge{Left: 2, Right: 3, Distance: 4, Size: 2}, merges[1])
	assert.Equal(t, 4, merges[2].Left)
	assert.Equal(t, 5, merges[2].Right)
	assert.InDelta(t, math.Sqrt(72), merges[2].Distance, 1e-9,
		"centroids 1 and 7, sizes 2 and 2: sqrt(2·2·2/4·36)")
}

// TestCluster_CentroidLinkage pins the sequence on the line fixture.
func TestCluster_CentroidLinkage(t *testing.T) {
	dend, err := hcluster.Cluster(lineMatrix(t), hcluster.WithLinkage(hcluster.Centroid))
	require.NoError(t, err)

	merges := dend.Merges()
	require.Len(t, merges, 3)
	assert.Equal(t, hcluster.Merge{Left: 0, Right: 1, Distance: 2, Size: 2}, merges[0])
	assert.Equal(t, hcluster.Merge{Left: 2, Right: 4, Distance: 4, Size: 3}, merges[1],
		"centroid of {a,b} sits at 1, distance to c is 4")
	assert.InDelta(t, 20.0/3.0, merges[2].Distance, 1e-9, "centroid of {a,b,c} sits at 7/3")
}

// TestCluster_MonotoneHeights verifies non-decreasing heights for every
// criterion that guarantees them.
func TestCluster_MonotoneHeights(t *testing.T) {
	for _, l := range []hcluster.Linkage{
		hcluster.Single, hcluster.Complete, hcluster.Average, hcluster.Ward,
	} {
		dend, err := hcluster.Cluster(lineMatrix(t), hcluster.WithLinkage(l))
		require.NoError(t, err, "linkage %s", l)

		hs := dend.Heights()
		for i := 1; i < len(hs); i++ {
			assert.GreaterOrEqual(t, hs[i], hs[i-1],
				"%s heights must not decrease (step %d)", l, i)
		}
	}
}

// TestCluster_CentroidInversion verifies the documented non-monotonicity:
// a near-equilateral triangle merges its base at 2, then the apex joins
// the base midpoint at 1.8 — below the previous height.
func TestCluster_CentroidInversion(t *testing.T) {
	leg := math.Sqrt(4.24) // apex (1, 1.8) to either base corner (0,0), (2,0)
	m, err := distmat.FromPairs([]distmat.Pair{
		{A: "a", B: "b", Value: 2},
		{A: "a", B: "c", Value: leg},
		{A: "b", B: "c", Value: leg},
	})
	require.NoError(t, err)

	dend, err := hcluster.Cluster(m, hcluster.WithLinkage(hcluster.Centroid))
	require.NoError(t, err)

	hs := dend.Heights()
	require.Len(t, hs, 2)
	assert.InDelta(t, 2.0, hs[0], 1e-9)
	assert.InDelta(t, 1.8, hs[1], 1e-9, "apex to base midpoint")
	assert.Less(t, hs[1], hs[0], "centroid linkage may invert")
}

// TestCluster_SingleLeaf verifies the degenerate one-entity run: a valid
// tree with zero merges.
func TestCluster_SingleLeaf(t *testing.T) {
	m, err := distmat.New([]string{"solo"}, []float64{0})
	require.NoError(t, err)

	dend, err := hcluster.Cluster(m)
	require.NoError(t, err)

	assert.Equal(t, 1, dend.Leaves())
	assert.Empty(t, dend.Merges())
	assert.Equal(t, []int{0}, dend.LeafOrder())
}

// TestCluster_GateRejects verifies that broken matrices never reach the
// merge loop and surface as distmat sentinels.
func TestCluster_GateRejects(t *testing.T) {
	_, err := hcluster.Cluster(nil)
	assert.ErrorIs(t, err, distmat.ErrNilMatrix)

	skew, err := distmat.NewUnchecked([]string{"x", "y"}, []float64{0, 1, 2, 0})
	require.NoError(t, err)
	_, err = hcluster.Cluster(skew)
	assert.ErrorIs(t, err, distmat.ErrAsymmetry)

	negative, err := distmat.NewUnchecked([]string{"x", "y"}, []float64{0, -3, -3, 0})
	require.NoError(t, err)
	_, err = hcluster.Cluster(negative)
	assert.ErrorIs(t, err, distmat.ErrNegativeValue)

	dirty, err := distmat.NewUnchecked([]string{"x", "y"}, []float64{1, 2, 2, 1})
	require.NoError(t, err)
	_, err = hcluster.Cluster(dirty)
	assert.ErrorIs(t, err, distmat.ErrNonZeroDiagonal)
}

// TestCluster_Determinism verifies the identical-input ⇒ identical-output
// contract across repeated runs.
func TestCluster_Determinism(t *testing.T) {
	first, err := hcluster.Cluster(lineMatrix(t), hcluster.WithLinkage(hcluster.Average))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := hcluster.Cluster(lineMatrix(t), hcluster.WithLinkage(hcluster.Average))
		require.NoError(t, err)
		assert.Equal(t, first.Merges(), again.Merges())
		assert.Equal(t, first.LeafOrder(), again.LeafOrder())
	}
}

// TestDendrogram_Accessors verifies copies, labels and the preview string.
func TestDendrogram_Accessors(t *testing.T) {
	dend, err := hcluster.Cluster(ultraMatrix(t))
	require.NoError(t, err)

	labels := dend.Labels()
	labels[0] = "mutated"
	assert.Equal(t, []string{"a", "b", "c"}, dend.Labels(), "Labels is a copy")

	merges := dend.Merges()
	merges[0].Distance = 99
	assert.Equal(t, 2.0, dend.Merges()[0].Distance, "Merges is a copy")

	order := dend.LeafOrder()
	order[0] = 99
	assert.NotEqual(t, 99, dend.LeafOrder()[0], "LeafOrder is a copy")

	assert.Equal(t, hcluster.Average, dend.Linkage())
	assert.Equal(t, "hcluster.Dendrogram(n=3, average, top=4)", dend.String())
}

// TestParseLinkage verifies name resolution, case handling and rejection.
func TestParseLinkage(t *testing.T) {
	for want, name := range map[hcluster.Linkage]string{
		hcluster.Single:   "single",
		hcluster.Complete: "complete",
		hcluster.Average:  "average",
		hcluster.Centroid: "centroid",
		hcluster.Ward:     "ward",
	} {
		got, err := hcluster.ParseLinkage(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())

		got, err = hcluster.ParseLinkage("  " + name + " ")
		require.NoError(t, err, "surrounding whitespace tolerated")
		assert.Equal(t, want, got)
	}

	got, err := hcluster.ParseLinkage("WARD")
	require.NoError(t, err, "case-insensitive")
	assert.Equal(t, hcluster.Ward, got)

	_, err = hcluster.ParseLinkage("median")
	assert.ErrorIs(t, err, hcluster.ErrUnknownLinkage)

	assert.Equal(t, "unknown", hcluster.Linkage(99).String())
}
