package hcluster_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dendra/hcluster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleLineDend builds the single-linkage tree of the line fixture:
// merges (a,b)@2, (+c)@3, (+d)@4.
func singleLineDend(t *testing.T) *hcluster.Dendrogram {
	t.Helper()
	dend, err := hcluster.Cluster(lineMatrix(t), hcluster.WithLinkage(hcluster.Single))
	require.NoError(t, err)

	return dend
}

// TestCut_EveryK verifies the membership vector at every legal k.
func TestCut_EveryK(t *testing.T) {
	dend := singleLineDend(t)

	cases := map[int][]int{
		1: {0, 0, 0, 0},
		2: {0, 0, 0, 1}, // {a,b,c} vs {d}
		3: {0, 0, 1, 2}, // {a,b} vs {c} vs {d}
		4: {0, 1, 2, 3},
	}
	for k, want := range cases {
		got, err := hcluster.Cut(dend, k)
		require.NoError(t, err, "k=%d", k)
		assert.Equal(t, want, got, "k=%d", k)
	}
}

// TestCut_BadK verifies range rejection.
func TestCut_BadK(t *testing.T) {
	dend := singleLineDend(t)

	_, err := hcluster.Cut(dend, 0)
	assert.ErrorIs(t, err, hcluster.ErrBadK)
	_, err = hcluster.Cut(dend, 5)
	assert.ErrorIs(t, err, hcluster.ErrBadK)
	_, err = hcluster.Cut(nil, 2)
	assert.ErrorIs(t, err, hcluster.ErrNilDendrogram)
}

// TestCutHeight_Thresholds verifies flat clusters across the height range.
func TestCutHeight_Thresholds(t *testing.T) {
	dend := singleLineDend(t)

	cases := map[float64][]int{
		-1:  {0, 1, 2, 3}, // below everything: singletons
		1.9: {0, 1, 2, 3},
		2:   {0, 0, 1, 2}, // exactly at the first merge: inclusive
		2.5: {0, 0, 1, 2},
		3:   {0, 0, 0, 1},
		4:   {0, 0, 0, 0},
		99:  {0, 0, 0, 0},
	}
	for h, want := range cases {
		got, err := hcluster.CutHeight(dend, h)
		require.NoError(t, err, "h=%v", h)
		assert.Equal(t, want, got, "h=%v", h)
	}
}

// TestCutHeight_Gates verifies NaN and nil rejection.
func TestCutHeight_Gates(t *testing.T) {
	dend := singleLineDend(t)

	_, err := hcluster.CutHeight(dend, math.NaN())
	assert.ErrorIs(t, err, hcluster.ErrBadHeight)
	_, err = hcluster.CutHeight(nil, 1)
	assert.ErrorIs(t, err, hcluster.ErrNilDendrogram)
}

// TestCut_FirstAppearanceNumbering verifies that flat ids follow leaf
// order, not merge order: with {c,d} formed first under complete linkage,
// leaf a still gets id 0.
func TestCut_FirstAppearanceNumbering(t *testing.T) {
	dend, err := hcluster.Cluster(lineMatrix(t), hcluster.WithLinkage(hcluster.Complete))
	require.NoError(t, err)

	// Complete-linkage merges: (a,b)@2, (c,d)@4, (ab,cd)@9.
	got, err := hcluster.Cut(dend, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1}, got, "a's cluster is renumbered first")
}
