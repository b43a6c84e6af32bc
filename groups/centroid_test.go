package groups_test

import (
	"testing"

	"github.com/katalvlaran/dendra/clusterfile"
	"github.com/katalvlaran/dendra/groups"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCentroids_TwoPointMean verifies the defining property: the centroid of
// {(0,0,0),(2,0,0)} is (1,0,0).
func TestCentroids_TwoPointMean(t *testing.T) {
	a, err := groups.Assign([]clusterfile.Group{{Name: "pair", Members: []int{0, 1}}}, 2)
	require.NoError(t, err)

	cs, err := groups.Centroids(a, []clusterfile.Position{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
	})
	require.NoError(t, err)

	require.Len(t, cs, 1, "empty overflow must be skipped")
	assert.Equal(t, groups.Centroid{Name: "pair", X: 1, Y: 0, Z: 0}, cs[0])
}

// TestCentroids_PerAxisMeans verifies that each axis averages independently.
func TestCentroids_PerAxisMeans(t *testing.T) {
	a, err := groups.Assign([]clusterfile.Group{{Name: "tri", Members: []int{0, 1, 2}}}, 3)
	require.NoError(t, err)

	cs, err := groups.Centroids(a, []clusterfile.Position{
		{X: 1, Y: 10, Z: 100},
		{X: 2, Y: 20, Z: 200},
		{X: 3, Y: 30, Z: 300},
	})
	require.NoError(t, err)

	require.Len(t, cs, 1)
	assert.InDelta(t, 2, cs[0].X, 1e-12)
	assert.InDelta(t, 20, cs[0].Y, 1e-12)
	assert.InDelta(t, 200, cs[0].Z, 1e-12)
}

// TestCentroids_EmptyExplicitGroup verifies that an explicit group with no
// members errors with ErrEmptyGroup rather than yielding a silent origin.
func TestCentroids_EmptyExplicitGroup(t *testing.T) {
	a, err := groups.Assign([]clusterfile.Group{
		{Name: "hollow", Members: nil},
		{Name: "full", Members: []int{0}},
	}, 1)
	require.NoError(t, err)

	_, err = groups.Centroids(a, []clusterfile.Position{{X: 1, Y: 2, Z: 3}})
	assert.ErrorIs(t, err, groups.ErrEmptyGroup, "memberless explicit group must error")
	assert.Contains(t, err.Error(), "hollow", "error names the empty group")
}

// TestCentroids_OverflowIncludedWhenPopulated verifies that a populated
// overflow bucket contributes a trailing centroid under the sentinel name.
func TestCentroids_OverflowIncludedWhenPopulated(t *testing.T) {
	a, err := groups.Assign([]clusterfile.Group{{Name: "A", Members: []int{0}}}, 3)
	require.NoError(t, err)

	cs, err := groups.Centroids(a, []clusterfile.Position{
		{X: 5, Y: 5, Z: 5},
		{X: 0, Y: 0, Z: 0},
		{X: 4, Y: 2, Z: 6},
	})
	require.NoError(t, err)

	require.Len(t, cs, 2, "explicit group plus populated overflow")
	assert.Equal(t, "A", cs[0].Name)
	assert.Equal(t, groups.OverflowName, cs[1].Name, "overflow centroid comes last")
	assert.InDelta(t, 2, cs[1].X, 1e-12)
	assert.InDelta(t, 1, cs[1].Y, 1e-12)
	assert.InDelta(t, 3, cs[1].Z, 1e-12)
}

// TestCentroids_OverflowSkippedWhenEmpty verifies that full explicit coverage
// produces no overflow centroid.
func TestCentroids_OverflowSkippedWhenEmpty(t *testing.T) {
	a, err := groups.Assign([]clusterfile.Group{
		{Name: "A", Members: []int{0, 1}},
		{Name: "B", Members: []int{2}},
	}, 3)
	require.NoError(t, err)

	cs, err := groups.Centroids(a, []clusterfile.Position{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 2, Z: 2},
		{X: 9, Y: 9, Z: 9},
	})
	require.NoError(t, err)

	require.Len(t, cs, 2, "no overflow entry when every index is claimed")
	assert.Equal(t, "A", cs[0].Name)
	assert.Equal(t, "B", cs[1].Name)
}

// TestCentroids_PositionCountMismatch verifies the length gate between the
// assignment and the position slice.
func TestCentroids_PositionCountMismatch(t *testing.T) {
	a, err := groups.Assign([]clusterfile.Group{{Name: "A", Members: []int{0}}}, 2)
	require.NoError(t, err)

	_, err = groups.Centroids(a, []clusterfile.Position{{X: 1, Y: 1, Z: 1}})
	assert.ErrorIs(t, err, groups.ErrPositionCount, "1 position for 2 sequences must error")
}

// TestCentroids_NilAssignment verifies the nil-receiver gate.
func TestCentroids_NilAssignment(t *testing.T) {
	_, err := groups.Centroids(nil, nil)
	assert.ErrorIs(t, err, groups.ErrNilAssignment)
}
