package mdscale_test

import (
	"testing"

	"github.com/katalvlaran/dendra/mdscale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEmbedding_CopySemantics mutates every returned buffer and re-reads:
// the embedding itself must stay untouched.
func TestEmbedding_CopySemantics(t *testing.T) {
	emb, err := mdscale.Scale(triangleMatrix(t), 2)
	require.NoError(t, err)

	names := emb.Names()
	names[0] = "clobbered"
	assert.Equal(t, "origin", emb.Names()[0])

	row, err := emb.At(1)
	require.NoError(t, err)
	orig := row[0]
	row[0] = 1e9
	again, err := emb.At(1)
	require.NoError(t, err)
	assert.Equal(t, orig, again[0])

	pts := emb.Coords()
	pts[2][1] = 1e9
	assert.NotEqual(t, 1e9, emb.Coords()[2][1])

	eig := emb.Eigenvalues()
	eig[0] = -5
	assert.NotEqual(t, -5.0, emb.Eigenvalues()[0])
}

// TestEmbedding_AtOutOfRange verifies the index gate on row access.
func TestEmbedding_AtOutOfRange(t *testing.T) {
	emb, err := mdscale.Scale(triangleMatrix(t), 1)
	require.NoError(t, err)

	_, err = emb.At(-1)
	assert.ErrorIs(t, err, mdscale.ErrOutOfRange)
	_, err = emb.At(3)
	assert.ErrorIs(t, err, mdscale.ErrOutOfRange)
}

// TestEmbedding_String pins the compact summary format.
func TestEmbedding_String(t *testing.T) {
	emb, err := mdscale.Scale(triangleMatrix(t), 2)
	require.NoError(t, err)

	assert.Equal(t, "mdscale.Embedding(n=3, dim=2, rank=2)", emb.String())
}
