package matrix_test

import (
	"testing"

	"github.com/katalvlaran/nwalign/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Shapes verifies valid and invalid shapes, including empty ones.
func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewDense[int](2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	empty, err := matrix.NewDense[int](0, 4)
	require.NoError(t, err, "zero rows is a valid shape")
	assert.Equal(t, 0, empty.Rows())
	assert.Equal(t, "", empty.String())

	_, err = matrix.NewDense[int](-1, 2)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense[uint8](2, -1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestDense_AtSet covers round trips and bounds errors.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense[int](2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, -7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, -7, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)

	var nilM *matrix.Dense[int]
	_, err = nilM.At(0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDense_CloneString checks deep clones and rendering.
func TestDense_CloneString(t *testing.T) {
	m, err := matrix.NewDense[int](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 1, -1))
	require.NoError(t, m.Set(1, 1, 2))

	c, err := m.Clone()
	require.NoError(t, err)
	require.NoError(t, c.Set(1, 1, 5))
	v, _ := m.At(1, 1)
	assert.Equal(t, 2, v, "clone must be independent")

	var nilM *matrix.Dense[int]
	_, err = nilM.Clone()
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	assert.Equal(t, "[1, -1]\n[0, 2]\n", m.String())
}
