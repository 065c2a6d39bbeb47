package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gillespie/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_SetAt_RoundTrip(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	// Untouched cells stay zero.
	v, err = m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestDense_OutOfBounds(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	_, err = m.At(0, 2)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(2, 0, 1.0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestDense_Clone_Independent(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 2.0))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
	v, _ = clone.At(0, 0)
	assert.Equal(t, 2.0, v)
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, -1))
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 0, 2))
	require.NoError(t, m.Set(1, 1, 0))

	assert.Equal(t, "[-1, 1]\n[2, 0]\n", m.String())
}
