package cuda

import (
	"testing"

	"github.com/fxnlabs/kermaview/internal/modelerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndex(t *testing.T) {
	idx, err := NewIndex(3, 2)
	require.NoError(t, err)
	assert.Equal(t, Index{X: 3, Y: 2, Z: 0}, idx)

	_, err = NewIndex(-1)
	assert.ErrorIs(t, err, modelerr.ErrInvalidArgument)

	_, err = NewIndex()
	assert.ErrorIs(t, err, modelerr.ErrInvalidArgument)
}

func TestLinearize(t *testing.T) {
	dim := MustDim(4, 3, 2)

	t.Run("row-major offsets", func(t *testing.T) {
		cases := []struct {
			idx  Index
			want int
		}{
			{MustIndex(0), 0},
			{MustIndex(3), 3},
			{MustIndex(0, 1), 4},
			{MustIndex(2, 2), 10},
			{MustIndex(1, 0, 1), 13},
			{MustIndex(3, 2, 1), 23},
		}
		for _, c := range cases {
			got, err := Linearize(c.idx, dim)
			require.NoError(t, err)
			assert.Equal(t, c.want, got, "linearize %s", c.idx)
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := Linearize(MustIndex(4), dim)
		assert.ErrorIs(t, err, modelerr.ErrDomain)
		_, err = Linearize(MustIndex(0, 3), dim)
		assert.ErrorIs(t, err, modelerr.ErrDomain)
		_, err = Linearize(MustIndex(0, 0, 2), dim)
		assert.ErrorIs(t, err, modelerr.ErrDomain)
		for _, idx := range []Index{{X: -1}, {Y: -1}, {Z: -1}} {
			_, err = Linearize(idx, dim)
			assert.ErrorIs(t, err, modelerr.ErrDomain, "index %s", idx)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		for off := 0; off < dim.Size(); off++ {
			idx, err := Delinearize(off, dim)
			require.NoError(t, err)
			got, err := Linearize(idx, dim)
			require.NoError(t, err)
			assert.Equal(t, off, got)
		}
	})

	t.Run("delinearize out of bounds", func(t *testing.T) {
		_, err := Delinearize(dim.Size(), dim)
		assert.ErrorIs(t, err, modelerr.ErrDomain)
		_, err = Delinearize(-1, dim)
		assert.ErrorIs(t, err, modelerr.ErrDomain)
	})
}
