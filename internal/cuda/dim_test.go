package cuda

import (
	"testing"

	"github.com/fxnlabs/kermaview/internal/modelerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDim(t *testing.T) {
	t.Run("defaults missing axes to 1", func(t *testing.T) {
		d, err := NewDim(7)
		require.NoError(t, err)
		assert.Equal(t, Dim{X: 7, Y: 1, Z: 1}, d)
	})

	t.Run("size and dims", func(t *testing.T) {
		cases := []struct {
			sizes []int
			size  int
			dims  int
		}{
			{[]int{1}, 1, 0},
			{[]int{1024}, 1024, 1},
			{[]int{1, 5}, 5, 1},
			{[]int{16, 16}, 256, 2},
			{[]int{4, 1, 4}, 16, 2},
			{[]int{2, 3, 4}, 24, 3},
		}
		for _, c := range cases {
			d := MustDim(c.sizes...)
			assert.Equal(t, c.size, d.Size(), "size of %v", c.sizes)
			assert.Equal(t, c.dims, d.Dims(), "dims of %v", c.sizes)
		}
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := NewDim(0)
		assert.ErrorIs(t, err, modelerr.ErrInvalidArgument)
		_, err = NewDim(4, -1)
		assert.ErrorIs(t, err, modelerr.ErrInvalidArgument)
	})

	t.Run("rejects wrong arity", func(t *testing.T) {
		_, err := NewDim()
		assert.ErrorIs(t, err, modelerr.ErrInvalidArgument)
		_, err = NewDim(1, 2, 3, 4)
		assert.ErrorIs(t, err, modelerr.ErrInvalidArgument)
	})

	t.Run("MustDim panics", func(t *testing.T) {
		assert.Panics(t, func() { MustDim(0) })
	})
}

func TestDimClassification(t *testing.T) {
	assert.True(t, MustDim(1).Is1D())
	assert.True(t, MustDim(32).Is1D())
	assert.False(t, MustDim(32).Is2D())
	assert.True(t, MustDim(32, 2).Is2D())
	assert.False(t, MustDim(32, 2).Is1D())
	assert.True(t, MustDim(2, 2, 2).Is3D())
	assert.False(t, MustDim(2, 2, 2).Is2D())
}

func TestDimEqualsAndWith(t *testing.T) {
	a := MustDim(8, 4)
	assert.True(t, a.Equals(MustDim(8, 4, 1)))
	assert.False(t, a.Equals(MustDim(4, 8)))

	b, err := a.WithY(2)
	require.NoError(t, err)
	assert.Equal(t, MustDim(8, 2), b)
	assert.Equal(t, MustDim(8, 4), a, "original must not change")

	_, err = a.WithZ(0)
	assert.ErrorIs(t, err, modelerr.ErrInvalidArgument)
}

func TestDimString(t *testing.T) {
	assert.Equal(t, "32", MustDim(32).String())
	assert.Equal(t, "32x2", MustDim(32, 2).String())
	assert.Equal(t, "2x3x4", MustDim(2, 3, 4).String())
}
