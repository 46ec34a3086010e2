package cuda

import (
	"testing"

	"github.com/fxnlabs/kermaview/internal/modelerr"
	"github.com/stretchr/testify/assert"
)

func TestValidBlockDims(t *testing.T) {
	l := DefaultLimits
	assert.True(t, l.ValidBlockDims(1024, 1, 1))
	assert.True(t, l.ValidBlockDims(32, 32, 1))
	assert.True(t, l.ValidBlockDims(1, 1, 64))
	assert.False(t, l.ValidBlockDims(1025, 1, 1), "per-axis x")
	assert.False(t, l.ValidBlockDims(1, 1, 65), "per-axis z")
	assert.False(t, l.ValidBlockDims(64, 32, 1), "total threads")
	assert.False(t, l.ValidBlockDims(0, 1, 1))
}

func TestValidGridDims(t *testing.T) {
	l := DefaultLimits
	assert.True(t, l.ValidGridDims(1<<31-1, 1, 1))
	assert.True(t, l.ValidGridDims(1, 65535, 65535))
	assert.False(t, l.ValidGridDims(1, 65536, 1))
	assert.False(t, l.ValidGridDims(0, 1, 1))
}

func TestLimitsValidate(t *testing.T) {
	assert.NoError(t, DefaultLimits.Validate())

	l := DefaultLimits
	l.WarpSize = 0
	assert.ErrorIs(t, l.Validate(), modelerr.ErrInvalidArgument)

	l = DefaultLimits
	l.MaxBlockDim = Dim{X: 1024, Y: 0, Z: 64}
	assert.ErrorIs(t, l.Validate(), modelerr.ErrInvalidArgument)
}

func TestNumWarps(t *testing.T) {
	assert.Equal(t, 0, DefaultLimits.NumWarps(0))
	assert.Equal(t, 1, DefaultLimits.NumWarps(1))
	assert.Equal(t, 1, DefaultLimits.NumWarps(32))
	assert.Equal(t, 2, DefaultLimits.NumWarps(33))
	assert.Equal(t, 32, DefaultLimits.NumWarps(1000))
}

func TestParseAddressSpace(t *testing.T) {
	as, err := ParseAddressSpace("Shared")
	assert.NoError(t, err)
	assert.Equal(t, Shared, as)

	as, err = ParseAddressSpace("")
	assert.NoError(t, err)
	assert.Equal(t, Generic, as)

	_, err = ParseAddressSpace("texture")
	assert.ErrorIs(t, err, modelerr.ErrUnknownVariant)
}
