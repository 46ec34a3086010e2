package cuda

import "github.com/fxnlabs/kermaview/internal/modelerr"

// Limits holds the hardware constraints geometry is validated against.
type Limits struct {
	WarpSize        int `yaml:"warpSize"`
	MaxBlockDim     Dim `yaml:"maxBlockDim"`
	MaxBlockThreads int `yaml:"maxBlockThreads"`
	MaxGridDim      Dim `yaml:"maxGridDim"`
}

// DefaultLimits mirrors compute capability 3.0 and later devices.
var DefaultLimits = Limits{
	WarpSize:        32,
	MaxBlockDim:     Dim{X: 1024, Y: 1024, Z: 64},
	MaxBlockThreads: 1024,
	MaxGridDim:      Dim{X: 1<<31 - 1, Y: 65535, Z: 65535},
}

// Validate checks that every limit is positive.
func (l Limits) Validate() error {
	if l.WarpSize < 1 {
		return modelerr.InvalidArgument("warp size must be positive, got %d", l.WarpSize)
	}
	if l.MaxBlockThreads < 1 {
		return modelerr.InvalidArgument("max block threads must be positive, got %d", l.MaxBlockThreads)
	}
	for _, d := range []Dim{l.MaxBlockDim, l.MaxGridDim} {
		if d.X < 1 || d.Y < 1 || d.Z < 1 {
			return modelerr.InvalidArgument("max dims must be positive, got %s", d)
		}
	}
	return nil
}

// ValidBlockDims reports whether a block of x*y*z threads fits the per-axis
// and total thread limits.
func (l Limits) ValidBlockDims(x, y, z int) bool {
	if x < 1 || y < 1 || z < 1 {
		return false
	}
	if x > l.MaxBlockDim.X || y > l.MaxBlockDim.Y || z > l.MaxBlockDim.Z {
		return false
	}
	return x*y*z <= l.MaxBlockThreads
}

// ValidGridDims reports whether a grid of x*y*z blocks fits the per-axis
// grid limits.
func (l Limits) ValidGridDims(x, y, z int) bool {
	if x < 1 || y < 1 || z < 1 {
		return false
	}
	return x <= l.MaxGridDim.X && y <= l.MaxGridDim.Y && z <= l.MaxGridDim.Z
}

// NumWarps returns the number of warps needed to cover threads.
func (l Limits) NumWarps(threads int) int {
	return (threads + l.WarpSize - 1) / l.WarpSize
}
