// Package kernel describes the kernels found in a CUDA source and which of
// them is currently selected for visualization.
package kernel

import (
	"fmt"

	"github.com/fxnlabs/kermaview/internal/cuda"
	"github.com/fxnlabs/kermaview/internal/memory"
	"github.com/fxnlabs/kermaview/internal/modelerr"
)

// LaunchConfig is the geometry a kernel is launched with.
type LaunchConfig struct {
	Grid  *cuda.Grid
	Block *cuda.Block
}

// NewLaunchConfig validates gridDim and blockDim against limits.
func NewLaunchConfig(limits cuda.Limits, gridDim, blockDim cuda.Dim) (LaunchConfig, error) {
	block, err := cuda.NewBlockWithLimits(limits, blockDim, nil)
	if err != nil {
		return LaunchConfig{}, err
	}
	grid, err := cuda.NewGrid(gridDim, block)
	if err != nil {
		return LaunchConfig{}, err
	}
	return LaunchConfig{Grid: grid, Block: block}, nil
}

// Kernel is a __global__ function of the loaded source.
type Kernel struct {
	ID       int
	Name     string
	Launch   LaunchConfig
	Memories []*memory.Memory
}

// New creates a kernel. name must be non-empty.
func New(id int, name string, launch LaunchConfig) (*Kernel, error) {
	if name == "" {
		return nil, modelerr.InvalidArgument("kernel: invalid or missing name")
	}
	return &Kernel{ID: id, Name: name, Launch: launch}, nil
}

// Equals reports whether k and o have the same ID and name.
func (k *Kernel) Equals(o *Kernel) bool {
	return k != nil && o != nil && k.ID == o.ID && k.Name == o.Name
}

func (k *Kernel) String() string {
	return fmt.Sprintf("#%d %s", k.ID, k.Name)
}
