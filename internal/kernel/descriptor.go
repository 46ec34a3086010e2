package kernel

import (
	"fmt"

	"github.com/fxnlabs/kermaview/internal/cuda"
	"github.com/fxnlabs/kermaview/internal/memory"
)

// Descriptor is the declarative form of a Kernel.
type Descriptor struct {
	Name     string              `yaml:"name" json:"name"`
	Grid     []int               `yaml:"grid" json:"grid"`
	Block    []int               `yaml:"block" json:"block"`
	Memories []memory.Descriptor `yaml:"memories,omitempty" json:"memories,omitempty"`
}

// Build constructs the kernel described by d with the given ID.
func (d Descriptor) Build(id int, limits cuda.Limits) (*Kernel, error) {
	gridDim, err := cuda.NewDim(d.Grid...)
	if err != nil {
		return nil, fmt.Errorf("kernel %q grid: %w", d.Name, err)
	}
	blockDim, err := cuda.NewDim(d.Block...)
	if err != nil {
		return nil, fmt.Errorf("kernel %q block: %w", d.Name, err)
	}
	launch, err := NewLaunchConfig(limits, gridDim, blockDim)
	if err != nil {
		return nil, fmt.Errorf("kernel %q: %w", d.Name, err)
	}
	k, err := New(id, d.Name, launch)
	if err != nil {
		return nil, err
	}
	k.Memories, err = memory.BuildAll(d.Memories)
	if err != nil {
		return nil, fmt.Errorf("kernel %q: %w", d.Name, err)
	}
	return k, nil
}

// LoadSelectionModel builds every descriptor into a selection model. Kernel
// IDs follow declaration order. The first kernel, if any, is selected.
func LoadSelectionModel(descs []Descriptor, limits cuda.Limits) (*SelectionModel, error) {
	s := NewSelectionModel()
	for i, d := range descs {
		k, err := d.Build(i, limits)
		if err != nil {
			return nil, err
		}
		s.AddKernel(k)
	}
	s.SelectKernelByID(0)
	return s, nil
}
