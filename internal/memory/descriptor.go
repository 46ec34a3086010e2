package memory

import (
	"fmt"

	"github.com/fxnlabs/kermaview/internal/cuda"
	"github.com/fxnlabs/kermaview/internal/types"
)

// Descriptor is the declarative form of a Memory.
type Descriptor struct {
	Name  string           `yaml:"name" json:"name"`
	Type  types.Descriptor `yaml:"type" json:"type"`
	Space string           `yaml:"space,omitempty" json:"space,omitempty"`
	Src   *Src             `yaml:"src,omitempty" json:"src,omitempty"`
}

// Build constructs the Memory described by d.
func (d Descriptor) Build() (*Memory, error) {
	t, err := d.Type.Build()
	if err != nil {
		return nil, fmt.Errorf("memory %q: %w", d.Name, err)
	}
	shape, err := ShapeOf(t)
	if err != nil {
		return nil, fmt.Errorf("memory %q: %w", d.Name, err)
	}
	space, err := cuda.ParseAddressSpace(d.Space)
	if err != nil {
		return nil, fmt.Errorf("memory %q: %w", d.Name, err)
	}
	return New(d.Name, shape, Options{AddressSpace: &space, Src: d.Src})
}

// BuildAll builds every descriptor, stopping at the first failure.
func BuildAll(descs []Descriptor) ([]*Memory, error) {
	out := make([]*Memory, 0, len(descs))
	for _, d := range descs {
		m, err := d.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
