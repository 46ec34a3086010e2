// Package memory describes device memory regions declared by a kernel: their
// name, shape, address space and the source declaration they come from.
// Memory contents are not modeled.
package memory

import (
	"fmt"

	"github.com/fxnlabs/kermaview/internal/cuda"
	"github.com/fxnlabs/kermaview/internal/modelerr"
	"github.com/fxnlabs/kermaview/internal/types"
)

// Src is display-only metadata about the source declaration of a memory.
// None of it is parsed or validated.
type Src struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	DeclContext string `yaml:"declContext" json:"declContext"`
}

// Options holds the optional properties of a Memory.
type Options struct {
	// AddressSpace defaults to cuda.Generic when nil.
	AddressSpace *cuda.AddressSpace
	Src          *Src
}

// Memory is a named device memory region.
type Memory struct {
	name  string
	shape *Shape
	space cuda.AddressSpace
	src   *Src
}

// New creates a memory. name must be non-empty and shape non-nil.
func New(name string, shape *Shape, opts Options) (*Memory, error) {
	if name == "" {
		return nil, modelerr.InvalidArgument("memory: invalid or missing name")
	}
	if shape == nil || shape.elem == nil {
		return nil, modelerr.InvalidArgument("memory %q: invalid or missing shape", name)
	}
	m := &Memory{name: name, shape: shape, space: cuda.Generic, src: opts.Src}
	if opts.AddressSpace != nil {
		m.space = *opts.AddressSpace
	}
	return m, nil
}

// Name returns the name of the memory.
func (m *Memory) Name() string { return m.name }

// Shape returns the shape of the memory.
func (m *Memory) Shape() *Shape { return m.shape }

// Type returns the type spanning the whole memory.
func (m *Memory) Type() *types.Type { return m.shape.Type() }

// AddressSpace returns the address space the memory resides in.
func (m *Memory) AddressSpace() cuda.AddressSpace { return m.space }

// Src returns the source declaration, if any.
func (m *Memory) Src() *Src { return m.src }

// HasSrc reports whether a source declaration is attached.
func (m *Memory) HasSrc() bool { return m.src != nil }

// SetSrc attaches a source declaration.
func (m *Memory) SetSrc(src *Src) *Memory {
	m.src = src
	return m
}

// X returns the number of elements along x.
func (m *Memory) X() int { return m.shape.X() }

// Y returns the number of elements along y.
func (m *Memory) Y() int { return m.shape.Y() }

// Z returns the number of elements along z.
func (m *Memory) Z() int { return m.shape.Z() }

// SetX resizes the memory along x.
func (m *Memory) SetX(v int) error { return m.shape.SetX(v) }

// SetY resizes the memory along y.
func (m *Memory) SetY(v int) error { return m.shape.SetY(v) }

// SetZ resizes the memory along z.
func (m *Memory) SetZ(v int) error { return m.shape.SetZ(v) }

// Dims returns the number of axes with size > 1.
func (m *Memory) Dims() int { return m.shape.Dims() }

// IsArray reports whether any dimension of the memory is larger than 1.
func (m *Memory) IsArray() bool {
	return m.shape.X() > 1 || m.shape.Y() > 1 || m.shape.Z() > 1
}

// IsVector is an alias for IsArray.
func (m *Memory) IsVector() bool { return m.IsArray() }

// IsScalar reports whether the memory holds a single element.
func (m *Memory) IsScalar() bool { return !m.IsArray() }

// IsMultiDimensionalArray reports whether the memory is an array of more
// than one dimension.
func (m *Memory) IsMultiDimensionalArray() bool { return m.IsArray() && m.Dims() > 1 }

func (m *Memory) String() string {
	return fmt.Sprintf("%s %s %s", m.space, m.shape.Type(), m.name)
}
