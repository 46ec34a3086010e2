package memory

import (
	"github.com/fxnlabs/kermaview/internal/cuda"
	"github.com/fxnlabs/kermaview/internal/modelerr"
	"github.com/fxnlabs/kermaview/internal/types"
)

// Shape is the layout of a memory region: an element type repeated over a
// Dim.
type Shape struct {
	elem *types.Type
	dim  cuda.Dim
	// whole is the type the shape was derived from, dropped on resize
	whole *types.Type
}

// NewShape creates a shape of dim elements of type elem.
func NewShape(elem *types.Type, dim cuda.Dim) (*Shape, error) {
	if elem == nil {
		return nil, modelerr.InvalidArgument("shape requires an element type")
	}
	if _, err := cuda.NewDim(dim.X, dim.Y, dim.Z); err != nil {
		return nil, err
	}
	return &Shape{elem: elem, dim: dim}, nil
}

// ShapeOf derives a shape from t. Array types unfold into their element
// type and dim; any other type is a single element.
func ShapeOf(t *types.Type) (*Shape, error) {
	if t == nil {
		return nil, modelerr.InvalidArgument("shape requires a type")
	}
	elem := t
	if t.IsArrayType() {
		elem = t.ElementType()
	}
	s, err := NewShape(elem, t.Dim())
	if err != nil {
		return nil, err
	}
	s.whole = t
	return s, nil
}

// ElementType returns the type of each element.
func (s *Shape) ElementType() *types.Type { return s.elem }

// Dim returns the number of elements along each axis.
func (s *Shape) Dim() cuda.Dim { return s.dim }

// Type returns the type spanning the whole shape: the element type for a
// single element, an array type otherwise.
func (s *Shape) Type() *types.Type {
	if s.whole != nil {
		return s.whole
	}
	if s.dim.Size() == 1 {
		return s.elem
	}
	// elem and dim were validated by NewShape and the setters
	t, _ := types.NewArray(s.elem, s.dim)
	return t
}

// X returns the number of elements along x.
func (s *Shape) X() int { return s.dim.X }

// Y returns the number of elements along y.
func (s *Shape) Y() int { return s.dim.Y }

// Z returns the number of elements along z.
func (s *Shape) Z() int { return s.dim.Z }

// Dims returns the number of axes with size > 1.
func (s *Shape) Dims() int { return s.dim.Dims() }

// SetX resizes the x axis.
func (s *Shape) SetX(v int) error { return s.set(s.dim.WithX(v)) }

// SetY resizes the y axis.
func (s *Shape) SetY(v int) error { return s.set(s.dim.WithY(v)) }

// SetZ resizes the z axis.
func (s *Shape) SetZ(v int) error { return s.set(s.dim.WithZ(v)) }

func (s *Shape) set(d cuda.Dim, err error) error {
	if err != nil {
		return err
	}
	s.dim = d
	s.whole = nil
	return nil
}

// Size returns the number of elements.
func (s *Shape) Size() int { return s.dim.Size() }

// ByteSize returns the storage size of the shape in bytes. Each element
// occupies a whole number of bytes, so a bool array takes one byte per
// element.
func (s *Shape) ByteSize() int {
	return (s.elem.BitWidth() + 7) / 8 * s.dim.Size()
}
