package cuda

import (
	"fmt"

	"github.com/fxnlabs/kermaview/internal/modelerr"
)

// Index is a 3-dimensional coordinate. Every component is non-negative.
//
// There is no "unknown" index value. Entities that may lack an index carry
// a *Index or return (Index, bool).
type Index struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// NewIndex creates an Index from 1 to 3 coordinates. Missing components
// default to 0.
func NewIndex(coords ...int) (Index, error) {
	if len(coords) < 1 || len(coords) > 3 {
		return Index{}, modelerr.InvalidArgument("index requires 1 to 3 coordinates, got %d", len(coords))
	}
	var idx Index
	comps := []*int{&idx.X, &idx.Y, &idx.Z}
	for i, c := range coords {
		if c < 0 {
			return Index{}, modelerr.InvalidArgument("index coordinate %d on axis %d must be >= 0", c, i)
		}
		*comps[i] = c
	}
	return idx, nil
}

// MustIndex is like NewIndex but panics on error.
func MustIndex(coords ...int) Index {
	idx, err := NewIndex(coords...)
	if err != nil {
		panic(err)
	}
	return idx
}

// Is1D reports whether only the x component may be non-zero.
func (i Index) Is1D() bool { return i.Y == 0 && i.Z == 0 }

// Is2D reports whether the y component is set and z is not.
func (i Index) Is2D() bool { return i.Y > 0 && i.Z == 0 }

// Is3D reports whether the z component is set.
func (i Index) Is3D() bool { return i.Z > 0 }

// Equals reports whether i and o match on every component.
func (i Index) Equals(o Index) bool { return i == o }

func (i Index) String() string {
	return fmt.Sprintf("(%d,%d,%d)", i.X, i.Y, i.Z)
}

// Linearize maps idx to its row-major offset within dim.
func Linearize(idx Index, dim Dim) (int, error) {
	if !dim.Contains(idx) {
		return 0, modelerr.Domain("index %s outside dim %s", idx, dim)
	}
	return idx.X + idx.Y*dim.X + idx.Z*dim.X*dim.Y, nil
}

// Delinearize maps a row-major offset within dim back to an Index.
func Delinearize(offset int, dim Dim) (Index, error) {
	if offset < 0 || offset >= dim.Size() {
		return Index{}, modelerr.Domain("offset %d outside dim %s", offset, dim)
	}
	plane := dim.X * dim.Y
	return Index{
		X: offset % dim.X,
		Y: (offset % plane) / dim.X,
		Z: offset / plane,
	}, nil
}
