// Package cuda models the CUDA execution geometry: the size and index spaces
// of grids, blocks, warps and threads, and the hardware limits they are
// validated against.
package cuda

import (
	"fmt"

	"github.com/fxnlabs/kermaview/internal/modelerr"
)

// Dim is an immutable 3-dimensional size. Every axis is at least 1.
type Dim struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// NewDim creates a Dim from 1 to 3 sizes. Missing axes default to 1.
func NewDim(sizes ...int) (Dim, error) {
	if len(sizes) < 1 || len(sizes) > 3 {
		return Dim{}, modelerr.InvalidArgument("dim requires 1 to 3 sizes, got %d", len(sizes))
	}
	d := Dim{X: 1, Y: 1, Z: 1}
	axes := []*int{&d.X, &d.Y, &d.Z}
	for i, s := range sizes {
		if s < 1 {
			return Dim{}, modelerr.InvalidArgument("dim size %d on axis %d must be >= 1", s, i)
		}
		*axes[i] = s
	}
	return d, nil
}

// MustDim is like NewDim but panics on error.
func MustDim(sizes ...int) Dim {
	d, err := NewDim(sizes...)
	if err != nil {
		panic(err)
	}
	return d
}

// WithX returns a copy of d with the x axis set to v.
func (d Dim) WithX(v int) (Dim, error) { return NewDim(v, d.Y, d.Z) }

// WithY returns a copy of d with the y axis set to v.
func (d Dim) WithY(v int) (Dim, error) { return NewDim(d.X, v, d.Z) }

// WithZ returns a copy of d with the z axis set to v.
func (d Dim) WithZ(v int) (Dim, error) { return NewDim(d.X, d.Y, v) }

// Size returns the number of elements spanned by d.
func (d Dim) Size() int { return d.X * d.Y * d.Z }

// Dims returns the number of axes with size > 1.
func (d Dim) Dims() int {
	n := 0
	for _, s := range []int{d.X, d.Y, d.Z} {
		if s > 1 {
			n++
		}
	}
	return n
}

// Is1D reports whether at most one axis has size > 1.
func (d Dim) Is1D() bool { return d.Dims() <= 1 }

// Is2D reports whether exactly two axes have size > 1.
func (d Dim) Is2D() bool { return d.Dims() == 2 }

// Is3D reports whether all axes have size > 1.
func (d Dim) Is3D() bool { return d.Dims() == 3 }

// Equals reports whether d and o match on every axis.
func (d Dim) Equals(o Dim) bool { return d == o }

// Contains reports whether idx lies within d. Negative components are
// never contained.
func (d Dim) Contains(idx Index) bool {
	return idx.X >= 0 && idx.Y >= 0 && idx.Z >= 0 &&
		idx.X < d.X && idx.Y < d.Y && idx.Z < d.Z
}

func (d Dim) String() string {
	switch {
	case d.Z > 1:
		return fmt.Sprintf("%dx%dx%d", d.X, d.Y, d.Z)
	case d.Y > 1:
		return fmt.Sprintf("%dx%d", d.X, d.Y)
	default:
		return fmt.Sprintf("%d", d.X)
	}
}
