// Package types models the shapes of values declared in CUDA source:
// integer, floating point, pointer, array and struct types.
//
// A Type is a tagged union over Kind. Aliases attached to a type are used
// for display only and never take part in equality.
package types

import (
	"fmt"
	"slices"

	"github.com/fxnlabs/kermaview/internal/cuda"
	"github.com/fxnlabs/kermaview/internal/modelerr"
)

// Kind identifies the variant of a Type.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindPtr
	KindArray
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindPtr:
		return "ptr"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind resolves the name produced by Kind.String.
func ParseKind(name string) (Kind, error) {
	for k := KindInt; k <= KindStruct; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, modelerr.UnknownVariant("type kind %q", name)
}

// DefaultPointerWidth is the bit width of pointers unless stated otherwise.
const DefaultPointerWidth = 64

// DefaultPointerWidthBytes is DefaultPointerWidth in bytes.
const DefaultPointerWidthBytes = DefaultPointerWidth / 8

// Type is a value type. Which fields are meaningful depends on kind.
type Type struct {
	kind    Kind
	bits    int  // int, float, ptr
	signed  bool // int
	elem    *Type
	space   cuda.AddressSpace // ptr
	dim     cuda.Dim          // array
	fields  []*Type           // struct
	name    string            // struct
	aliases []string
}

// NewInt creates an integer type of the given bit width.
func NewInt(bits int, signed bool) (*Type, error) {
	if bits < 1 {
		return nil, modelerr.InvalidArgument("int width must be positive, got %d", bits)
	}
	return &Type{kind: KindInt, bits: bits, signed: signed}, nil
}

// NewFloat creates a floating point type of the given bit width.
func NewFloat(bits int) (*Type, error) {
	if bits < 1 {
		return nil, modelerr.InvalidArgument("float width must be positive, got %d", bits)
	}
	return &Type{kind: KindFloat, bits: bits}, nil
}

// NewPtr creates a pointer to pointee in space with DefaultPointerWidth.
func NewPtr(pointee *Type, space cuda.AddressSpace) (*Type, error) {
	return NewPtrWidth(pointee, space, DefaultPointerWidth)
}

// NewPtrWidth creates a pointer of the given bit width.
func NewPtrWidth(pointee *Type, space cuda.AddressSpace, bits int) (*Type, error) {
	if pointee == nil {
		return nil, modelerr.InvalidArgument("pointer requires a pointee type")
	}
	if bits < 1 {
		return nil, modelerr.InvalidArgument("pointer width must be positive, got %d", bits)
	}
	return &Type{kind: KindPtr, elem: pointee, space: space, bits: bits}, nil
}

// NewArray creates an array of elem shaped by dim.
func NewArray(elem *Type, dim cuda.Dim) (*Type, error) {
	if elem == nil {
		return nil, modelerr.InvalidArgument("array requires an element type")
	}
	if dim.X < 1 || dim.Y < 1 || dim.Z < 1 {
		return nil, modelerr.InvalidArgument("array dims must be positive, got %+v", dim)
	}
	return &Type{kind: KindArray, elem: elem, dim: dim}, nil
}

// NewStruct creates an unnamed struct with the given element types.
func NewStruct(fields ...*Type) (*Type, error) {
	return NewNamedStruct("", fields...)
}

// NewNamedStruct creates a struct type. An empty name makes it unnamed.
func NewNamedStruct(name string, fields ...*Type) (*Type, error) {
	if len(fields) == 0 {
		return nil, modelerr.InvalidArgument("struct requires at least one element type")
	}
	for i, f := range fields {
		if f == nil {
			return nil, modelerr.InvalidArgument("struct element %d is nil", i)
		}
	}
	return &Type{kind: KindStruct, fields: slices.Clone(fields), name: name}, nil
}

// GetPtrType is NewPtrWidth reporting failures as construction errors.
func GetPtrType(pointee *Type, space cuda.AddressSpace, bits int) (*Type, error) {
	t, err := NewPtrWidth(pointee, space, bits)
	if err != nil {
		return nil, modelerr.Construction("pointer type", err)
	}
	return t, nil
}

// GetArrayType is NewArray reporting failures as construction errors.
func GetArrayType(elem *Type, dim cuda.Dim) (*Type, error) {
	t, err := NewArray(elem, dim)
	if err != nil {
		return nil, modelerr.Construction("array type", err)
	}
	return t, nil
}

// GetStructType is NewStruct reporting failures as construction errors.
func GetStructType(fields ...*Type) (*Type, error) {
	t, err := NewStruct(fields...)
	if err != nil {
		return nil, modelerr.Construction("struct type", err)
	}
	return t, nil
}

// GetNamedStructType is NewNamedStruct reporting failures as construction
// errors.
func GetNamedStructType(name string, fields ...*Type) (*Type, error) {
	t, err := NewNamedStruct(name, fields...)
	if err != nil {
		return nil, modelerr.Construction("struct type", err)
	}
	return t, nil
}

func mustType(t *Type, err error) *Type {
	if err != nil {
		panic(err)
	}
	return t
}

var (
	Int8  = mustType(NewInt(8, true))
	Int16 = mustType(NewInt(16, true))
	Int32 = mustType(NewInt(32, true))
	Int64 = mustType(NewInt(64, true))

	UInt8  = mustType(NewInt(8, false))
	UInt16 = mustType(NewInt(16, false))
	UInt32 = mustType(NewInt(32, false))
	UInt64 = mustType(NewInt(64, false))

	Float32 = mustType(NewFloat(32))
	Float64 = mustType(NewFloat(64))
	Float   = Float32
	Double  = Float64

	Boolean = mustType(NewInt(1, false)).AddAlias("bool").AddAlias("boolean")
)

// Kind returns the variant of t.
func (t *Type) Kind() Kind { return t.kind }

// IsIntType reports whether t is an integer type.
func (t *Type) IsIntType() bool { return t.kind == KindInt }

// IsFloatType reports whether t is a floating point type.
func (t *Type) IsFloatType() bool { return t.kind == KindFloat }

// IsBasicType reports whether t is an integer or floating point type.
func (t *Type) IsBasicType() bool { return t.kind == KindInt || t.kind == KindFloat }

// IsPtrType reports whether t is a pointer type.
func (t *Type) IsPtrType() bool { return t.kind == KindPtr }

// IsArrayType reports whether t is an array type.
func (t *Type) IsArrayType() bool { return t.kind == KindArray }

// IsStructType reports whether t is a struct type.
func (t *Type) IsStructType() bool { return t.kind == KindStruct }

// IsSigned reports whether an integer type is signed.
func (t *Type) IsSigned() bool { return t.kind == KindInt && t.signed }

// PointeeType returns the pointee of a pointer type, or nil.
func (t *Type) PointeeType() *Type {
	if t.kind != KindPtr {
		return nil
	}
	return t.elem
}

// ElementType returns the element of an array type, or nil.
func (t *Type) ElementType() *Type {
	if t.kind != KindArray {
		return nil
	}
	return t.elem
}

// ElementTypes returns the elements of a struct type.
func (t *Type) ElementTypes() []*Type { return slices.Clone(t.fields) }

// Dim returns the shape of an array type. Other types have a 1x1x1 shape.
func (t *Type) Dim() cuda.Dim {
	if t.kind != KindArray {
		return cuda.Dim{X: 1, Y: 1, Z: 1}
	}
	return t.dim
}

// AddressSpace returns the address space of a pointer type.
func (t *Type) AddressSpace() cuda.AddressSpace { return t.space }

// Name returns the name of a named struct type.
func (t *Type) Name() string { return t.name }

// IsNamed reports whether t is a named struct.
func (t *Type) IsNamed() bool { return t.kind == KindStruct && t.name != "" }

// Nesting returns the number of chained pointer indirections of t.
func (t *Type) Nesting() int {
	n := 0
	for cur := t; cur != nil && cur.kind == KindPtr; cur = cur.elem {
		n++
	}
	return n
}

// BitWidth returns the storage size of t in bits. Arrays multiply the
// element width, structs add up their elements without padding.
func (t *Type) BitWidth() int {
	switch t.kind {
	case KindInt, KindFloat, KindPtr:
		return t.bits
	case KindArray:
		return t.elem.BitWidth() * t.dim.Size()
	case KindStruct:
		total := 0
		for _, f := range t.fields {
			total += f.BitWidth()
		}
		return total
	default:
		return 0
	}
}

// AddAlias records name as an alias of t and returns t.
func (t *Type) AddAlias(name string) *Type {
	if !slices.Contains(t.aliases, name) {
		t.aliases = append(t.aliases, name)
	}
	return t
}

// HasAlias reports whether name is an alias of t.
func (t *Type) HasAlias(name string) bool { return slices.Contains(t.aliases, name) }

// Aliases returns the aliases of t in insertion order.
func (t *Type) Aliases() []string { return slices.Clone(t.aliases) }

// Equals reports whether t and o are structurally equal. Aliases never
// participate; struct names do when either side is named.
func (t *Type) Equals(o *Type) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil || t.kind != o.kind {
		return false
	}
	switch t.kind {
	case KindInt:
		return t.bits == o.bits && t.signed == o.signed
	case KindFloat:
		return t.bits == o.bits
	case KindPtr:
		return t.bits == o.bits && t.space.Equals(o.space) && t.elem.Equals(o.elem)
	case KindArray:
		return t.dim.Equals(o.dim) && t.elem.Equals(o.elem)
	case KindStruct:
		if t.name != o.name || len(t.fields) != len(o.fields) {
			return false
		}
		for i := range t.fields {
			if !t.fields[i].Equals(o.fields[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
