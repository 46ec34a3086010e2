package types

import (
	"github.com/fxnlabs/kermaview/internal/cuda"
	"github.com/fxnlabs/kermaview/internal/modelerr"
)

// Descriptor is the declarative form of a Type, as found in configuration
// files and HTTP payloads.
//
//	kind: ptr
//	space: global
//	elem:
//	  kind: int
//	  bits: 32
//	  signed: true
type Descriptor struct {
	Kind    string       `yaml:"kind" json:"kind"`
	Bits    int          `yaml:"bits,omitempty" json:"bits,omitempty"`
	Signed  bool         `yaml:"signed,omitempty" json:"signed,omitempty"`
	Elem    *Descriptor  `yaml:"elem,omitempty" json:"elem,omitempty"`
	Dim     []int        `yaml:"dim,omitempty" json:"dim,omitempty"`
	Space   string       `yaml:"space,omitempty" json:"space,omitempty"`
	Fields  []Descriptor `yaml:"fields,omitempty" json:"fields,omitempty"`
	Name    string       `yaml:"name,omitempty" json:"name,omitempty"`
	Aliases []string     `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// Build constructs the Type described by d.
func (d Descriptor) Build() (*Type, error) {
	kind, err := ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}

	var t *Type
	switch kind {
	case KindInt:
		t, err = NewInt(d.Bits, d.Signed)
	case KindFloat:
		t, err = NewFloat(d.Bits)
	case KindPtr:
		t, err = d.buildPtr()
	case KindArray:
		t, err = d.buildArray()
	case KindStruct:
		t, err = d.buildStruct()
	default:
		err = modelerr.UnknownVariant("type kind %s", kind)
	}
	if err != nil {
		return nil, err
	}
	for _, a := range d.Aliases {
		t.AddAlias(a)
	}
	return t, nil
}

func (d Descriptor) buildElem() (*Type, error) {
	if d.Elem == nil {
		return nil, modelerr.InvalidArgument("%s descriptor requires elem", d.Kind)
	}
	return d.Elem.Build()
}

func (d Descriptor) buildPtr() (*Type, error) {
	elem, err := d.buildElem()
	if err != nil {
		return nil, err
	}
	space, err := cuda.ParseAddressSpace(d.Space)
	if err != nil {
		return nil, err
	}
	bits := d.Bits
	if bits == 0 {
		bits = DefaultPointerWidth
	}
	return GetPtrType(elem, space, bits)
}

func (d Descriptor) buildArray() (*Type, error) {
	elem, err := d.buildElem()
	if err != nil {
		return nil, err
	}
	dim, err := cuda.NewDim(d.Dim...)
	if err != nil {
		return nil, modelerr.Construction("array type", err)
	}
	return GetArrayType(elem, dim)
}

func (d Descriptor) buildStruct() (*Type, error) {
	fields := make([]*Type, 0, len(d.Fields))
	for _, fd := range d.Fields {
		f, err := fd.Build()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return GetNamedStructType(d.Name, fields...)
}
