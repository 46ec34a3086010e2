package types

import (
	"testing"

	"github.com/fxnlabs/kermaview/internal/cuda"
	"github.com/fxnlabs/kermaview/internal/modelerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(t *testing.T, pointee *Type, space cuda.AddressSpace) *Type {
	t.Helper()
	p, err := NewPtr(pointee, space)
	require.NoError(t, err)
	return p
}

func TestPtrType(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		inner := ptr(t, Int32, cuda.Generic)
		assert.Equal(t, "i32*", inner.String())
		assert.Equal(t, "i32**", ptr(t, inner, cuda.Generic).String())

		arr, err := GetArrayType(inner, cuda.MustDim(32))
		require.NoError(t, err)
		st, err := GetStructType(Int64, arr)
		require.NoError(t, err)
		assert.Equal(t, "{ i64, [32 x i32*] }", st.String())
		assert.Equal(t, "{ i64, [32 x i32*] }*", ptr(t, st, cuda.Generic).String())
	})

	t.Run("PointeeType", func(t *testing.T) {
		inner := ptr(t, Int32, cuda.Generic)
		outer := ptr(t, inner, cuda.Generic)
		assert.True(t, inner.PointeeType().Equals(Int32))
		assert.True(t, outer.PointeeType().IsPtrType())
		assert.Equal(t, 32, outer.PointeeType().PointeeType().BitWidth())
		assert.Nil(t, Int32.PointeeType())
	})

	t.Run("Nesting", func(t *testing.T) {
		inner := ptr(t, Int32, cuda.Generic)
		assert.Equal(t, 1, inner.Nesting())
		assert.Equal(t, 2, ptr(t, inner, cuda.Generic).Nesting())
		assert.Equal(t, 0, Int32.Nesting())
	})

	t.Run("Equals", func(t *testing.T) {
		p := ptr(t, Int32, cuda.Generic)
		assert.True(t, p.Equals(p))
		assert.True(t, p.Equals(ptr(t, Int32, cuda.Generic)))

		other, err := NewInt(32, true)
		require.NoError(t, err)
		assert.True(t, p.Equals(ptr(t, other, cuda.Generic)))

		assert.False(t, p.Equals(ptr(t, Int64, cuda.Generic)), "different pointee")
		assert.False(t, ptr(t, Float, cuda.Generic).Equals(ptr(t, Double, cuda.Generic)), "different pointee")
		assert.False(t, ptr(t, Double, cuda.Generic).Equals(ptr(t, Double, cuda.Local)), "different address space")

		p32, err := NewPtrWidth(Double, cuda.Generic, 32)
		require.NoError(t, err)
		p64, err := NewPtrWidth(Double, cuda.Generic, 64)
		require.NoError(t, err)
		assert.False(t, p32.Equals(p64), "different width")
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := NewPtr(nil, cuda.Generic)
		assert.ErrorIs(t, err, modelerr.ErrInvalidArgument)

		_, err = GetPtrType(Int32, cuda.Generic, 0)
		assert.ErrorIs(t, err, modelerr.ErrConstruction)
		assert.ErrorIs(t, err, modelerr.ErrInvalidArgument)
	})
}

func TestEqualsIgnoresAliases(t *testing.T) {
	a, _ := NewInt(32, true)
	b, _ := NewInt(32, true)
	a.AddAlias("x")
	assert.True(t, a.Equals(a))
	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))
	assert.True(t, a.HasAlias("x"))
	assert.False(t, b.HasAlias("x"))

	a.AddAlias("x")
	assert.Equal(t, []string{"x"}, a.Aliases())
}

func TestBasicTypes(t *testing.T) {
	assert.Equal(t, "i8", Int8.String())
	assert.Equal(t, "u16", UInt16.String())
	assert.Equal(t, "f32", Float.String())
	assert.Equal(t, "f64", Double.String())
	assert.Equal(t, "i1", Boolean.String())
	assert.True(t, Boolean.HasAlias("bool"))
	assert.True(t, Boolean.HasAlias("boolean"))

	assert.False(t, Int32.Equals(UInt32), "signedness")
	assert.False(t, Int32.Equals(Float32), "kind")
	assert.True(t, Int32.IsBasicType())
	assert.True(t, Float64.IsBasicType())
	assert.True(t, Int32.IsSigned())
	assert.False(t, UInt32.IsSigned())

	_, err := NewInt(0, true)
	assert.ErrorIs(t, err, modelerr.ErrInvalidArgument)
	_, err = NewFloat(-8)
	assert.ErrorIs(t, err, modelerr.ErrInvalidArgument)
}

func TestArrayType(t *testing.T) {
	a, err := NewArray(Float32, cuda.MustDim(4, 8))
	require.NoError(t, err)
	assert.True(t, a.IsArrayType())
	assert.Equal(t, "[4 x 8 x f32]", a.String())
	assert.Equal(t, 32*32, a.BitWidth())
	assert.True(t, a.ElementType().Equals(Float32))
	assert.Equal(t, cuda.MustDim(4, 8), a.Dim())

	b, _ := NewArray(Float32, cuda.MustDim(4, 8))
	c, _ := NewArray(Float32, cuda.MustDim(8, 4))
	d, _ := NewArray(Int32, cuda.MustDim(4, 8))
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(d))

	e, _ := NewArray(Int8, cuda.MustDim(2, 3, 4))
	assert.Equal(t, "[2 x 3 x 4 x i8]", e.String())

	_, err = GetArrayType(nil, cuda.MustDim(4))
	assert.ErrorIs(t, err, modelerr.ErrConstruction)
	_, err = NewArray(Int32, cuda.Dim{})
	assert.ErrorIs(t, err, modelerr.ErrInvalidArgument)
}

func TestStructType(t *testing.T) {
	s1, err := NewStruct(Int32, Float32)
	require.NoError(t, err)
	s2, _ := NewStruct(Int32, Float32)
	s3, _ := NewStruct(Float32, Int32)
	n1, _ := NewNamedStruct("pair", Int32, Float32)
	n2, _ := NewNamedStruct("pair", Int32, Float32)
	n3, _ := NewNamedStruct("other", Int32, Float32)

	assert.True(t, s1.Equals(s2))
	assert.False(t, s1.Equals(s3), "element order")
	assert.True(t, n1.Equals(n2))
	assert.False(t, n1.Equals(n3), "names differ")
	assert.False(t, n1.Equals(s1), "named vs unnamed")
	assert.True(t, n1.IsNamed())
	assert.False(t, s1.IsNamed())
	assert.Equal(t, "pair { i32, f32 }", n1.String())
	assert.Equal(t, 64, n1.BitWidth())
	assert.Len(t, n1.ElementTypes(), 2)

	_, err = NewStruct()
	assert.ErrorIs(t, err, modelerr.ErrInvalidArgument)
	_, err = GetNamedStructType("bad", Int32, nil)
	assert.ErrorIs(t, err, modelerr.ErrConstruction)
}

func TestPretty(t *testing.T) {
	t.Run("struct", func(t *testing.T) {
		s, _ := NewNamedStruct("pair", Int32, Float32)
		assert.Equal(t, "pair {\n  i32,\n  f32\n}", Pretty(s))
	})

	t.Run("nested struct", func(t *testing.T) {
		inner, _ := NewNamedStruct("inner", Float32)
		outer, _ := NewNamedStruct("outer", Int32, inner)
		assert.Equal(t, "outer {\n  i32,\n  inner {\n    f32\n  }\n}", Pretty(outer))
	})

	t.Run("array of struct", func(t *testing.T) {
		s, _ := NewStruct(Int32)
		a, _ := NewArray(s, cuda.MustDim(4))
		assert.Equal(t, "[4 x\n  {\n    i32\n  }\n]", Pretty(a))
	})

	t.Run("no struct", func(t *testing.T) {
		p := ptr(t, Int32, cuda.Global)
		a, _ := NewArray(p, cuda.MustDim(32))
		assert.Equal(t, a.String(), Pretty(a))
	})
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("array")
	require.NoError(t, err)
	assert.Equal(t, KindArray, k)

	_, err = ParseKind("union")
	assert.ErrorIs(t, err, modelerr.ErrUnknownVariant)
}
