package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupType(t *testing.T) {
	got, ok := LookupType("integer")
	require.True(t, ok)
	assert.Equal(t, Integer, got)
	assert.Equal(t, KindConcrete, got.Kind())

	got, ok = LookupType(" Array ")
	require.True(t, ok)
	assert.Equal(t, KindStructural, got.Kind())
	assert.True(t, got.WireExpressible())

	_, ok = LookupType("int")
	assert.False(t, ok)
}

func TestTypeRef_Zero(t *testing.T) {
	var zero TypeRef
	assert.True(t, zero.IsZero())
	assert.Equal(t, "<none>", zero.String())
	assert.False(t, String.IsZero())
}

func TestTypeRef_Kinds(t *testing.T) {
	tests := []struct {
		t           TypeRef
		kind        TypeKind
		placeholder bool
	}{
		{String, KindConcrete, false},
		{IPv6Network, KindConcrete, false},
		{Any, KindCapability, true},
		{Callable, KindCapability, true},
		{Object, KindStructural, true},
		{Mapping, KindStructural, true},
		{Unrepresentable, KindNever, true},
	}

	for _, tt := range tests {
		t.Run(tt.t.Name(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.t.Kind())
			assert.Equal(t, tt.placeholder, tt.t.IsPlaceholder())
		})
	}
}

func TestAllTypes_SortedAndUnique(t *testing.T) {
	types := AllTypes()
	require.NotEmpty(t, types)

	seen := map[string]bool{}
	for i, typ := range types {
		assert.False(t, seen[typ.Name()], "duplicate %s", typ.Name())
		seen[typ.Name()] = true
		if i > 0 {
			assert.Less(t, types[i-1].Name(), typ.Name())
		}
	}
	assert.True(t, seen["ByteSize"])
}

func TestWireExpressible(t *testing.T) {
	assert.True(t, String.WireExpressible())
	assert.True(t, Integer.WireExpressible())
	assert.False(t, Bytes.WireExpressible())
	assert.False(t, Decimal.WireExpressible())
	assert.False(t, Mapping.WireExpressible())
}
