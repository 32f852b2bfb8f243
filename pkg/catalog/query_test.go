package catalog

import (
	"testing"

	"github.com/leapstack-labs/convcat/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog(t *testing.T) *Catalog {
	t.Helper()
	entries := []core.Entry{
		{Target: core.Integer, Input: core.Integer, Mode: core.Strict, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaInt}},
		{Target: core.String, Input: core.String, Mode: core.Strict, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaStr}},
		{Target: core.Integer, Input: core.String, Mode: core.Lax, Channel: core.Wire,
			Condition: "digits only", Schemas: []core.SchemaKind{core.SchemaInt}},
		{Target: core.String, Input: core.Bytes, Mode: core.Lax, Channel: core.Native,
			Condition: "valid UTF-8", Schemas: []core.SchemaKind{core.SchemaStr}},
		{Target: core.Integer, Input: core.Float, Mode: core.Lax, Channel: core.Both,
			Schemas: []core.SchemaKind{core.SchemaInt}},
	}
	c, err := Load(entries)
	require.NoError(t, err)
	return c
}

func inputs(entries []core.Entry) []core.TypeRef {
	out := make([]core.TypeRef, len(entries))
	for i, e := range entries {
		out[i] = e.Input
	}
	return out
}

func TestByTarget(t *testing.T) {
	c := sampleCatalog(t)

	got := c.ByTarget(core.Integer)
	assert.Equal(t, []core.TypeRef{core.Integer, core.String, core.Float}, inputs(got))

	assert.Empty(t, c.ByTarget(core.UUID))
	assert.NotNil(t, c.ByTarget(core.UUID))
}

func TestByMode_Partition(t *testing.T) {
	c := sampleCatalog(t)

	strict := c.ByMode(core.Strict)
	lax := c.ByMode(core.Lax)
	assert.Len(t, strict, 2)
	assert.Len(t, lax, 3)
	assert.Equal(t, c.Len(), len(strict)+len(lax))
	for _, e := range lax {
		assert.Equal(t, core.Lax, e.Mode)
	}
}

func TestByChannel(t *testing.T) {
	c := sampleCatalog(t)

	assert.Len(t, c.ByChannel(core.Wire), 1)
	assert.Len(t, c.ByChannel(core.Native), 1)
	assert.Len(t, c.ByChannel(core.Both), 3)
}

func TestFilter(t *testing.T) {
	c := sampleCatalog(t)

	tests := []struct {
		name string
		q    Query
		want int
	}{
		{"zero query matches all", Query{}, 5},
		{"target and mode", Query{Target: core.Integer, Mode: core.Lax}, 2},
		{"input", Query{Input: core.String}, 2},
		{"exact wire", Query{Channel: core.Wire}, 1},
		{"covering wire", Query{Channel: core.Wire, Covering: true}, 4},
		{"covering native lax", Query{Channel: core.Native, Mode: core.Lax, Covering: true}, 2},
		{"nothing", Query{Target: core.UUID}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, c.Filter(tt.q), tt.want)
		})
	}
}

func TestGroupByTarget(t *testing.T) {
	c := sampleCatalog(t)
	g := c.GroupByTarget()

	assert.Equal(t, []core.TypeRef{core.Integer, core.String}, g.Keys())
	assert.Equal(t, []core.TypeRef{core.Integer, core.String}, c.Targets())

	ints, ok := g.Get(core.Integer)
	require.True(t, ok)
	assert.Equal(t, []core.TypeRef{core.Integer, core.String, core.Float}, inputs(ints))

	_, ok = g.Get(core.UUID)
	assert.False(t, ok)

	// groups partition the catalog
	total := 0
	g.Each(func(grp Group) bool {
		total += len(grp.Entries)
		return true
	})
	assert.Equal(t, c.Len(), total)
	assert.Len(t, g.Flatten(), c.Len())
}

func TestGroups_EachStops(t *testing.T) {
	g := sampleCatalog(t).GroupByTarget()

	visited := 0
	g.Each(func(Group) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestGroupEntries_Subset(t *testing.T) {
	c := sampleCatalog(t)
	g := GroupEntries(c.ByMode(core.Lax))

	assert.Equal(t, []core.TypeRef{core.Integer, core.String}, g.Keys())
	groups := g.Groups()
	require.Len(t, groups, 2)
	assert.Len(t, groups[0].Entries, 2)
	assert.Len(t, groups[1].Entries, 1)
}
