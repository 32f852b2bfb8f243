package catalog

import (
	"errors"
	"sync"
	"testing"

	"github.com/leapstack-labs/convcat/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digitsEntry() core.Entry {
	return core.Entry{
		Target:    core.Integer,
		Input:     core.String,
		Mode:      core.Lax,
		Channel:   core.Wire,
		Condition: "digits only",
		Valid:     []any{"123"},
		Invalid:   []any{"12x"},
		Schemas:   []core.SchemaKind{core.SchemaInt},
	}
}

func strictEntry(target, input core.TypeRef) core.Entry {
	return core.Entry{
		Target:  target,
		Input:   input,
		Mode:    core.Strict,
		Channel: core.Both,
		Schemas: []core.SchemaKind{core.SchemaAny},
	}
}

func TestLoad_SingleEntry(t *testing.T) {
	c, err := Load([]core.Entry{digitsEntry()})
	require.NoError(t, err)

	got := c.ByTarget(core.Integer)
	require.Len(t, got, 1)
	assert.Equal(t, core.String, got[0].Input)
	assert.Equal(t, "digits only", got[0].Condition)
	assert.Empty(t, ValidateConsistency(c))
}

func TestLoad_WithoutSchemaKinds(t *testing.T) {
	c, err := Load([]core.Entry{{
		Target:    core.Integer,
		Input:     core.String,
		Mode:      core.Lax,
		Channel:   core.Wire,
		Condition: "digits only",
		Valid:     []any{"123"},
		Invalid:   []any{"12x"},
	}})
	require.NoError(t, err)

	got := c.ByTarget(core.Integer)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Schemas)
	assert.Equal(t, []any{"123"}, got[0].Valid)
	assert.Equal(t, []any{"12x"}, got[0].Invalid)
	assert.Empty(t, ValidateConsistency(c))
}

func TestLoad_Empty(t *testing.T) {
	c, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.All())
	assert.Empty(t, c.ByTarget(core.Integer))
	assert.Equal(t, 0, c.GroupByTarget().Len())
}

func TestLoad_SchemaErrors(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*core.Entry)
		field string
	}{
		{"mode out of range", func(e *core.Entry) { e.Mode = core.Mode(9) }, "mode"},
		{"channel out of range", func(e *core.Entry) { e.Channel = core.Channel(0) }, "channel"},
		{"missing target", func(e *core.Entry) { e.Target = core.TypeRef{} }, "target_type"},
		{"never target", func(e *core.Entry) { e.Target = core.Unrepresentable }, "target_type"},
		{"missing input", func(e *core.Entry) { e.Input = core.TypeRef{} }, "input_representation"},
		{"unknown schema", func(e *core.Entry) { e.Schemas = []core.SchemaKind{"int-schema"} }, "implementing_schema_kinds"},
		{"duplicate schema", func(e *core.Entry) {
			e.Schemas = []core.SchemaKind{core.SchemaInt, core.SchemaInt}
		}, "implementing_schema_kinds"},
		{"valid example of wrong shape", func(e *core.Entry) { e.Valid = []any{[]any{1}} }, "valid_examples"},
		{"invalid example of wrong shape", func(e *core.Entry) { e.Invalid = []any{map[string]any{}} }, "invalid_examples"},
		{"valid and invalid overlap", func(e *core.Entry) { e.Invalid = []any{"123"} }, "invalid_examples"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := digitsEntry()
			tt.edit(&e)

			c, err := Load([]core.Entry{strictEntry(core.String, core.String), e})
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrSchema))

			var se *SchemaError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, 1, se.Index)
			assert.Equal(t, tt.field, se.Field)
		})
	}
}

func TestLoad_ReportsEveryBadEntry(t *testing.T) {
	bad := digitsEntry()
	bad.Mode = 0
	worse := digitsEntry()
	worse.Channel = 0

	_, err := Load([]core.Entry{bad, digitsEntry(), worse})
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok, "expected joined errors, got %T", err)
	errs := joined.Unwrap()
	require.Len(t, errs, 2)

	var first, second *SchemaError
	require.True(t, errors.As(errs[0], &first))
	require.True(t, errors.As(errs[1], &second))
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, 2, second.Index)
}

func TestLoad_NumericFamilyExamples(t *testing.T) {
	e := core.Entry{
		Target:  core.Integer,
		Input:   core.Float,
		Mode:    core.Lax,
		Channel: core.Both,
		Valid:   []any{2.0},
		Invalid: []any{2.5, true, 3},
		Schemas: []core.SchemaKind{core.SchemaInt},
	}
	_, err := Load([]core.Entry{e})
	assert.NoError(t, err)
}

func TestLoad_JSONTextForWireObject(t *testing.T) {
	e := core.Entry{
		Target:  core.TypedDict,
		Input:   core.Object,
		Mode:    core.Strict,
		Channel: core.Wire,
		Valid:   []any{`{"a": 1}`},
		Schemas: []core.SchemaKind{core.SchemaTypedDict},
	}
	_, err := Load([]core.Entry{e})
	require.NoError(t, err)

	e.Valid = []any{`[1, 2]`}
	_, err = Load([]core.Entry{e})
	assert.ErrorIs(t, err, ErrSchema)
}

func TestLoad_CopiesInput(t *testing.T) {
	entries := []core.Entry{digitsEntry()}
	c, err := Load(entries)
	require.NoError(t, err)

	entries[0].Condition = "changed"
	entries[0].Valid[0] = "999"

	got := c.All()
	assert.Equal(t, "digits only", got[0].Condition)
	assert.Equal(t, "123", got[0].Valid[0])

	got[0].Schemas[0] = core.SchemaStr
	assert.Equal(t, core.SchemaInt, c.All()[0].Schemas[0])
}

func TestSchemaError_Error(t *testing.T) {
	err := &SchemaError{Index: 3, Field: "mode", Reason: "bad"}
	assert.Equal(t, "entry 3: mode: bad", err.Error())

	err = &SchemaError{Index: -1, Field: "entries", Reason: "missing"}
	assert.Equal(t, "entries: missing", err.Error())
}

func TestDefault(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*Catalog, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := Default()
			assert.NoError(t, err)
			results[i] = c
		}(i)
	}
	wg.Wait()

	require.NotNil(t, results[0])
	for _, c := range results[1:] {
		assert.Same(t, results[0], c)
	}
	assert.Greater(t, results[0].Len(), 100)
}

func TestDefault_WireInputsAreExpressible(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, e := range c.ByChannel(core.Wire) {
		assert.True(t, e.Input.WireExpressible() || e.Input.Kind() == core.KindNever,
			"%s uses a native-only input on the wire", e.Key())
	}
}
