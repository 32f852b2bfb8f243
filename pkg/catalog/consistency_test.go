package catalog

import (
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/convcat/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, entries ...core.Entry) *Catalog {
	t.Helper()
	c, err := Load(entries)
	require.NoError(t, err)
	return c
}

func TestValidateConsistency(t *testing.T) {
	floatStrict := core.Entry{
		Target: core.Float, Input: core.String, Mode: core.Strict, Channel: core.Wire,
		Valid: []any{"1.5"}, Schemas: []core.SchemaKind{core.SchemaFloat},
	}
	floatLax := core.Entry{
		Target: core.Float, Input: core.String, Mode: core.Lax, Channel: core.Both,
		Invalid: []any{"1.5"}, Schemas: []core.SchemaKind{core.SchemaFloat},
	}

	tests := []struct {
		name    string
		entries []core.Entry
		want    []Violation
	}{
		{
			name:    "clean",
			entries: []core.Entry{digitsEntry(), strictEntry(core.String, core.String)},
		},
		{
			name: "strict valid rejected by lax",
			entries: []core.Entry{floatStrict, floatLax},
			want: []Violation{{
				Code:     CodeContradictoryExample,
				Severity: SeverityWarning,
				Entries:  []int{0, 1},
			}},
		},
		{
			name: "lax valid rejected by strict is fine",
			entries: func() []core.Entry {
				a, b := floatStrict, floatLax
				a.Valid, a.Invalid = nil, []any{"1.5"}
				b.Valid, b.Invalid = []any{"1.5"}, nil
				return []core.Entry{a, b}
			}(),
		},
		{
			name: "condition downgrades to info",
			entries: func() []core.Entry {
				b := floatLax
				b.Condition = "finite only"
				return []core.Entry{floatStrict, b}
			}(),
			want: []Violation{{
				Code:     CodeContradictoryExample,
				Severity: SeverityInfo,
				Entries:  []int{0, 1},
			}},
		},
		{
			name: "disjoint channels are independent",
			entries: func() []core.Entry {
				b := floatLax
				b.Channel = core.Native
				return []core.Entry{floatStrict, b}
			}(),
		},
		{
			name:    "duplicate rule",
			entries: []core.Entry{digitsEntry(), digitsEntry()},
			want: []Violation{{
				Code:     CodeDuplicateRule,
				Severity: SeverityWarning,
				Entries:  []int{0, 1},
			}},
		},
		{
			name: "wire input without text form",
			entries: []core.Entry{{
				Target: core.String, Input: core.Bytes, Mode: core.Lax, Channel: core.Wire,
				Schemas: []core.SchemaKind{core.SchemaStr},
			}},
			want: []Violation{{
				Code:     CodeWireRepresentation,
				Severity: SeverityWarning,
				Entries:  []int{0},
			}},
		},
		{
			name: "wire input with encoding note",
			entries: []core.Entry{{
				Target: core.String, Input: core.Bytes, Mode: core.Lax, Channel: core.Wire,
				Condition: "base64 encoded", Schemas: []core.SchemaKind{core.SchemaStr},
			}},
		},
		{
			name: "bytes example on the wire",
			entries: []core.Entry{{
				Target: core.String, Input: core.Any, Mode: core.Lax, Channel: core.Wire,
				Invalid: []any{[]byte("x")}, Schemas: []core.SchemaKind{core.SchemaStr},
			}},
			want: []Violation{{
				Code:     CodeWireExample,
				Severity: SeverityWarning,
				Entries:  []int{0},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateConsistency(mustLoad(t, tt.entries...))
			require.Len(t, got, len(tt.want), "violations: %v", got)
			for i, want := range tt.want {
				assert.Equal(t, want.Code, got[i].Code)
				assert.Equal(t, want.Severity, got[i].Severity)
				assert.Equal(t, want.Entries, got[i].Entries)
				assert.NotEmpty(t, got[i].Message)
			}
		})
	}
}

func TestValidateConsistency_Deterministic(t *testing.T) {
	c := mustLoad(t, digitsEntry(), digitsEntry(), digitsEntry())

	first := ValidateConsistency(c)
	require.Len(t, first, 3)
	assert.Equal(t, first, ValidateConsistency(c))
	assert.Equal(t, []int{0, 1}, first[0].Entries)
	assert.Equal(t, []int{0, 2}, first[1].Entries)
	assert.Equal(t, []int{1, 2}, first[2].Entries)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "unknown", Severity(5).String())
}

func TestSeverity_Text(t *testing.T) {
	sev, ok := ParseSeverity(" Info ")
	assert.True(t, ok)
	assert.Equal(t, SeverityInfo, sev)

	_, ok = ParseSeverity("error")
	assert.False(t, ok)

	data, err := json.Marshal(Violation{Code: CodeDuplicateRule, Severity: SeverityInfo, Entries: []int{0, 1}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"severity":"info"`)

	var v Violation
	require.NoError(t, json.Unmarshal(data, &v))
	assert.Equal(t, SeverityInfo, v.Severity)

	assert.Error(t, json.Unmarshal([]byte(`{"severity":"fatal"}`), &v))
}
