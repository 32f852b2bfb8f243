package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in     string
		want   Mode
		wantOK bool
	}{
		{"Strict", Strict, true},
		{"lax", Lax, true},
		{"  LAX ", Lax, true},
		{"loose", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMode(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode_Valid(t *testing.T) {
	assert.True(t, Strict.Valid())
	assert.True(t, Lax.Valid())
	assert.False(t, Mode(0).Valid())
	assert.False(t, Mode(7).Valid())
	assert.Equal(t, "unknown", Mode(7).String())
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in     string
		want   Channel
		wantOK bool
	}{
		{"native", Native, true},
		{"Wire", Wire, true},
		{"both", Both, true},
		{"Python", Native, true},
		{"JSON", Wire, true},
		{"Json", Wire, true},
		{"Python & JSON", Both, true},
		{"Native & Wire", Both, true},
		{"xml", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseChannel(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChannel_Covers(t *testing.T) {
	tests := []struct {
		a, b Channel
		want bool
	}{
		{Native, Native, true},
		{Native, Wire, false},
		{Wire, Native, false},
		{Both, Native, true},
		{Both, Wire, true},
		{Wire, Both, true},
		{Channel(9), Both, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Covers(tt.b), "%s covers %s", tt.a, tt.b)
	}
}

func TestParseSchemaKind(t *testing.T) {
	k, ok := ParseSchemaKind("Function-Plain")
	assert.True(t, ok)
	assert.Equal(t, SchemaFunctionPlain, k)

	_, ok = ParseSchemaKind("PlainValidatorFunctionSchema")
	assert.False(t, ok)
	assert.False(t, SchemaKind("").Valid())
}
