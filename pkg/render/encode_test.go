package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/leapstack-labs/convcat/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_CSV(t *testing.T) {
	e := digitsEntry()
	e.Condition = "a | b, \"c\""

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, []core.Entry{e}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, Columns, records[0])
	assert.Equal(t, "a | b, \"c\"", records[1][4])
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, []core.Entry{digitsEntry()}))

	var got Table
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, Columns, got.Columns)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "digits only", got.Rows[0].Cell(ColumnCondition))
	require.NotNil(t, got.Rows[0].Examples)
	assert.Equal(t, []string{`"12x"`}, got.Rows[0].Examples.Invalid)
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, []core.Entry{digitsEntry()}))

	out := buf.String()
	assert.Contains(t, out, "FIELD TYPE")
	assert.Contains(t, out, "digits only")
	assert.Contains(t, out, "Examples:")
	assert.True(t, strings.HasSuffix(out, "(1 rules)\n"))
}

func TestWrite_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, nil))
	assert.Equal(t, "(0 rules)\n", buf.String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, Format("yaml"), nil))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   Format
		wantOK bool
	}{
		{"text", FormatText, true},
		{"MD", FormatMarkdown, true},
		{"markdown", FormatMarkdown, true},
		{"json", FormatJSON, true},
		{" csv ", FormatCSV, true},
		{"yaml", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseFormat(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
