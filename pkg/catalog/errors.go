package catalog

import (
	"errors"
	"fmt"
)

// ErrSchema is matched by every SchemaError.
var ErrSchema = errors.New("catalog schema error")

// SchemaError reports a structurally malformed entry. It is fatal: a
// catalog containing such an entry is never constructed.
type SchemaError struct {
	// Index is the position of the entry in authoring order, -1 if not entry specific.
	Index int
	// Field names the offending entry field (e.g. "mode", "valid_examples").
	Field string
	// Reason is a human-readable description.
	Reason string
}

// Error implements error.
func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("entry %d: %s: %s", e.Index, e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrSchema).
func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

func schemaErrorf(index int, field, format string, args ...any) *SchemaError {
	return &SchemaError{Index: index, Field: field, Reason: fmt.Sprintf(format, args...)}
}
