package core

import "fmt"

// Entry is one coercion rule of the catalog.
type Entry struct {
	// Target is the type the rule coerces into.
	Target TypeRef
	// Input is the accepted source representation.
	Input TypeRef
	Mode  Mode
	// Channel is the representation family the rule applies to.
	Channel Channel
	// Condition is a free-text note on constraints not expressible by type.
	// It is documentation only and never parsed.
	Condition string
	// Valid lists example inputs accepted under this rule.
	Valid []any
	// Invalid lists example inputs rejected under this rule.
	Invalid []any
	// Schemas names the validator schema kinds realizing the rule, in order.
	Schemas []SchemaKind
}

// RuleKey identifies the documented combination of an entry.
type RuleKey struct {
	Target  TypeRef
	Input   TypeRef
	Mode    Mode
	Channel Channel
}

// String implements fmt.Stringer.
func (k RuleKey) String() string {
	return fmt.Sprintf("%s <- %s (%s, %s)", k.Target, k.Input, k.Mode, k.Channel)
}

// Key returns the rule key of the entry.
func (e Entry) Key() RuleKey {
	return RuleKey{Target: e.Target, Input: e.Input, Mode: e.Mode, Channel: e.Channel}
}

// HasCondition reports whether the entry carries a condition note.
func (e Entry) HasCondition() bool {
	return e.Condition != ""
}

// HasExamples reports whether the entry lists any example.
func (e Entry) HasExamples() bool {
	return len(e.Valid) > 0 || len(e.Invalid) > 0
}

// Clone returns a copy whose slices do not alias e's.
// Example values themselves are shared; they are treated as immutable.
func (e Entry) Clone() Entry {
	c := e
	if e.Valid != nil {
		c.Valid = append([]any(nil), e.Valid...)
	}
	if e.Invalid != nil {
		c.Invalid = append([]any(nil), e.Invalid...)
	}
	if e.Schemas != nil {
		c.Schemas = append([]SchemaKind(nil), e.Schemas...)
	}
	return c
}
