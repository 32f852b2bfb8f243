package core

import "strings"

// SchemaKind names a validator schema kind that realizes a rule.
type SchemaKind string

// Schema kinds of the validation engine.
const (
	SchemaAny             SchemaKind = "any"
	SchemaNone            SchemaKind = "none"
	SchemaBool            SchemaKind = "bool"
	SchemaInt             SchemaKind = "int"
	SchemaFloat           SchemaKind = "float"
	SchemaStr             SchemaKind = "str"
	SchemaBytes           SchemaKind = "bytes"
	SchemaDate            SchemaKind = "date"
	SchemaTime            SchemaKind = "time"
	SchemaDatetime        SchemaKind = "datetime"
	SchemaTimedelta       SchemaKind = "timedelta"
	SchemaList            SchemaKind = "list"
	SchemaTuplePositional SchemaKind = "tuple-positional"
	SchemaTupleVariable   SchemaKind = "tuple-variable"
	SchemaSet             SchemaKind = "set"
	SchemaFrozenSet       SchemaKind = "frozenset"
	SchemaGenerator       SchemaKind = "generator"
	SchemaDict            SchemaKind = "dict"
	SchemaTypedDict       SchemaKind = "typed-dict"
	SchemaIsInstance      SchemaKind = "is-instance"
	SchemaIsSubclass      SchemaKind = "is-subclass"
	SchemaCallable        SchemaKind = "callable"
	SchemaCall            SchemaKind = "call"
	SchemaChain           SchemaKind = "chain"
	SchemaCustomError     SchemaKind = "custom-error"
	SchemaFunctionAfter   SchemaKind = "function-after"
	SchemaFunctionPlain   SchemaKind = "function-plain"
	SchemaFunctionWrap    SchemaKind = "function-wrap"
)

var schemaKinds = map[SchemaKind]bool{
	SchemaAny: true, SchemaNone: true, SchemaBool: true, SchemaInt: true,
	SchemaFloat: true, SchemaStr: true, SchemaBytes: true, SchemaDate: true,
	SchemaTime: true, SchemaDatetime: true, SchemaTimedelta: true, SchemaList: true,
	SchemaTuplePositional: true, SchemaTupleVariable: true, SchemaSet: true,
	SchemaFrozenSet: true, SchemaGenerator: true, SchemaDict: true,
	SchemaTypedDict: true, SchemaIsInstance: true, SchemaIsSubclass: true,
	SchemaCallable: true, SchemaCall: true, SchemaChain: true,
	SchemaCustomError: true, SchemaFunctionAfter: true, SchemaFunctionPlain: true,
	SchemaFunctionWrap: true,
}

// Valid reports whether k is a known schema kind.
func (k SchemaKind) Valid() bool {
	return schemaKinds[k]
}

// String implements fmt.Stringer.
func (k SchemaKind) String() string { return string(k) }

// ParseSchemaKind converts a string to a SchemaKind.
func ParseSchemaKind(s string) (SchemaKind, bool) {
	k := SchemaKind(strings.ToLower(strings.TrimSpace(s)))
	return k, k.Valid()
}
