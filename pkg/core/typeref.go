package core

import (
	"sort"
	"strings"
)

// =============================================================================
// TypeKind
// =============================================================================

// TypeKind distinguishes real types from placeholder labels.
type TypeKind int

// Type kinds.
const (
	// KindConcrete is a real type of the validated language.
	KindConcrete TypeKind = iota + 1
	// KindCapability matches any value passing a runtime check (isinstance, callable, ...).
	KindCapability
	// KindStructural describes a shape rather than a type (JSON array, mapping protocol, ...).
	KindStructural
	// KindNever marks a representation no input can ever have on its channel.
	KindNever
)

// String returns the string representation of the kind.
func (k TypeKind) String() string {
	switch k {
	case KindConcrete:
		return "concrete"
	case KindCapability:
		return "capability"
	case KindStructural:
		return "structural"
	case KindNever:
		return "never"
	default:
		return "unknown"
	}
}

// =============================================================================
// TypeRef
// =============================================================================

// TypeRef identifies a target type or an input representation.
//
// The set of TypeRefs is closed: values are only obtainable through the
// package-level variables below or LookupType. The zero TypeRef means
// "missing" and is rejected when a catalog is loaded.
type TypeRef struct {
	name  string
	kind  TypeKind
	shape Shape
	wire  bool
}

// Name returns the stable identifier of the type.
func (t TypeRef) Name() string { return t.name }

// Kind returns the variant tag.
func (t TypeRef) Kind() TypeKind { return t.kind }

// Shape returns the shape values of this representation take.
func (t TypeRef) Shape() Shape { return t.shape }

// WireExpressible reports whether the representation exists in text/JSON form.
func (t TypeRef) WireExpressible() bool { return t.wire }

// IsZero reports whether t is the zero TypeRef.
func (t TypeRef) IsZero() bool { return t.name == "" }

// IsPlaceholder reports whether t is a label rather than a concrete type.
func (t TypeRef) IsPlaceholder() bool { return t.kind != KindConcrete }

// String implements fmt.Stringer.
func (t TypeRef) String() string {
	if t.IsZero() {
		return "<none>"
	}
	return t.name
}

var typeIndex = map[string]TypeRef{}

func define(name string, kind TypeKind, shape Shape, wire bool) TypeRef {
	t := TypeRef{name: name, kind: kind, shape: shape, wire: wire}
	typeIndex[strings.ToLower(name)] = t
	return t
}

// Concrete types.
var (
	String          = define("String", KindConcrete, ShapeText, true)
	Bytes           = define("Bytes", KindConcrete, ShapeBytes, false)
	ByteArray       = define("ByteArray", KindConcrete, ShapeBytes, false)
	Integer         = define("Integer", KindConcrete, ShapeInteger, true)
	Float           = define("Float", KindConcrete, ShapeFloat, true)
	Boolean         = define("Boolean", KindConcrete, ShapeBoolean, true)
	Null            = define("Null", KindConcrete, ShapeNull, true)
	Date            = define("Date", KindConcrete, ShapeTemporal, false)
	DateTime        = define("DateTime", KindConcrete, ShapeTemporal, false)
	Time            = define("Time", KindConcrete, ShapeTemporal, false)
	Duration        = define("Duration", KindConcrete, ShapeTemporal, false)
	Decimal         = define("Decimal", KindConcrete, ShapeDecimal, false)
	List            = define("List", KindConcrete, ShapeSequence, false)
	Tuple           = define("Tuple", KindConcrete, ShapeSequence, false)
	Set             = define("Set", KindConcrete, ShapeSequence, false)
	FrozenSet       = define("FrozenSet", KindConcrete, ShapeSequence, false)
	Deque           = define("Deque", KindConcrete, ShapeSequence, false)
	Dict            = define("Dict", KindConcrete, ShapeMapping, false)
	TypedDict       = define("TypedDict", KindConcrete, ShapeMapping, false)
	NamedTuple      = define("NamedTuple", KindConcrete, ShapeSequence, false)
	TypedNamedTuple = define("TypedNamedTuple", KindConcrete, ShapeSequence, false)
	Path            = define("Path", KindConcrete, ShapeOpaque, false)
	UUID            = define("UUID", KindConcrete, ShapeOpaque, false)
	Enum            = define("Enum", KindConcrete, ShapeOpaque, false)
	IntEnum         = define("IntEnum", KindConcrete, ShapeOpaque, false)
	Pattern         = define("Pattern", KindConcrete, ShapeOpaque, false)
	Class           = define("Class", KindConcrete, ShapeOpaque, false)
	ByteSize        = define("ByteSize", KindConcrete, ShapeOpaque, false)
	IPv4Address     = define("IPv4Address", KindConcrete, ShapeOpaque, false)
	IPv4Interface   = define("IPv4Interface", KindConcrete, ShapeOpaque, false)
	IPv4Network     = define("IPv4Network", KindConcrete, ShapeOpaque, false)
	IPv6Address     = define("IPv6Address", KindConcrete, ShapeOpaque, false)
	IPv6Interface   = define("IPv6Interface", KindConcrete, ShapeOpaque, false)
	IPv6Network     = define("IPv6Network", KindConcrete, ShapeOpaque, false)
)

// Capability markers.
var (
	Any        = define("Any", KindCapability, ShapeAny, true)
	IsInstance = define("IsInstance", KindCapability, ShapeAny, false)
	Callable   = define("Callable", KindCapability, ShapeAny, false)
)

// Structural markers.
var (
	Array      = define("Array", KindStructural, ShapeSequence, true)
	Object     = define("Object", KindStructural, ShapeMapping, true)
	Mapping    = define("Mapping", KindStructural, ShapeMapping, false)
	Iterable   = define("Iterable", KindStructural, ShapeSequence, false)
	Sequence   = define("Sequence", KindStructural, ShapeSequence, false)
	DictKeys   = define("DictKeys", KindStructural, ShapeSequence, false)
	DictValues = define("DictValues", KindStructural, ShapeSequence, false)
)

// Unrepresentable is the input of rules that are never satisfiable on their channel.
var Unrepresentable = define("Unrepresentable", KindNever, ShapeNever, true)

// LookupType returns the TypeRef with the given name (case-insensitive).
func LookupType(name string) (TypeRef, bool) {
	t, ok := typeIndex[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// AllTypes returns every defined TypeRef sorted by name.
func AllTypes() []TypeRef {
	types := make([]TypeRef, 0, len(typeIndex))
	for _, t := range typeIndex {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].name < types[j].name })
	return types
}
