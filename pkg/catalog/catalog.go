package catalog

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/leapstack-labs/convcat/pkg/catalog/builtin"
	"github.com/leapstack-labs/convcat/pkg/core"
)

// Catalog is an ordered, immutable collection of coercion rules.
// It is safe for concurrent use once loaded.
type Catalog struct {
	entries  []core.Entry
	byTarget map[core.TypeRef][]int
}

// Load validates entries and builds a Catalog preserving their order.
// It is all-or-nothing: if any entry is malformed the returned error
// wraps one *SchemaError per problem and no catalog is produced.
func Load(entries []core.Entry) (*Catalog, error) {
	var errs []error
	for i, e := range entries {
		for _, err := range checkEntry(i, e) {
			errs = append(errs, err)
		}
	}
	switch len(errs) {
	case 0:
	case 1:
		return nil, errs[0]
	default:
		return nil, errors.Join(errs...)
	}

	c := &Catalog{
		entries:  make([]core.Entry, len(entries)),
		byTarget: make(map[core.TypeRef][]int),
	}
	for i, e := range entries {
		c.entries[i] = e.Clone()
		c.byTarget[e.Target] = append(c.byTarget[e.Target], i)
	}
	return c, nil
}

// All returns the entries in authoring order.
func (c *Catalog) All() []core.Entry {
	return cloneEntries(c.entries)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Targets returns the distinct target types in first-seen order.
func (c *Catalog) Targets() []core.TypeRef {
	return c.GroupByTarget().Keys()
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Load(builtin.Entries())
})

// Default returns the built-in catalog. The first call loads it; concurrent
// callers block until that load completes and all observe the same result.
func Default() (*Catalog, error) {
	return loadDefault()
}

func cloneEntries(entries []core.Entry) []core.Entry {
	out := make([]core.Entry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

// checkEntry returns every structural problem of a single entry.
func checkEntry(i int, e core.Entry) []*SchemaError {
	var errs []*SchemaError

	switch {
	case e.Target.IsZero():
		errs = append(errs, schemaErrorf(i, "target_type", "is required"))
	case e.Target.Kind() == core.KindNever:
		errs = append(errs, schemaErrorf(i, "target_type", "%s cannot be a target", e.Target))
	}
	if e.Input.IsZero() {
		errs = append(errs, schemaErrorf(i, "input_representation", "is required"))
	}
	if !e.Mode.Valid() {
		errs = append(errs, schemaErrorf(i, "mode", "%d is not Strict or Lax", int(e.Mode)))
	}
	if !e.Channel.Valid() {
		errs = append(errs, schemaErrorf(i, "channel", "%d is not Native, Wire or Both", int(e.Channel)))
	}

	seen := make(map[core.SchemaKind]bool, len(e.Schemas))
	for _, k := range e.Schemas {
		if !k.Valid() {
			errs = append(errs, schemaErrorf(i, "implementing_schema_kinds", "unknown schema kind %q", k))
			continue
		}
		if seen[k] {
			errs = append(errs, schemaErrorf(i, "implementing_schema_kinds", "schema kind %q listed twice", k))
		}
		seen[k] = true
	}

	if e.Input.IsZero() {
		return errs
	}
	errs = append(errs, checkExamples(i, "valid_examples", e, e.Valid)...)
	errs = append(errs, checkExamples(i, "invalid_examples", e, e.Invalid)...)

	valid := make(map[string]bool, len(e.Valid))
	for _, v := range e.Valid {
		valid[core.FormatExample(v)] = true
	}
	for _, v := range e.Invalid {
		if s := core.FormatExample(v); valid[s] {
			errs = append(errs, schemaErrorf(i, "invalid_examples", "%s is also listed as valid", s))
		}
	}
	return errs
}

func checkExamples(i int, field string, e core.Entry, values []any) []*SchemaError {
	var errs []*SchemaError
	want := e.Input.Shape()
	for _, v := range values {
		got := exampleShape(e, v)
		if !want.Accepts(got) {
			errs = append(errs, schemaErrorf(i, field,
				"%s has shape %s, incompatible with %s (%s)", core.FormatExample(v), got, e.Input, want))
		}
	}
	return errs
}

// exampleShape returns the shape of v as an instance of e.Input. A string
// offered for a wire-only structural representation (Array, Object) is a
// JSON document, so the shape of its decoded content is used instead.
func exampleShape(e core.Entry, v any) core.Shape {
	s, ok := v.(string)
	if !ok || !isWireStructural(e) {
		return core.ShapeOf(v)
	}
	var doc any
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return core.ShapeText
	}
	return core.ShapeOf(doc)
}

func isWireStructural(e core.Entry) bool {
	return e.Input.Kind() == core.KindStructural &&
		e.Input.WireExpressible() &&
		e.Channel.Covers(core.Wire)
}
