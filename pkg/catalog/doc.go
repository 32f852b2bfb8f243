// Package catalog holds the coercion-rule catalog and its read-only query layer.
//
// # Loading
//
// A Catalog is built once from an ordered list of entries and is immutable
// afterwards:
//
//	cat, err := catalog.Load(entries)
//	var schemaErr *catalog.SchemaError
//	if errors.As(err, &schemaErr) {
//		// structurally malformed catalog
//	}
//
// The built-in table is available through Default, which loads it at most
// once. Catalogs authored as YAML are read with LoadFile or Decode.
//
// # Querying
//
//	ints := cat.ByTarget(core.Integer)
//	strict := cat.ByMode(core.Strict)
//	wire := cat.Filter(catalog.Query{Channel: core.Wire, Covering: true})
//	groups := cat.GroupByTarget()
//
// # Consistency
//
// ValidateConsistency reports logical inconsistencies as Violation values.
// Violations are never returned as errors; the caller decides whether any
// of them should block a build.
package catalog
