// Package core defines the shared vocabulary of the coercion catalog.
//
// This package contains:
//   - The closed type model (TypeRef and its predefined variants)
//   - Rule attributes (Mode, Channel, SchemaKind)
//   - Example value shapes and their deterministic formatting
//   - The Entry record describing one coercion rule
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
