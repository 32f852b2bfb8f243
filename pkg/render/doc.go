// Package render turns catalog entries into rectangular tables and writes
// them as markdown, aligned text, JSON or CSV.
//
// RenderTable is pure: the same entries and options always produce the same
// Table. Every row has exactly one cell per column; missing optional values
// are rendered as an explicit marker and cell text is escaped for the
// configured column delimiter.
package render
