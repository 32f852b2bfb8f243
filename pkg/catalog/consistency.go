package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/convcat/pkg/core"
)

// =============================================================================
// Severity
// =============================================================================

// Severity indicates how strongly a violation should be surfaced.
type Severity int

// Severity levels for violations.
const (
	// SeverityWarning indicates an inconsistency a maintainer should fix.
	SeverityWarning Severity = iota
	// SeverityInfo indicates an inconsistency a condition note may explain.
	SeverityInfo
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value.
// Returns SeverityWarning and false if s is not a known severity.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warning":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	default:
		return SeverityWarning, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	v, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("unknown severity %q", text)
	}
	*s = v
	return nil
}

// =============================================================================
// Violation
// =============================================================================

// Violation codes.
const (
	CodeContradictoryExample = "contradictory-example"
	CodeDuplicateRule        = "duplicate-rule"
	CodeWireRepresentation   = "wire-representation"
	CodeWireExample          = "wire-example"
)

// Violation is a non-fatal inconsistency among the documented rules.
type Violation struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// Entries are the catalog indexes involved, ascending.
	Entries []int `json:"entries"`
}

// String implements fmt.Stringer.
func (v Violation) String() string {
	return fmt.Sprintf("%s [%s] %s", v.Severity, v.Code, v.Message)
}

// encodingHints are words whose presence in a condition documents how a
// native-only representation travels as text.
var encodingHints = []string{"encod", "utf-8", "base64", "hex"}

// ValidateConsistency scans the catalog for contradictory or malformed
// rules. It never fails; an empty result means no violation was found.
func ValidateConsistency(c *Catalog) []Violation {
	var out []Violation
	entries := c.entries

	for i, e := range entries {
		out = append(out, checkWire(i, e)...)
	}

	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i], entries[j]
			if a.Target != b.Target || a.Input != b.Input || !a.Channel.Covers(b.Channel) {
				continue
			}
			if a.Key() == b.Key() && a.Condition == b.Condition {
				out = append(out, Violation{
					Code:     CodeDuplicateRule,
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("%s is documented twice with the same condition", a.Key()),
					Entries:  []int{i, j},
				})
			}
			out = append(out, contradictions(i, a, j, b)...)
			out = append(out, contradictions(j, b, i, a)...)
		}
	}

	sort.SliceStable(out, func(x, y int) bool {
		if out[x].Entries[0] != out[y].Entries[0] {
			return out[x].Entries[0] < out[y].Entries[0]
		}
		return out[x].Code < out[y].Code
	})
	return out
}

func checkWire(i int, e core.Entry) []Violation {
	if e.Channel != core.Wire {
		return nil
	}
	var out []Violation
	if !e.Input.WireExpressible() && !mentionsEncoding(e.Condition) {
		out = append(out, Violation{
			Code:     CodeWireRepresentation,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("%s: %s has no text form and the condition states no encoding", e.Key(), e.Input),
			Entries:  []int{i},
		})
	}
	for _, group := range [][]any{e.Valid, e.Invalid} {
		for _, v := range group {
			if core.ShapeOf(v) == core.ShapeBytes {
				out = append(out, Violation{
					Code:     CodeWireExample,
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("%s: example %s cannot occur on the wire", e.Key(), core.FormatExample(v)),
					Entries:  []int{i},
				})
			}
		}
	}
	return out
}

// contradictions reports values accepted by entry a that entry b rejects
// although b is at least as permissive: the same mode, or a Lax b against
// a Strict a.
func contradictions(i int, a core.Entry, j int, b core.Entry) []Violation {
	if !(a.Mode == b.Mode || (a.Mode == core.Strict && b.Mode == core.Lax)) {
		return nil
	}
	rejected := make(map[string]bool, len(b.Invalid))
	for _, v := range b.Invalid {
		rejected[core.FormatExample(v)] = true
	}

	sev := SeverityWarning
	if a.HasCondition() || b.HasCondition() {
		sev = SeverityInfo
	}

	var out []Violation
	for _, v := range a.Valid {
		s := core.FormatExample(v)
		if !rejected[s] {
			continue
		}
		lo, hi := i, j
		if lo > hi {
			lo, hi = hi, lo
		}
		out = append(out, Violation{
			Code:     CodeContradictoryExample,
			Severity: sev,
			Message: fmt.Sprintf("%s is valid for %s but invalid for %s",
				s, a.Key(), b.Key()),
			Entries: []int{lo, hi},
		})
	}
	return out
}

func mentionsEncoding(condition string) bool {
	lower := strings.ToLower(condition)
	for _, hint := range encodingHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
