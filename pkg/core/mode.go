package core

import "strings"

// =============================================================================
// Mode
// =============================================================================

// Mode is the strictness under which a rule applies.
type Mode int

// Modes.
const (
	// Strict requires the input to already be (isomorphic to) the target type.
	Strict Mode = iota + 1
	// Lax attempts a conversion from the input representation.
	Lax
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case Strict:
		return "Strict"
	case Lax:
		return "Lax"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a defined mode.
func (m Mode) Valid() bool {
	return m == Strict || m == Lax
}

// ParseMode converts a string to a Mode value.
// Returns the mode and true if valid, or 0 and false if invalid.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, true
	case "lax":
		return Lax, true
	default:
		return 0, false
	}
}

// Modes returns all defined modes in declaration order.
func Modes() []Mode {
	return []Mode{Strict, Lax}
}

// =============================================================================
// Channel
// =============================================================================

// Channel is the representation family a rule applies to.
type Channel int

// Channels.
const (
	// Native is the in-memory object representation.
	Native Channel = iota + 1
	// Wire is the textual (JSON) representation.
	Wire
	// Both means the rule applies identically on either channel.
	Both
)

// String returns the string representation of the channel.
func (c Channel) String() string {
	switch c {
	case Native:
		return "Native"
	case Wire:
		return "Wire"
	case Both:
		return "Native & Wire"
	default:
		return "unknown"
	}
}

// Valid reports whether c is a defined channel.
func (c Channel) Valid() bool {
	return c == Native || c == Wire || c == Both
}

// Covers reports whether a rule on channel c also applies on channel other.
func (c Channel) Covers(other Channel) bool {
	if !c.Valid() || !other.Valid() {
		return false
	}
	return c == other || c == Both || other == Both
}

// ParseChannel converts a string to a Channel value.
// The spellings used by the upstream conversion table ("python", "json",
// "python & json") are accepted as aliases.
func ParseChannel(s string) (Channel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native", "python":
		return Native, true
	case "wire", "json":
		return Wire, true
	case "both", "native & wire", "python & json":
		return Both, true
	default:
		return 0, false
	}
}

// Channels returns all defined channels in declaration order.
func Channels() []Channel {
	return []Channel{Native, Wire, Both}
}
