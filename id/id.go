// Package id defines TypeID-based identity types for Cadence entities.
//
// IDs are K-sortable (UUIDv7-based), globally unique, and URL-safe in
// the format "prefix_suffix". Flights and dead-letter entries are the
// only entities the scheduler mints IDs for; requests themselves stay
// opaque and producer-owned.
package id

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

// Prefix identifies the entity type encoded in a TypeID.
type Prefix string

// Prefix constants for all Cadence entity types.
const (
	PrefixFlight     Prefix = "flt"
	PrefixDeadLetter Prefix = "dl"
)

// ID is the identifier type for Cadence entities. It wraps a TypeID,
// providing a prefix-qualified, sortable identifier.
type ID struct {
	inner typeid.TypeID
	valid bool
}

// Nil is the zero-value ID.
var Nil ID

// New generates a new globally unique ID with the given prefix.
// It panics if prefix is not a valid TypeID prefix (programming error).
func New(prefix Prefix) ID {
	tid, err := typeid.Generate(string(prefix))
	if err != nil {
		panic(fmt.Sprintf("id: invalid prefix %q: %v", prefix, err))
	}
	return ID{inner: tid, valid: true}
}

// Parse parses a TypeID string (e.g. "flt_01h2xcejqtf2nbrexx3vqjhp41")
// into an ID.
func Parse(s string) (ID, error) {
	if s == "" {
		return Nil, fmt.Errorf("id: parse %q: empty string", s)
	}
	tid, err := typeid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("id: parse %q: %w", s, err)
	}
	return ID{inner: tid, valid: true}, nil
}

// ParseWithPrefix parses a TypeID string and validates that its prefix
// matches the expected value.
func ParseWithPrefix(s string, expected Prefix) (ID, error) {
	parsed, err := Parse(s)
	if err != nil {
		return Nil, err
	}
	if parsed.Prefix() != expected {
		return Nil, fmt.Errorf("id: expected prefix %q, got %q", expected, parsed.Prefix())
	}
	return parsed, nil
}

// String returns the full TypeID string (prefix_suffix), or "" for Nil.
func (i ID) String() string {
	if !i.valid {
		return ""
	}
	return i.inner.String()
}

// Prefix returns the ID's type prefix, or "" for Nil.
func (i ID) Prefix() Prefix {
	if !i.valid {
		return ""
	}
	return Prefix(i.inner.Prefix())
}

// IsNil reports whether the ID is the zero value.
func (i ID) IsNil() bool { return !i.valid }

// FlightID identifies a dispatched handler invocation (prefix: "flt").
type FlightID = ID

// DeadLetterID identifies a dead-letter entry (prefix: "dl").
type DeadLetterID = ID

// NewFlightID generates a new unique flight ID.
func NewFlightID() ID { return New(PrefixFlight) }

// NewDeadLetterID generates a new unique dead-letter entry ID.
func NewDeadLetterID() ID { return New(PrefixDeadLetter) }

// ParseFlightID parses a string and validates the "flt" prefix.
func ParseFlightID(s string) (ID, error) { return ParseWithPrefix(s, PrefixFlight) }
