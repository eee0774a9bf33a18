package identity

import (
	"fmt"

	"github.com/google/uuid"
)

// CategoryGUID is the fixed category of all GUID identifiers.
const CategoryGUID = "GUID"

// GUIDFormat selects the textual grammar accepted by the GUID
// constructor.
type GUIDFormat int

const (
	// FormatCanonical accepts only the canonical lowercase hyphenated
	// form (8-4-4-4-12 hexadecimal groups).
	FormatCanonical GUIDFormat = iota

	// FormatLenient accepts any textual form the uuid library parses
	// and normalizes the value to the canonical form.
	FormatLenient
)

// GUID is an Identifier whose value is a canonically formatted
// universally-unique identifier string. Its category is always
// CategoryGUID and cannot be supplied by callers.
type GUID struct {
	Identifier
}

func NewGUID(raw string) (GUID, error) {
	return NewGUIDWithFormat(raw, FormatCanonical)
}

func NewGUIDWithFormat(raw string, format GUIDFormat) (GUID, error) {
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return GUID{}, fmt.Errorf(
			"%w: malformed GUID [%v]: [%v]",
			ErrInvalidValue,
			raw,
			err,
		)
	}

	canonical := parsed.String()

	if format == FormatCanonical && raw != canonical {
		return GUID{}, fmt.Errorf(
			"%w: GUID [%v] is not in canonical form",
			ErrInvalidValue,
			raw,
		)
	}

	identifier, err := NewIdentifier(canonical, CategoryGUID)
	if err != nil {
		return GUID{}, err
	}

	return GUID{Identifier: identifier}, nil
}

func (g GUID) Equals(other GUID) bool {
	return g.Identifier.Equals(other.Identifier)
}

// GUIDService generates new globally-unique identifiers and parses
// existing ones. Generation involves randomness, so it stays behind
// this port while grammar validation remains pure.
type GUIDService interface {
	NewGUID() GUID

	NewGUIDFromString(raw string) (GUID, error)
}
