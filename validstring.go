package identity

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidValue is returned when a raw string does not satisfy
// the validity policy.
var ErrInvalidValue = errors.New("invalid identifier value")

// Policy is the validity predicate enforced on every wrapped value.
// The zero MaxLength disables the length check.
type Policy struct {
	MaxLength int
}

func DefaultPolicy() Policy {
	return Policy{MaxLength: 1024}
}

func (p Policy) validate(raw string) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: empty string", ErrInvalidValue)
	}

	if p.MaxLength > 0 && len(raw) > p.MaxLength {
		return fmt.Errorf(
			"%w: length [%v] exceeds limit [%v]",
			ErrInvalidValue,
			len(raw),
			p.MaxLength,
		)
	}

	if strings.TrimSpace(raw) != raw {
		return fmt.Errorf(
			"%w: leading or trailing whitespace in [%v]",
			ErrInvalidValue,
			raw,
		)
	}

	for _, character := range raw {
		if unicode.IsControl(character) {
			return fmt.Errorf(
				"%w: control character in [%q]",
				ErrInvalidValue,
				raw,
			)
		}
	}

	return nil
}

// ValidString wraps a string that satisfied the validity policy at
// construction time. Instances are immutable and comparable, so they
// can be used directly as map keys.
type ValidString struct {
	value string
}

func NewValidString(raw string) (ValidString, error) {
	return DefaultPolicy().NewValidString(raw)
}

func (p Policy) NewValidString(raw string) (ValidString, error) {
	if err := p.validate(raw); err != nil {
		return ValidString{}, err
	}

	return ValidString{value: raw}, nil
}

func (vs ValidString) Value() string {
	return vs.value
}

func (vs ValidString) String() string {
	return vs.value
}

func (vs ValidString) Equals(other ValidString) bool {
	return vs.value == other.value
}
