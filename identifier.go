package identity

import (
	"errors"
	"fmt"
)

// ErrInvalidCategory is returned when an identifier is constructed
// with an empty category.
var ErrInvalidCategory = errors.New("invalid identifier category")

// Identifier is a category-tagged ValidString. The category partitions
// the identifier space: identifiers of different categories are never
// equal, even when their string values coincide.
type Identifier struct {
	ValidString

	category string
}

func NewIdentifier(raw, category string) (Identifier, error) {
	return DefaultPolicy().NewIdentifier(raw, category)
}

func (p Policy) NewIdentifier(raw, category string) (Identifier, error) {
	if len(category) == 0 {
		return Identifier{}, fmt.Errorf(
			"%w: empty category",
			ErrInvalidCategory,
		)
	}

	value, err := p.NewValidString(raw)
	if err != nil {
		return Identifier{}, err
	}

	return Identifier{
		ValidString: value,
		category:    category,
	}, nil
}

func (id Identifier) Category() string {
	return id.category
}

func (id Identifier) Equals(other Identifier) bool {
	return id.category == other.category && id.value == other.value
}
