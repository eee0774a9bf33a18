package identity_test

import (
	"errors"
	"testing"

	"github.com/lukasz-zimnoch/dexly/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGUID(t *testing.T) {
	raw := "0185ccd8-bb94-4b47-b3a1-98ef4f2f0a01"

	guid, err := identity.NewGUID(raw)
	require.NoError(t, err)

	assert.Equal(t, raw, guid.Value())
	assert.Equal(t, identity.CategoryGUID, guid.Category())
}

func TestNewGUID_InvalidValue(t *testing.T) {
	tests := map[string]string{
		"empty string":      "",
		"not a GUID":        "ORD-001",
		"truncated":         "0185ccd8-bb94-4b47-b3a1",
		"non-hex digits":    "0185ccd8-bb94-4b47-b3a1-98ef4f2f0zzz",
		"missing hyphens":   "0185ccd8bb944b47b3a198ef4f2f0a01",
		"uppercase":         "0185CCD8-BB94-4B47-B3A1-98EF4F2F0A01",
		"surrounding brace": "{0185ccd8-bb94-4b47-b3a1-98ef4f2f0a01}",
	}

	for testName, raw := range tests {
		t.Run(testName, func(t *testing.T) {
			_, err := identity.NewGUID(raw)
			require.Error(t, err)

			assert.True(
				t,
				errors.Is(err, identity.ErrInvalidValue),
				"expected ErrInvalidValue, got [%v]",
				err,
			)
		})
	}
}

func TestNewGUIDWithFormat_Lenient(t *testing.T) {
	canonical := "0185ccd8-bb94-4b47-b3a1-98ef4f2f0a01"

	tests := map[string]string{
		"uppercase":         "0185CCD8-BB94-4B47-B3A1-98EF4F2F0A01",
		"missing hyphens":   "0185ccd8bb944b47b3a198ef4f2f0a01",
		"surrounding brace": "{0185ccd8-bb94-4b47-b3a1-98ef4f2f0a01}",
		"urn prefix":        "urn:uuid:0185ccd8-bb94-4b47-b3a1-98ef4f2f0a01",
	}

	for testName, raw := range tests {
		t.Run(testName, func(t *testing.T) {
			guid, err := identity.NewGUIDWithFormat(
				raw,
				identity.FormatLenient,
			)
			require.NoError(t, err)

			// value is normalized so equality stays well defined
			assert.Equal(t, canonical, guid.Value())
		})
	}
}

func TestGUID_Equals(t *testing.T) {
	first, err := identity.NewGUID("0185ccd8-bb94-4b47-b3a1-98ef4f2f0a01")
	require.NoError(t, err)

	second, err := identity.NewGUIDWithFormat(
		"0185CCD8-BB94-4B47-B3A1-98EF4F2F0A01",
		identity.FormatLenient,
	)
	require.NoError(t, err)

	other, err := identity.NewGUID("57df6d69-7e60-4c87-b3ad-69bb9d6ef5ef")
	require.NoError(t, err)

	assert.True(t, first.Equals(second))
	assert.True(t, second.Equals(first))
	assert.False(t, first.Equals(other))
}
