package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "bloodnet/pkg/domain-errors"
)

func TestDistricts(t *testing.T) {
	all := Districts()
	require.Len(t, all, 38)
	assert.Equal(t, District("Ariyalur"), all[0])
	assert.Equal(t, District("Kanyakumari"), all[37])

	t.Run("returns a copy", func(t *testing.T) {
		all[0] = "Mutated"
		assert.Equal(t, District("Ariyalur"), Districts()[0])
	})
}

func TestParseDistrict(t *testing.T) {
	t.Run("accepts enumerated name", func(t *testing.T) {
		d, err := ParseDistrict("Madurai")
		require.NoError(t, err)
		assert.Equal(t, District("Madurai"), d)
	})

	t.Run("is case-sensitive", func(t *testing.T) {
		_, err := ParseDistrict("madurai")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ParseDistrict("")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestParseBloodGroup(t *testing.T) {
	for _, g := range BloodGroups() {
		parsed, err := ParseBloodGroup(string(g))
		require.NoError(t, err)
		assert.Equal(t, g, parsed)
	}

	for _, bad := range []string{"", "C+", "o+", "AB"} {
		_, err := ParseBloodGroup(bad)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput), "input %q", bad)
	}
}

func TestParseAvailabilityAndUrgency(t *testing.T) {
	a, err := ParseAvailability("Not Available")
	require.NoError(t, err)
	assert.Equal(t, NotAvailable, a)

	_, err = ParseAvailability("available")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))

	u, err := ParseUrgency("Medium")
	require.NoError(t, err)
	assert.Equal(t, "Urgent (within 6 hours)", u.ResponseWindow())

	_, err = ParseUrgency("Critical")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	assert.Empty(t, Urgency("Critical").ResponseWindow())
}
