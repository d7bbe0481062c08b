package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePartySizeChannels(t *testing.T) {
	assert.NoError(t, validatePartySize(1, false))
	assert.NoError(t, validatePartySize(12, false))
	assert.Error(t, validatePartySize(13, false))

	assert.NoError(t, validatePartySize(13, true))
	assert.NoError(t, validatePartySize(30, true))
	assert.Error(t, validatePartySize(31, true))

	assert.Error(t, validatePartySize(0, false))
	assert.Error(t, validatePartySize(-3, true))

	err := validatePartySize(40, true)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRejectsMalformedContactDetails(t *testing.T) {
	// input validation runs before any storage access
	svc := NewReservationService(nil, nil, nil, nil)

	base := CreateRequest{
		LocationID:    1,
		Date:          "2027-01-08",
		Time:          "18:00",
		PartySize:     4,
		CustomerName:  "Guest",
		CustomerEmail: "guest@example.com",
	}

	bad := base
	bad.CustomerPhone = "not-a-phone"
	_, err := svc.Create(bad, false, 0, "")
	assert.ErrorIs(t, err, ErrValidation)

	bad = base
	bad.CustomerEmail = "not-an-email"
	_, err = svc.Create(bad, false, 0, "")
	assert.ErrorIs(t, err, ErrValidation)

	bad = base
	bad.Time = "16:00"
	_, err = svc.Create(bad, false, 0, "")
	assert.ErrorIs(t, err, ErrValidation)

	bad = base
	bad.Date = "2020-01-03"
	_, err = svc.Create(bad, false, 0, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGenerateReservationNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^PAV-[A-Z0-9]{5}$`)
	for i := 0; i < 50; i++ {
		number, err := generateReservationNumber("PAV")
		require.NoError(t, err)
		assert.Regexp(t, pattern, number)
	}
}

func TestSlotLockKeyDeterministic(t *testing.T) {
	a := slotLockKey(1, "2026-09-04", "18:00")
	b := slotLockKey(1, "2026-09-04", "18:00")
	assert.Equal(t, a, b)

	// different slots should not share a lock
	assert.NotEqual(t, a, slotLockKey(2, "2026-09-04", "18:00"))
	assert.NotEqual(t, a, slotLockKey(1, "2026-09-05", "18:00"))
	assert.NotEqual(t, a, slotLockKey(1, "2026-09-04", "18:30"))
}
