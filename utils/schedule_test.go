package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-09-01 is a Tuesday, 2026-09-06 a Sunday, 2026-09-07 a Monday.
var (
	tuesday = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	friday  = time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	sunday  = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	monday  = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
)

func TestDiningHours(t *testing.T) {
	open, close := DiningHours(tuesday)
	assert.Equal(t, 17*60, open)
	assert.Equal(t, 23*60, close)

	open, close = DiningHours(sunday)
	assert.Equal(t, 17*60, open)
	assert.Equal(t, 21*60, close)

	open, close = DiningHours(monday)
	assert.Equal(t, 17*60, open)
	assert.Equal(t, 21*60, close)
}

func TestGenerateTimeSlotsLongDay(t *testing.T) {
	slots := GenerateTimeSlots(friday)
	require.Len(t, slots, 12)
	assert.Equal(t, "17:00", slots[0])
	assert.Equal(t, "22:30", slots[len(slots)-1])
}

func TestGenerateTimeSlotsShortDay(t *testing.T) {
	slots := GenerateTimeSlots(monday)
	require.Len(t, slots, 8)
	assert.Equal(t, "17:00", slots[0])
	assert.Equal(t, "20:30", slots[len(slots)-1])
}

func TestGenerateTimeSlotsOrderedAndPadded(t *testing.T) {
	slots := GenerateTimeSlots(friday)
	for i, slot := range slots {
		require.Len(t, slot, 5)
		if i > 0 {
			// zero-padded times order lexicographically
			assert.True(t, slots[i-1] < slot)
		}
	}
}

func TestIsValidBookingTime(t *testing.T) {
	assert.True(t, IsValidBookingTime(friday, "17:00"))
	assert.True(t, IsValidBookingTime(friday, "22:30"))
	assert.False(t, IsValidBookingTime(friday, "23:00"))
	assert.False(t, IsValidBookingTime(friday, "16:30"))

	assert.True(t, IsValidBookingTime(sunday, "20:30"))
	assert.False(t, IsValidBookingTime(sunday, "21:00"))
	assert.False(t, IsValidBookingTime(sunday, "22:00"))

	assert.False(t, IsValidBookingTime(friday, "5pm"))
	assert.False(t, IsValidBookingTime(friday, ""))
}

func TestMinuteOfDay(t *testing.T) {
	m, err := MinuteOfDay("17:30")
	require.NoError(t, err)
	assert.Equal(t, 17*60+30, m)

	m, err = MinuteOfDay("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = MinuteOfDay("24:00")
	assert.Error(t, err)
	_, err = MinuteOfDay("9:30")
	assert.Error(t, err)
	_, err = MinuteOfDay("17:60")
	assert.Error(t, err)
	_, err = MinuteOfDay("not a time")
	assert.Error(t, err)
}

func TestAddMinutes(t *testing.T) {
	assert.Equal(t, "18:00", AddMinutes("17:00", 60))
	assert.Equal(t, "23:30", AddMinutes("22:30", 60))
	assert.Equal(t, "24:00", AddMinutes("23:30", 60))
	// clamped past midnight, still comparable against same-day times
	assert.Equal(t, "24:00", AddMinutes("23:30", 90))
}

func TestFormatMinuteRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m += 30 {
		parsed, err := MinuteOfDay(FormatMinute(m))
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}
