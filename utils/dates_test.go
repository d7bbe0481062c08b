package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-04")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.September, d.Month())
	assert.Equal(t, 4, d.Day())

	_, err = ParseDate("04/09/2026")
	assert.Error(t, err)
	_, err = ParseDate("2026-9-4")
	assert.Error(t, err)
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2026, 9, 4, 15, 30, 0, 0, time.UTC)

	yesterday := time.Date(2026, 9, 3, 23, 59, 0, 0, time.UTC)
	today := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsPastDate(yesterday, now))
	// today is bookable even late in the day
	assert.False(t, IsPastDate(today, now))
	assert.False(t, IsPastDate(tomorrow, now))
}

func TestIsPastDateLocalClock(t *testing.T) {
	// wire dates parse as UTC midnight; the server clock may sit in any
	// zone. Today must stay bookable either side of UTC.
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	today, err := ParseDate("2026-09-04")
	require.NoError(t, err)

	assert.False(t, IsPastDate(today, time.Date(2026, 9, 4, 10, 0, 0, 0, newYork)))
	assert.False(t, IsPastDate(today, time.Date(2026, 9, 4, 23, 30, 0, 0, newYork)))
	assert.False(t, IsPastDate(today, time.Date(2026, 9, 4, 0, 30, 0, 0, tokyo)))

	yesterday, err := ParseDate("2026-09-03")
	require.NoError(t, err)
	assert.True(t, IsPastDate(yesterday, time.Date(2026, 9, 4, 0, 30, 0, 0, newYork)))
}
