package utils

import (
	"fmt"
	"time"
)

// Dining hours shared by every location:
// Tuesday through Saturday 17:00-23:00, Sunday and Monday 17:00-21:00.
const (
	OpenMinute       = 17 * 60
	CloseMinuteLong  = 23 * 60
	CloseMinuteShort = 21 * 60

	SlotIntervalMinutes = 30
)

// DiningHours returns the opening minute (inclusive) and closing minute
// (exclusive) of the day for the given date.
func DiningHours(date time.Time) (openMin, closeMin int) {
	switch date.Weekday() {
	case time.Sunday, time.Monday:
		return OpenMinute, CloseMinuteShort
	default:
		return OpenMinute, CloseMinuteLong
	}
}

// GenerateTimeSlots returns the ordered bookable "HH:MM" slots for a
// date, stepping every 30 minutes from opening (inclusive) to closing
// (exclusive): 8 slots on short days, 12 on long days.
func GenerateTimeSlots(date time.Time) []string {
	openMin, closeMin := DiningHours(date)
	slots := make([]string, 0, (closeMin-openMin)/SlotIntervalMinutes)
	for m := openMin; m < closeMin; m += SlotIntervalMinutes {
		slots = append(slots, FormatMinute(m))
	}
	return slots
}

// IsValidBookingTime reports whether an "HH:MM" time falls inside the
// dining hours for the date.
func IsValidBookingTime(date time.Time, timeStr string) bool {
	m, err := MinuteOfDay(timeStr)
	if err != nil {
		return false
	}
	openMin, closeMin := DiningHours(date)
	return m >= openMin && m < closeMin
}

// MinuteOfDay parses a zero-padded "HH:MM" string into minutes since
// midnight.
func MinuteOfDay(timeStr string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(timeStr, "%2d:%2d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", timeStr, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || len(timeStr) != 5 {
		return 0, fmt.Errorf("invalid time %q", timeStr)
	}
	return h*60 + m, nil
}

// FormatMinute renders minutes since midnight as "HH:MM".
func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutes shifts an "HH:MM" time forward, clamping at 24:00 so the
// result still compares lexicographically against same-day times.
func AddMinutes(timeStr string, minutes int) string {
	m, err := MinuteOfDay(timeStr)
	if err != nil {
		return timeStr
	}
	m += minutes
	if m > 24*60 {
		m = 24 * 60
	}
	return FormatMinute(m)
}
