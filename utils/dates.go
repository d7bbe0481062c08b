// utils/dates.go
package utils

import "time"

// ParseDate parses a "YYYY-MM-DD" wire date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// IsPastDate reports whether the date lies strictly before today.
// Compared as calendar dates so a parsed UTC date and a local clock
// agree on what "today" is.
func IsPastDate(date, now time.Time) bool {
	return date.Format("2006-01-02") < now.Format("2006-01-02")
}
