package services

import "errors"

// Failure kinds surfaced by the reservation engine. Controllers map
// them onto HTTP statuses with errors.Is; capacity and block failures
// are ordinary outcomes the caller recovers from by picking another
// slot, not faults.
var (
	// ErrValidation covers malformed input: bad dates, times outside
	// dining hours, party sizes beyond the channel cap.
	ErrValidation = errors.New("validation failed")

	// ErrCapacityExceeded means the slot cannot take the party within
	// the location's guest or reservation limits.
	ErrCapacityExceeded = errors.New("slot capacity exceeded")

	// ErrBlockedSlot means a hard block covers the requested window.
	ErrBlockedSlot = errors.New("slot is blocked")

	// ErrNoRoomAvailable means no room can seat the party in the window.
	ErrNoRoomAvailable = errors.New("no room available")

	// ErrSoftBlocked means the chosen room is soft-blocked and the
	// caller lacks the manager role needed to override.
	ErrSoftBlocked = errors.New("room is soft-blocked")

	// ErrNotFound covers unknown location, room, reservation, customer
	// or block ids.
	ErrNotFound = errors.New("not found")

	// ErrSlotContention is returned when the slot lock could not be
	// taken; the request is safe to retry with the same payload.
	ErrSlotContention = errors.New("slot contention, retry")

	// ErrEmailConflict means the email already belongs to another record.
	ErrEmailConflict = errors.New("email already in use")
)
