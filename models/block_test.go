package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockCoversWindowDatesInclusive(t *testing.T) {
	b := Block{
		StartDate: "2026-09-10",
		EndDate:   "2026-09-12",
		StartTime: "17:00",
		EndTime:   "23:00",
	}

	assert.True(t, b.CoversWindow("2026-09-10", "18:00", "19:00"))
	assert.True(t, b.CoversWindow("2026-09-11", "18:00", "19:00"))
	assert.True(t, b.CoversWindow("2026-09-12", "18:00", "19:00"))

	assert.False(t, b.CoversWindow("2026-09-09", "18:00", "19:00"))
	assert.False(t, b.CoversWindow("2026-09-13", "18:00", "19:00"))
}

func TestBlockCoversWindowTouchingTimesDoNotOverlap(t *testing.T) {
	b := Block{
		StartDate: "2026-09-10",
		EndDate:   "2026-09-10",
		StartTime: "18:00",
		EndTime:   "20:00",
	}

	// a window ending exactly at the block start is free
	assert.False(t, b.CoversWindow("2026-09-10", "17:00", "18:00"))
	// a window starting exactly at the block end is free
	assert.False(t, b.CoversWindow("2026-09-10", "20:00", "21:00"))

	// any genuine intersection is covered
	assert.True(t, b.CoversWindow("2026-09-10", "17:30", "18:30"))
	assert.True(t, b.CoversWindow("2026-09-10", "19:30", "20:30"))
	assert.True(t, b.CoversWindow("2026-09-10", "18:30", "19:30"))
	// the window can fully contain the block
	assert.True(t, b.CoversWindow("2026-09-10", "17:00", "21:00"))
}

func TestBlockAppliesToRoom(t *testing.T) {
	locationWide := Block{RoomID: nil}
	assert.True(t, locationWide.AppliesToRoom(1))
	assert.True(t, locationWide.AppliesToRoom(42))

	roomID := uint(3)
	scoped := Block{RoomID: &roomID}
	assert.True(t, scoped.AppliesToRoom(3))
	assert.False(t, scoped.AppliesToRoom(4))
}
