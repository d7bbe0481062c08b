package services

import (
	"testing"

	"pavilion-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(id uint, capacity, occupancy int) roomCandidate {
	return roomCandidate{
		Room:      models.Room{ID: id, MaxCapacity: capacity},
		Occupancy: occupancy,
	}
}

func TestPickRoomSmallestSufficientFreeCapacity(t *testing.T) {
	candidates := []roomCandidate{
		candidate(1, 30, 0),  // free 30
		candidate(2, 12, 0),  // free 12
		candidate(3, 20, 10), // free 10
	}

	picked := pickRoom(candidates, 8)
	require.NotNil(t, picked)
	assert.Equal(t, uint(3), picked.Room.ID)

	picked = pickRoom(candidates, 11)
	require.NotNil(t, picked)
	assert.Equal(t, uint(2), picked.Room.ID)

	picked = pickRoom(candidates, 25)
	require.NotNil(t, picked)
	assert.Equal(t, uint(1), picked.Room.ID)
}

func TestPickRoomTieBreaksOnLowestID(t *testing.T) {
	candidates := []roomCandidate{
		candidate(7, 20, 8), // free 12
		candidate(2, 12, 0), // free 12
		candidate(5, 16, 4), // free 12
	}

	picked := pickRoom(candidates, 10)
	require.NotNil(t, picked)
	assert.Equal(t, uint(2), picked.Room.ID)
}

func TestPickRoomDeterministicAcrossOrderings(t *testing.T) {
	a := []roomCandidate{candidate(1, 10, 0), candidate(2, 10, 0), candidate(3, 30, 0)}
	b := []roomCandidate{candidate(3, 30, 0), candidate(2, 10, 0), candidate(1, 10, 0)}

	pickedA := pickRoom(a, 6)
	pickedB := pickRoom(b, 6)
	require.NotNil(t, pickedA)
	require.NotNil(t, pickedB)
	assert.Equal(t, pickedA.Room.ID, pickedB.Room.ID)
}

func TestPickRoomNoFit(t *testing.T) {
	candidates := []roomCandidate{
		candidate(1, 12, 10),
		candidate(2, 16, 15),
	}
	assert.Nil(t, pickRoom(candidates, 5))
	assert.Nil(t, pickRoom(nil, 1))
}

func TestExplicitRoomDecision(t *testing.T) {
	room := &models.Room{ID: 2, Name: "Garden Room", MaxCapacity: 20}
	roomID := room.ID
	softBlock := models.Block{
		BlockType: models.BlockSoft,
		RoomID:    &roomID,
		StartDate: "2026-09-10", EndDate: "2026-09-10",
		StartTime: "17:00", EndTime: "23:00",
	}
	hardBlock := models.Block{
		BlockType: models.BlockHard,
		RoomID:    &roomID,
		StartDate: "2026-09-10", EndDate: "2026-09-10",
		StartTime: "17:00", EndTime: "23:00",
	}

	tests := []struct {
		name         string
		blocks       []models.Block
		occupancy    int
		partySize    int
		role         string
		wantErr      error
		wantOverride bool
	}{
		{
			name:      "free room seats anyone",
			partySize: 6, role: models.RoleAdmin,
		},
		{
			name:   "soft block refused for plain admin",
			blocks: []models.Block{softBlock},
			partySize: 6, role: models.RoleAdmin,
			wantErr: ErrSoftBlocked,
		},
		{
			name:   "soft block overridden by manager",
			blocks: []models.Block{softBlock},
			partySize: 6, role: models.RoleManager,
			wantOverride: true,
		},
		{
			name:   "hard block refused even for manager",
			blocks: []models.Block{hardBlock},
			partySize: 6, role: models.RoleManager,
			wantErr: ErrBlockedSlot,
		},
		{
			name:      "capacity exceeded",
			occupancy: 16, partySize: 6, role: models.RoleManager,
			wantErr: ErrCapacityExceeded,
		},
		{
			name:      "exact fit is allowed",
			occupancy: 14, partySize: 6, role: models.RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			override, err := explicitRoomDecision(room, tt.blocks, tt.occupancy, tt.partySize,
				"2026-09-10", "18:00", "19:00", tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOverride, override)
		})
	}
}

func TestExplicitRoomDecisionOutsideBlockWindow(t *testing.T) {
	room := &models.Room{ID: 1, Name: "Main Dining Hall", MaxCapacity: 30}
	roomID := room.ID
	blocks := []models.Block{{
		BlockType: models.BlockSoft,
		RoomID:    &roomID,
		StartDate: "2026-09-10", EndDate: "2026-09-10",
		StartTime: "17:00", EndTime: "19:00",
	}}

	// the window only touches the block end, no override involved
	override, err := explicitRoomDecision(room, blocks, 0, 4,
		"2026-09-10", "19:00", "20:00", models.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, override)
}

func TestRoomBlocked(t *testing.T) {
	roomID := uint(2)
	blocks := []models.Block{
		{
			BlockType: models.BlockSoft,
			RoomID:    &roomID,
			StartDate: "2026-09-10", EndDate: "2026-09-10",
			StartTime: "18:00", EndTime: "20:00",
		},
		{
			BlockType: models.BlockHard,
			RoomID:    nil, // location-wide
			StartDate: "2026-09-11", EndDate: "2026-09-11",
			StartTime: "17:00", EndTime: "23:00",
		},
	}

	assert.True(t, roomBlocked(blocks, 2, models.BlockSoft, "2026-09-10", "18:00", "19:00"))
	assert.False(t, roomBlocked(blocks, 1, models.BlockSoft, "2026-09-10", "18:00", "19:00"))
	assert.False(t, roomBlocked(blocks, 2, models.BlockHard, "2026-09-10", "18:00", "19:00"))

	// the location-wide hard block covers every room
	assert.True(t, roomBlocked(blocks, 1, models.BlockHard, "2026-09-11", "19:00", "20:00"))
	assert.True(t, roomBlocked(blocks, 2, models.BlockHard, "2026-09-11", "19:00", "20:00"))
}

func TestLocationHardBlocked(t *testing.T) {
	roomID := uint(1)
	blocks := []models.Block{
		{
			BlockType: models.BlockHard,
			RoomID:    &roomID, // room-scoped, not location-wide
			StartDate: "2026-09-10", EndDate: "2026-09-10",
			StartTime: "17:00", EndTime: "23:00",
		},
		{
			BlockType: models.BlockSoft,
			RoomID:    nil,
			StartDate: "2026-09-10", EndDate: "2026-09-10",
			StartTime: "17:00", EndTime: "23:00",
		},
	}

	// neither a room-scoped hard block nor a location-wide soft block
	// closes the whole location
	assert.False(t, locationHardBlocked(blocks, "2026-09-10", "18:00", "19:00"))

	blocks = append(blocks, models.Block{
		BlockType: models.BlockHard,
		RoomID:    nil,
		StartDate: "2026-09-10", EndDate: "2026-09-10",
		StartTime: "19:00", EndTime: "21:00",
	})
	assert.True(t, locationHardBlocked(blocks, "2026-09-10", "19:30", "20:30"))
	assert.False(t, locationHardBlocked(blocks, "2026-09-10", "18:00", "19:00"))
}
