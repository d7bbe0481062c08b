package services

import (
	"fmt"

	"pavilion-backend/models"
	"pavilion-backend/utils"

	"gorm.io/gorm"
)

// AssignmentService resolves which room a reservation occupies. Explicit
// choices by an admin are validated against capacity and blocks;
// automatic assignment picks deterministically among the eligible rooms.
type AssignmentService struct{}

func NewAssignmentService() *AssignmentService {
	return &AssignmentService{}
}

// Assignment is the outcome of a successful room resolution. A nil Room
// means the reservation proceeds unassigned (admin channel only).
type Assignment struct {
	Room              *models.Room
	ManualAssignment  bool
	SoftBlockOverride bool
}

// roomCandidate pairs a room with its booked guest total for the window
// under consideration.
type roomCandidate struct {
	Room      models.Room
	Occupancy int
}

// pickRoom selects the candidate whose free capacity wastes the least
// space for the party: smallest sufficient free capacity wins, ties go
// to the lowest room id so assignment is deterministic. Returns nil
// when no candidate can seat the party.
func pickRoom(candidates []roomCandidate, partySize int) *roomCandidate {
	var best *roomCandidate
	for i := range candidates {
		c := &candidates[i]
		free := c.Room.MaxCapacity - c.Occupancy
		if free < partySize {
			continue
		}
		if best == nil {
			best = c
			continue
		}
		bestFree := best.Room.MaxCapacity - best.Occupancy
		if free < bestFree || (free == bestFree && c.Room.ID < best.Room.ID) {
			best = c
		}
	}
	return best
}

// blocksCovering returns all blocks of the location whose date range
// includes the given date.
func (s *AssignmentService) blocksCovering(tx *gorm.DB, locationID uint, date string) ([]models.Block, error) {
	var blocks []models.Block
	err := tx.Where("location_id = ? AND start_date <= ? AND end_date >= ?", locationID, date, date).
		Find(&blocks).Error
	return blocks, err
}

// roomBlocked reports whether any block of the given type covers the
// room for the window.
func roomBlocked(blocks []models.Block, roomID uint, blockType, date, start, end string) bool {
	for i := range blocks {
		b := &blocks[i]
		if b.BlockType != blockType || !b.AppliesToRoom(roomID) {
			continue
		}
		if b.CoversWindow(date, start, end) {
			return true
		}
	}
	return false
}

// explicitRoomDecision validates an admin's room choice against the
// day's blocks, the room's remaining capacity and the caller's role.
// A hard block always refuses; a covering soft block refuses everyone
// but a manager, and for a manager it is reported back so the caller
// audits the override.
func explicitRoomDecision(room *models.Room, blocks []models.Block, occupancy, partySize int, date, start, end, role string) (softBlockOverride bool, err error) {
	if roomBlocked(blocks, room.ID, models.BlockHard, date, start, end) {
		return false, fmt.Errorf("%w: room %s", ErrBlockedSlot, room.Name)
	}

	override := roomBlocked(blocks, room.ID, models.BlockSoft, date, start, end)
	if override && role != models.RoleManager {
		return false, ErrSoftBlocked
	}

	if occupancy+partySize > room.MaxCapacity {
		return false, fmt.Errorf("%w: room %s holds %d guests, %d already seated",
			ErrCapacityExceeded, room.Name, room.MaxCapacity, occupancy)
	}
	return override, nil
}

// locationHardBlocked reports whether a location-wide hard block covers
// the window.
func locationHardBlocked(blocks []models.Block, date, start, end string) bool {
	for i := range blocks {
		b := &blocks[i]
		if b.BlockType == models.BlockHard && b.RoomID == nil && b.CoversWindow(date, start, end) {
			return true
		}
	}
	return false
}

// RoomOccupancy sums the party sizes of confirmed reservations whose
// windows genuinely overlap [start, start+duration) in the room.
// Touching windows do not count. excludeID, when non-zero, leaves that
// reservation out so edits do not collide with themselves.
func (s *AssignmentService) RoomOccupancy(tx *gorm.DB, roomID uint, date, start string, durationMinutes int, excludeID uint) (int, error) {
	end := utils.AddMinutes(start, durationMinutes)
	q := tx.Model(&models.Reservation{}).
		Select("COALESCE(SUM(party_size), 0)").
		Where("room_id = ? AND date = ? AND status = ?", roomID, date, models.StatusConfirmed).
		Where("time < ? AND (time::time + make_interval(mins => duration_minutes)) > ?::time", end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var total int
	if err := q.Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("room occupancy: %w", err)
	}
	return total, nil
}

// LocationOccupancy returns the confirmed guest total and reservation
// count for the location across the window.
func (s *AssignmentService) LocationOccupancy(tx *gorm.DB, locationID uint, date, start string, durationMinutes int, excludeID uint) (guests, reservations int, err error) {
	end := utils.AddMinutes(start, durationMinutes)
	q := tx.Model(&models.Reservation{}).
		Select("COALESCE(SUM(party_size), 0) AS guests, COUNT(*) AS reservations").
		Where("location_id = ? AND date = ? AND status = ?", locationID, date, models.StatusConfirmed).
		Where("time < ? AND (time::time + make_interval(mins => duration_minutes)) > ?::time", end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var row struct {
		Guests       int
		Reservations int
	}
	if err := q.Scan(&row).Error; err != nil {
		return 0, 0, fmt.Errorf("location occupancy: %w", err)
	}
	return row.Guests, row.Reservations, nil
}

// AssignRoom resolves the room for a reservation window.
//
// With an explicit room id the room must belong to the location, be free
// of hard blocks and have enough remaining capacity; a covering soft
// block is only passable by a manager and is reported back through
// Assignment.SoftBlockOverride so the caller audits it.
//
// Without one, the eligible rooms (active, unblocked either way, enough
// free capacity) are ranked by pickRoom. ErrNoRoomAvailable is returned
// when nothing qualifies; the caller decides between rejecting and
// creating the reservation unassigned.
func (s *AssignmentService) AssignRoom(tx *gorm.DB, locationID uint, date, start string, durationMinutes, partySize int, explicitRoomID *uint, role string, excludeID uint) (*Assignment, error) {
	end := utils.AddMinutes(start, durationMinutes)

	blocks, err := s.blocksCovering(tx, locationID, date)
	if err != nil {
		return nil, fmt.Errorf("load blocks: %w", err)
	}

	if explicitRoomID != nil {
		var room models.Room
		if err := tx.First(&room, *explicitRoomID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("%w: room %d", ErrNotFound, *explicitRoomID)
			}
			return nil, err
		}
		if room.LocationID != locationID {
			return nil, fmt.Errorf("%w: room belongs to a different location", ErrValidation)
		}

		occupancy, err := s.RoomOccupancy(tx, room.ID, date, start, durationMinutes, excludeID)
		if err != nil {
			return nil, err
		}
		override, err := explicitRoomDecision(&room, blocks, occupancy, partySize, date, start, end, role)
		if err != nil {
			return nil, err
		}

		return &Assignment{Room: &room, ManualAssignment: true, SoftBlockOverride: override}, nil
	}

	var rooms []models.Room
	if err := tx.Where("location_id = ? AND is_active = ?", locationID, true).
		Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	candidates := make([]roomCandidate, 0, len(rooms))
	for _, room := range rooms {
		if roomBlocked(blocks, room.ID, models.BlockHard, date, start, end) ||
			roomBlocked(blocks, room.ID, models.BlockSoft, date, start, end) {
			continue
		}
		occupancy, err := s.RoomOccupancy(tx, room.ID, date, start, durationMinutes, excludeID)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, roomCandidate{Room: room, Occupancy: occupancy})
	}

	best := pickRoom(candidates, partySize)
	if best == nil {
		return nil, ErrNoRoomAvailable
	}
	room := best.Room
	return &Assignment{Room: &room}, nil
}
