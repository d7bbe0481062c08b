package services

import (
	"fmt"
	"math"

	"pavilion-backend/models"
	"pavilion-backend/utils"

	"gorm.io/gorm"
)

// AvailabilityService computes per-slot availability and the dashboard
// occupancy report. It reads the reservations table directly on every
// call; the table is the only capacity ledger, so results always
// reflect the latest committed state.
type AvailabilityService struct {
	assignment *AssignmentService
}

func NewAvailabilityService(assignment *AssignmentService) *AvailabilityService {
	return &AvailabilityService{assignment: assignment}
}

// SlotAvailability is the public availability row for one time slot.
type SlotAvailability struct {
	Time            string `json:"time"`
	Available       bool   `json:"available"`
	SlotsLeft       int    `json:"slotsLeft"`
	GuestsAvailable int    `json:"guestsAvailable"`
}

// windowsOverlap reports whether two same-day minute windows genuinely
// overlap. Touching boundaries (one ends exactly where the other
// starts) do not count.
func windowsOverlap(aStart string, aDuration int, bStart string, bDuration int) bool {
	a, errA := utils.MinuteOfDay(aStart)
	b, errB := utils.MinuteOfDay(bStart)
	if errA != nil || errB != nil {
		return false
	}
	return a < b+bDuration && a+aDuration > b
}

// computeSlotAvailability folds the day's confirmed reservations and
// blocks into one availability row per slot. A slot is available when
// no location-wide hard block covers it and at least one more
// reservation for at least one guest would fit.
func computeSlotAvailability(date string, slots []string, reservations []models.Reservation, blocks []models.Block, maxGuests, maxReservations int) []SlotAvailability {
	out := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		slotEnd := utils.AddMinutes(slot, models.DefaultDurationMinutes)

		totalGuests := 0
		totalReservations := 0
		for i := range reservations {
			r := &reservations[i]
			if r.Status != models.StatusConfirmed {
				continue
			}
			if windowsOverlap(r.Time, r.DurationMinutes, slot, models.DefaultDurationMinutes) {
				totalGuests += r.PartySize
				totalReservations++
			}
		}

		slotsLeft := maxReservations - totalReservations
		guestsAvailable := maxGuests - totalGuests
		available := !locationHardBlocked(blocks, date, slot, slotEnd) &&
			slotsLeft >= 1 && guestsAvailable >= 1

		out = append(out, SlotAvailability{
			Time:            slot,
			Available:       available,
			SlotsLeft:       max(0, slotsLeft),
			GuestsAvailable: max(0, guestsAvailable),
		})
	}
	return out
}

// ForDate returns availability for every bookable slot of the date.
func (s *AvailabilityService) ForDate(db *gorm.DB, location *models.Location, date string) ([]SlotAvailability, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrValidation)
	}

	var reservations []models.Reservation
	if err := db.Where("location_id = ? AND date = ? AND status = ?", location.ID, date, models.StatusConfirmed).
		Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}
	blocks, err := s.assignment.blocksCovering(db, location.ID, date)
	if err != nil {
		return nil, fmt.Errorf("load blocks: %w", err)
	}

	slots := utils.GenerateTimeSlots(day)
	return computeSlotAvailability(date, slots, reservations, blocks,
		location.MaxGuestsPerSlot, location.MaxReservationsPerSlot), nil
}

// CheckSlotCapacity verifies that one more reservation of partySize
// guests fits the location's limits for the window, and that no
// location-wide hard block covers it. Call inside the booking
// transaction so the answer holds until commit.
func (s *AvailabilityService) CheckSlotCapacity(tx *gorm.DB, location *models.Location, date, start string, durationMinutes, partySize int, excludeID uint) error {
	end := utils.AddMinutes(start, durationMinutes)

	blocks, err := s.assignment.blocksCovering(tx, location.ID, date)
	if err != nil {
		return fmt.Errorf("load blocks: %w", err)
	}
	if locationHardBlocked(blocks, date, start, end) {
		return fmt.Errorf("%w: this time is not available for reservations", ErrBlockedSlot)
	}

	guests, reservations, err := s.assignment.LocationOccupancy(tx, location.ID, date, start, durationMinutes, excludeID)
	if err != nil {
		return err
	}
	if guests+partySize > location.MaxGuestsPerSlot {
		return fmt.Errorf("%w: slot holds %d guests, %d already booked",
			ErrCapacityExceeded, location.MaxGuestsPerSlot, guests)
	}
	if reservations+1 > location.MaxReservationsPerSlot {
		return fmt.Errorf("%w: slot limit of %d reservations reached",
			ErrCapacityExceeded, location.MaxReservationsPerSlot)
	}
	return nil
}

// RoomHeatmapEntry is one room's occupancy across the day's slots,
// keyed by slot time.
type RoomHeatmapEntry struct {
	ID          uint                     `json:"id"`
	Code        string                   `json:"code"`
	Name        string                   `json:"name"`
	MaxCapacity int                      `json:"max_capacity"`
	IsActive    bool                     `json:"is_active"`
	Slots       map[string]RoomSlotStats `json:"slots"`
}

type RoomSlotStats struct {
	Occupancy        int     `json:"occupancy"`
	ReservationCount int     `json:"reservation_count"`
	Percentage       float64 `json:"percentage"`
}

type LocationSlotStats struct {
	TotalGuests            int     `json:"total_guests"`
	TotalReservations      int     `json:"total_reservations"`
	GuestsPercentage       float64 `json:"guests_percentage"`
	ReservationsPercentage float64 `json:"reservations_percentage"`
}

// DashboardStats assembles the admin dashboard payload: the location,
// the day's slot list, a per-room heatmap, per-slot location totals and
// the day's reservations.
func (s *AvailabilityService) DashboardStats(db *gorm.DB, location *models.Location, date string) (map[string]interface{}, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrValidation)
	}

	var reservations []models.Reservation
	if err := db.Preload("Customer").Preload("Room").
		Where("location_id = ? AND date = ?", location.ID, date).
		Order("time").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	var rooms []models.Room
	if err := db.Where("location_id = ?", location.ID).Order("code").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	slots := utils.GenerateTimeSlots(day)

	heatmap := make([]RoomHeatmapEntry, 0, len(rooms))
	for _, room := range rooms {
		entry := RoomHeatmapEntry{
			ID:          room.ID,
			Code:        room.Code,
			Name:        room.Name,
			MaxCapacity: room.MaxCapacity,
			IsActive:    room.IsActive,
			Slots:       make(map[string]RoomSlotStats, len(slots)),
		}
		for _, slot := range slots {
			occupancy := 0
			count := 0
			for i := range reservations {
				r := &reservations[i]
				if r.Status != models.StatusConfirmed || r.RoomID == nil || *r.RoomID != room.ID {
					continue
				}
				if windowsOverlap(r.Time, r.DurationMinutes, slot, models.DefaultDurationMinutes) {
					occupancy += r.PartySize
					count++
				}
			}
			pct := 0.0
			if room.MaxCapacity > 0 {
				pct = roundPct(float64(occupancy) / float64(room.MaxCapacity) * 100)
			}
			entry.Slots[slot] = RoomSlotStats{Occupancy: occupancy, ReservationCount: count, Percentage: pct}
		}
		heatmap = append(heatmap, entry)
	}

	locationStats := make(map[string]LocationSlotStats, len(slots))
	for _, slot := range slots {
		guests := 0
		count := 0
		for i := range reservations {
			r := &reservations[i]
			if r.Status != models.StatusConfirmed {
				continue
			}
			if windowsOverlap(r.Time, r.DurationMinutes, slot, models.DefaultDurationMinutes) {
				guests += r.PartySize
				count++
			}
		}
		stats := LocationSlotStats{TotalGuests: guests, TotalReservations: count}
		if location.MaxGuestsPerSlot > 0 {
			stats.GuestsPercentage = roundPct(float64(guests) / float64(location.MaxGuestsPerSlot) * 100)
		}
		if location.MaxReservationsPerSlot > 0 {
			stats.ReservationsPercentage = roundPct(float64(count) / float64(location.MaxReservationsPerSlot) * 100)
		}
		locationStats[slot] = stats
	}

	formatted := make([]map[string]interface{}, 0, len(reservations))
	for i := range reservations {
		formatted = append(formatted, reservations[i].ToJSON())
	}

	return map[string]interface{}{
		"location":       location,
		"date":           date,
		"time_slots":     slots,
		"room_heatmap":   heatmap,
		"location_stats": locationStats,
		"reservations":   formatted,
	}, nil
}

func roundPct(v float64) float64 {
	return math.Round(v*10) / 10
}
