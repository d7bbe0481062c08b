package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"pavilion-backend/models"
	"pavilion-backend/utils"

	"gorm.io/gorm"
)

// ReservationService orchestrates the reservation lifecycle: creation
// over both channels, status and detail edits, room reassignment and
// hard deletion. Every mutating path runs inside one transaction that
// also carries its audit entry.
type ReservationService struct {
	db           *gorm.DB
	availability *AvailabilityService
	assignment   *AssignmentService
	audit        *AuditService
}

func NewReservationService(db *gorm.DB, availability *AvailabilityService, assignment *AssignmentService, audit *AuditService) *ReservationService {
	return &ReservationService{db: db, availability: availability, assignment: assignment, audit: audit}
}

// CreateRequest carries a booking over either channel. RoomID is only
// honored for admin bookings; public requests are always auto-assigned.
type CreateRequest struct {
	LocationID      uint
	Date            string
	Time            string
	PartySize       int
	DurationMinutes int
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	SpecialRequests string
	RoomID          *uint
}

// UpdateDetailsRequest is the admin full-edit payload.
type UpdateDetailsRequest struct {
	LocationID      uint
	Date            string
	Time            string
	PartySize       int
	DurationMinutes int
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	SpecialRequests string
	Status          string
	RoomID          *uint
}

// ListFilter narrows the admin reservation listing.
type ListFilter struct {
	LocationID uint
	Date       string
	Search     string
}

const reservationNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateReservationNumber builds a customer-facing number like
// "JPN-A43C7": the location code plus five random alphanumerics.
func generateReservationNumber(locationCode string) (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reservation number: %w", err)
	}
	for i, b := range buf {
		buf[i] = reservationNumberAlphabet[int(b)%len(reservationNumberAlphabet)]
	}
	return locationCode + "-" + string(buf), nil
}

// slotLockKey derives the advisory-lock key serializing bookings for one
// (location, date, time) slot. FNV-1a over the tuple keeps the key
// stable across processes.
func slotLockKey(locationID uint, date, timeStr string) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%s", locationID, date, timeStr)
	return int64(h.Sum64())
}

// lockSlot takes the per-slot advisory lock within the transaction. The
// lock releases automatically at commit or rollback. A busy lock
// surfaces ErrSlotContention instead of waiting, so callers can retry.
func lockSlot(tx *gorm.DB, locationID uint, date, timeStr string) error {
	var acquired bool
	if err := tx.Raw("SELECT pg_try_advisory_xact_lock(?)", slotLockKey(locationID, date, timeStr)).
		Scan(&acquired).Error; err != nil {
		return fmt.Errorf("slot lock: %w", err)
	}
	if !acquired {
		return ErrSlotContention
	}
	return nil
}

// validatePartySize enforces the channel cap: 12 for self-service, 30
// for admin bookings.
func validatePartySize(partySize int, adminChannel bool) error {
	limit := models.MaxPartySizeFor(adminChannel)
	if partySize < 1 || partySize > limit {
		return fmt.Errorf("%w: party size must be between 1 and %d", ErrValidation, limit)
	}
	return nil
}

// upsertCustomer finds the customer by email, refreshing name and phone,
// or creates the record on first contact.
func upsertCustomer(tx *gorm.DB, name, email, phone string) (*models.Customer, error) {
	var customer models.Customer
	err := tx.Where("email = ?", email).First(&customer).Error
	switch {
	case err == nil:
		customer.Name = name
		customer.Phone = phone
		if err := tx.Save(&customer).Error; err != nil {
			return nil, fmt.Errorf("update customer: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		customer = models.Customer{Name: name, Email: email, Phone: phone}
		if err := tx.Create(&customer).Error; err != nil {
			return nil, fmt.Errorf("create customer: %w", err)
		}
	default:
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &customer, nil
}

// Create books a reservation. adminID and role are zero-valued on the
// public channel. The capacity check, room resolution and insert run as
// one serialized unit per slot, so two requests racing for the last
// capacity cannot both succeed.
func (s *ReservationService) Create(req CreateRequest, adminChannel bool, adminID uint, role string) (*models.Reservation, error) {
	if err := validatePartySize(req.PartySize, adminChannel); err != nil {
		return nil, err
	}
	day, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrValidation)
	}
	if utils.IsPastDate(day, time.Now()) {
		return nil, fmt.Errorf("%w: cannot book reservations for past dates", ErrValidation)
	}
	if !utils.IsValidBookingTime(day, req.Time) {
		return nil, fmt.Errorf("%w: selected time is outside dining hours", ErrValidation)
	}
	if !utils.ValidateEmail(req.CustomerEmail) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if req.CustomerPhone != "" && !utils.ValidatePhone(req.CustomerPhone) {
		return nil, fmt.Errorf("%w: invalid phone number", ErrValidation)
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = models.DefaultDurationMinutes
	}

	var location models.Location
	if err := s.db.First(&location, req.LocationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: location %d", ErrNotFound, req.LocationID)
		}
		return nil, err
	}

	var created *models.Reservation
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockSlot(tx, location.ID, req.Date, req.Time); err != nil {
			return err
		}
		if err := s.availability.CheckSlotCapacity(tx, &location, req.Date, req.Time, req.DurationMinutes, req.PartySize, 0); err != nil {
			return err
		}

		var explicitRoom *uint
		if adminChannel {
			explicitRoom = req.RoomID
		}
		assignment, err := s.assignment.AssignRoom(tx, location.ID, req.Date, req.Time,
			req.DurationMinutes, req.PartySize, explicitRoom, role, 0)
		if err != nil {
			// Public bookings need a seated room; an admin may book
			// unassigned and place the party later.
			if errors.Is(err, ErrNoRoomAvailable) && adminChannel {
				assignment = &Assignment{}
			} else {
				return err
			}
		}

		customer, err := upsertCustomer(tx, req.CustomerName, req.CustomerEmail, req.CustomerPhone)
		if err != nil {
			return err
		}

		number, err := s.uniqueReservationNumber(tx, location.Code)
		if err != nil {
			return err
		}

		reservation := models.Reservation{
			ReservationNumber: number,
			CustomerID:        customer.ID,
			LocationID:        location.ID,
			Date:              req.Date,
			Time:              req.Time,
			DurationMinutes:   req.DurationMinutes,
			PartySize:         req.PartySize,
			Status:            models.StatusConfirmed,
			SpecialRequests:   req.SpecialRequests,
		}
		if assignment.Room != nil {
			reservation.RoomID = &assignment.Room.ID
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}

		if adminChannel {
			details := map[string]interface{}{
				"source":                 "admin",
				"room_id":                reservation.RoomID,
				"manual_room_assignment": assignment.ManualAssignment,
				"soft_block_override":    assignment.SoftBlockOverride,
			}
			if err := s.audit.Log(tx, adminID, "create_reservation", "reservation", reservation.ID, details); err != nil {
				return err
			}
		}

		created = &reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reload with associations for the response payloads.
	if err := s.db.Preload("Customer").Preload("Location").Preload("Room").
		First(created, created.ID).Error; err != nil {
		return nil, err
	}
	return created, nil
}

// uniqueReservationNumber retries number generation on the rare
// collision with an existing row.
func (s *ReservationService) uniqueReservationNumber(tx *gorm.DB, locationCode string) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		number, err := generateReservationNumber(locationCode)
		if err != nil {
			return "", err
		}
		var count int64
		if err := tx.Model(&models.Reservation{}).Where("reservation_number = ?", number).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return number, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique reservation number")
}

// List returns reservations for the admin console, newest first, with
// optional location, date and free-text filters. Search matches the
// reservation number and the customer's name or email.
func (s *ReservationService) List(filter ListFilter) ([]models.Reservation, error) {
	q := s.db.Preload("Customer").Preload("Location").Preload("Room")
	if filter.LocationID != 0 {
		q = q.Where("reservations.location_id = ?", filter.LocationID)
	}
	if filter.Date != "" {
		if _, err := utils.ParseDate(filter.Date); err != nil {
			return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrValidation)
		}
		q = q.Where("reservations.date = ?", filter.Date)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Joins("JOIN customers ON customers.id = reservations.customer_id").
			Where("reservations.reservation_number ILIKE ? OR customers.name ILIKE ? OR customers.email ILIKE ?",
				pattern, pattern, pattern)
	}
	var reservations []models.Reservation
	if err := q.Order("reservations.date DESC, reservations.time DESC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetByNumber fetches one reservation by its customer-facing number.
func (s *ReservationService) GetByNumber(number string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.Preload("Customer").Preload("Location").Preload("Room").
		Where("reservation_number = ?", number).First(&reservation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: reservation %s", ErrNotFound, number)
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateStatus sets one of the four statuses. All states remain
// reachable from each other; the admin console re-edits freely.
func (s *ReservationService) UpdateStatus(id uint, status string, adminID uint) error {
	if !models.IsValidStatus(status) {
		return fmt.Errorf("%w: valid status required (%v)", ErrValidation, models.ValidStatuses)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: reservation %d", ErrNotFound, id)
			}
			return err
		}
		if err := tx.Model(&reservation).Update("status", status).Error; err != nil {
			return err
		}
		return s.audit.Log(tx, adminID, "update_status", "reservation", id,
			map[string]interface{}{"new_status": status})
	})
}

// UpdateDetails applies the admin full edit: the slot, party, customer
// and room may all change, so capacity and blocks are re-validated for
// the new window with the reservation itself excluded from the counts.
func (s *ReservationService) UpdateDetails(id uint, req UpdateDetailsRequest, adminID uint, role string) error {
	if err := validatePartySize(req.PartySize, true); err != nil {
		return err
	}
	if !models.IsValidStatus(req.Status) {
		return fmt.Errorf("%w: valid status required (%v)", ErrValidation, models.ValidStatuses)
	}
	day, err := utils.ParseDate(req.Date)
	if err != nil {
		return fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrValidation)
	}
	if !utils.IsValidBookingTime(day, req.Time) {
		return fmt.Errorf("%w: selected time is outside dining hours", ErrValidation)
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = models.DefaultDurationMinutes
	}

	var location models.Location
	if err := s.db.First(&location, req.LocationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: location %d", ErrNotFound, req.LocationID)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: reservation %d", ErrNotFound, id)
			}
			return err
		}

		if err := lockSlot(tx, location.ID, req.Date, req.Time); err != nil {
			return err
		}
		if err := s.availability.CheckSlotCapacity(tx, &location, req.Date, req.Time,
			req.DurationMinutes, req.PartySize, reservation.ID); err != nil {
			return err
		}

		assignment, err := s.assignment.AssignRoom(tx, location.ID, req.Date, req.Time,
			req.DurationMinutes, req.PartySize, req.RoomID, role, reservation.ID)
		if err != nil {
			return err
		}

		customer, err := upsertCustomer(tx, req.CustomerName, req.CustomerEmail, req.CustomerPhone)
		if err != nil {
			return err
		}

		reservation.CustomerID = customer.ID
		reservation.LocationID = location.ID
		reservation.RoomID = nil
		if assignment.Room != nil {
			reservation.RoomID = &assignment.Room.ID
		}
		reservation.Date = req.Date
		reservation.Time = req.Time
		reservation.DurationMinutes = req.DurationMinutes
		reservation.PartySize = req.PartySize
		reservation.Status = req.Status
		reservation.SpecialRequests = req.SpecialRequests
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}

		details := map[string]interface{}{
			"source":                 "admin_update",
			"date":                   req.Date,
			"time":                   req.Time,
			"party_size":             req.PartySize,
			"status":                 req.Status,
			"final_room_id":          reservation.RoomID,
			"manual_room_assignment": assignment.ManualAssignment,
			"soft_block_override":    assignment.SoftBlockOverride,
		}
		return s.audit.Log(tx, adminID, "update_details", "reservation", id, details)
	})
}

// UpdateRoom moves a reservation to an explicitly chosen room and always
// writes a manual_room_override audit entry carrying old and new room
// ids and whether a soft block was overridden.
func (s *ReservationService) UpdateRoom(id, roomID, adminID uint, role string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: reservation %d", ErrNotFound, id)
			}
			return err
		}

		if err := lockSlot(tx, reservation.LocationID, reservation.Date, reservation.Time); err != nil {
			return err
		}

		oldRoomID := reservation.RoomID
		assignment, err := s.assignment.AssignRoom(tx, reservation.LocationID, reservation.Date,
			reservation.Time, reservation.DurationMinutes, reservation.PartySize, &roomID, role, reservation.ID)
		if err != nil {
			return err
		}

		reservation.RoomID = &assignment.Room.ID
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}

		details := map[string]interface{}{
			"old_room_id":         oldRoomID,
			"new_room_id":         assignment.Room.ID,
			"soft_block_override": assignment.SoftBlockOverride,
		}
		return s.audit.Log(tx, adminID, "manual_room_override", "reservation", id, details)
	})
}

// Delete removes the reservation row entirely. Cancellation keeps the
// row with status cancelled; this does not.
func (s *ReservationService) Delete(id, adminID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: reservation %d", ErrNotFound, id)
			}
			return err
		}
		if err := tx.Delete(&reservation).Error; err != nil {
			return err
		}
		return s.audit.Log(tx, adminID, "delete_reservation", "reservation", id,
			map[string]interface{}{})
	})
}
