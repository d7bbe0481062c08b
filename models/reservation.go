package models

import "time"

// Reservation statuses. Creation lands directly in confirmed; the admin
// console may move a reservation freely between the four states.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
	StatusCompleted = "completed"
)

// ValidStatuses in the order the admin UI presents them.
var ValidStatuses = []string{StatusConfirmed, StatusCancelled, StatusNoShow, StatusCompleted}

// Party size caps per booking channel.
const (
	PublicMaxPartySize = 12
	AdminMaxPartySize  = 30
)

// Wire formats for dates and times of day. Both are zero-padded, so
// lexicographic order equals temporal order.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

const DefaultDurationMinutes = 60

type Reservation struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	ReservationNumber string `gorm:"type:varchar(20);uniqueIndex;not null" json:"reservation_number"`
	CustomerID        uint   `gorm:"index;not null" json:"customer_id"`
	LocationID        uint   `gorm:"index;not null" json:"location_id"`
	RoomID            *uint  `gorm:"index" json:"room_id"`
	Date              string `gorm:"type:varchar(10);index;not null" json:"date"`
	Time              string `gorm:"type:varchar(5);not null" json:"time"`
	DurationMinutes   int    `gorm:"not null;default:60" json:"duration_minutes"`
	PartySize         int    `gorm:"not null" json:"party_size"`
	Status            string `gorm:"type:varchar(20);not null;default:confirmed" json:"status"`
	SpecialRequests   string `gorm:"type:text" json:"special_requests"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
	Location Location `gorm:"foreignKey:LocationID" json:"-"`
	Room     *Room    `gorm:"foreignKey:RoomID" json:"-"`
}

// IsValidStatus reports whether s is one of the four reservation statuses.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// MaxPartySizeFor returns the party size cap for a booking channel.
func MaxPartySizeFor(adminChannel bool) int {
	if adminChannel {
		return AdminMaxPartySize
	}
	return PublicMaxPartySize
}

// ToJSON shapes a reservation the way the admin console consumes it,
// with the customer record and location/room summaries inlined. The
// Customer, Location and Room associations must be preloaded.
func (r *Reservation) ToJSON() map[string]interface{} {
	out := map[string]interface{}{
		"id":                 r.ID,
		"reservation_number": r.ReservationNumber,
		"customer_id":        r.CustomerID,
		"location_id":        r.LocationID,
		"room_id":            r.RoomID,
		"date":               r.Date,
		"time":               r.Time,
		"duration_minutes":   r.DurationMinutes,
		"party_size":         r.PartySize,
		"status":             r.Status,
		"special_requests":   r.SpecialRequests,
		"created_at":         r.CreatedAt,
		"updated_at":         r.UpdatedAt,
		"customer":           nil,
		"location":           nil,
		"room":               nil,
	}
	if r.Customer.ID != 0 {
		out["customer"] = r.Customer
	}
	if r.Location.ID != 0 {
		out["location"] = map[string]string{"code": r.Location.Code, "name": r.Location.Name}
	}
	if r.Room != nil && r.Room.ID != 0 {
		out["room"] = map[string]string{"code": r.Room.Code, "name": r.Room.Name}
	}
	return out
}
