package models

import "time"

type Location struct {
	ID                     uint   `gorm:"primaryKey" json:"id"`
	Code                   string `gorm:"type:varchar(3);uniqueIndex;not null" json:"code"`
	Name                   string `gorm:"type:varchar(100);not null" json:"name"`
	Timezone               string `gorm:"type:varchar(50);not null" json:"timezone"`
	MaxGuestsPerSlot       int    `gorm:"not null;default:120" json:"max_guests_per_slot"`
	MaxReservationsPerSlot int    `gorm:"not null;default:30" json:"max_reservations_per_slot"`

	CreatedAt time.Time `json:"created_at"`

	Rooms []Room `gorm:"foreignKey:LocationID" json:"-"`
}
