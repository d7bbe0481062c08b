package models

import "time"

// Customer is matched by email across bookings, so repeat bookers keep a
// single record that outlives any reservation referencing it.
type Customer struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"type:varchar(100);not null" json:"name"`
	Email            string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Phone            string `gorm:"type:varchar(20)" json:"phone"`
	NewsletterSignup bool   `gorm:"default:false" json:"newsletter_signup"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
