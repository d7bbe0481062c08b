package models

import "time"

type Room struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	LocationID  uint   `gorm:"index;not null" json:"location_id"`
	Code        string `gorm:"type:varchar(10);uniqueIndex;not null" json:"code"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	MaxCapacity int    `gorm:"not null;default:30" json:"max_capacity"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`

	Location Location `gorm:"foreignKey:LocationID" json:"-"`
}
