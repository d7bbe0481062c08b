package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

type Admin struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string `gorm:"type:varchar(100);not null" json:"full_name"`
	Role         string `gorm:"type:varchar(20);not null;default:admin" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}
