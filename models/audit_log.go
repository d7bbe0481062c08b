package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog is append-only. An entry is written inside the same
// transaction as the admin mutation it records, so neither can land
// without the other.
type AuditLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	AdminID    *uint          `gorm:"index" json:"admin_id"`
	Action     string         `gorm:"type:varchar(50);not null" json:"action"`
	EntityType string         `gorm:"type:varchar(50);not null" json:"entity_type"`
	EntityID   uint           `json:"entity_id"`
	Details    datatypes.JSON `json:"details"`

	CreatedAt time.Time `json:"created_at"`

	Admin *Admin `gorm:"foreignKey:AdminID" json:"-"`
}

// ToJSON adds the acting admin's display name. The Admin association
// must be preloaded.
func (l *AuditLog) ToJSON() map[string]interface{} {
	out := map[string]interface{}{
		"id":          l.ID,
		"admin_id":    l.AdminID,
		"action":      l.Action,
		"entity_type": l.EntityType,
		"entity_id":   l.EntityID,
		"details":     l.Details,
		"created_at":  l.CreatedAt,
		"admin_name":  nil,
	}
	if l.Admin != nil && l.Admin.ID != 0 {
		out["admin_name"] = l.Admin.FullName
	}
	return out
}
