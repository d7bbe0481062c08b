package services

import (
	"encoding/json"
	"fmt"

	"pavilion-backend/models"

	"gorm.io/gorm"
)

// AuditService writes append-only audit entries. Log takes the caller's
// *gorm.DB so a mutation and its audit record commit or roll back as
// one unit; an audit failure fails the whole transaction rather than
// silently dropping the trail.
type AuditService struct{}

func NewAuditService() *AuditService {
	return &AuditService{}
}

// Log records an admin action against an entity. details is marshalled
// into the JSON column as-is.
func (s *AuditService) Log(tx *gorm.DB, adminID uint, action, entityType string, entityID uint, details map[string]interface{}) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}
	entry := models.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    payload,
	}
	if adminID != 0 {
		entry.AdminID = &adminID
	}
	return tx.Create(&entry).Error
}
