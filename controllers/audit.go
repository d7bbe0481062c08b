package controllers

import (
	"net/http"
	"strconv"

	"pavilion-backend/config"
	"pavilion-backend/models"
	"pavilion-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetAuditLog returns the most recent audit entries, newest first.
func GetAuditLog(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	var logs []models.AuditLog
	if err := config.DB.Preload("Admin").Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	out := make([]map[string]interface{}, 0, len(logs))
	for i := range logs {
		out = append(out, logs[i].ToJSON())
	}
	c.JSON(http.StatusOK, out)
}
