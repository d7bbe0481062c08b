package controllers

import (
	"net/http"
	"strconv"

	"pavilion-backend/config"
	"pavilion-backend/models"
	"pavilion-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the per-slot room heatmap, location-wide
// occupancy percentages and the day's reservations for one location.
func GetDashboardStats(c *gin.Context) {
	locationID, err := strconv.ParseUint(c.Query("location_id"), 10, 32)
	dateStr := c.Query("date")
	if err != nil || dateStr == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "location_id and date parameters are required")
		return
	}
	if _, err := utils.ParseDate(dateStr); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	var location models.Location
	if err := config.DB.First(&location, uint(locationID)).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Location not found")
		return
	}

	stats, err := availabilityService.DashboardStats(config.DB, &location, dateStr)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
