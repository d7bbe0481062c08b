package controllers

import (
	"net/http"
	"strconv"

	"pavilion-backend/config"
	"pavilion-backend/models"
	"pavilion-backend/utils"

	"github.com/gin-gonic/gin"
)

// ListRooms returns all rooms of a location, ordered by code.
func ListRooms(c *gin.Context) {
	raw := c.Query("location_id")
	if raw == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "location_id parameter is required")
		return
	}
	locationID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid location_id format")
		return
	}

	var rooms []models.Room
	if err := config.DB.Where("location_id = ?", uint(locationID)).Order("code").Find(&rooms).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "An internal error occurred")
		return
	}
	c.JSON(http.StatusOK, rooms)
}
