package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"pavilion-backend/config"
	"pavilion-backend/models"
	"pavilion-backend/services"
	"pavilion-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateReservationInput struct {
	LocationID      uint   `json:"location_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	PartySize       int    `json:"party_size" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests"`
}

// GetLocations lists all locations, ordered by name.
func GetLocations(c *gin.Context) {
	var locations []models.Location
	if err := config.DB.Order("name").Find(&locations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// GetAvailability returns per-slot availability for a location and date.
func GetAvailability(c *gin.Context) {
	locationID, err := strconv.ParseUint(c.Query("location_id"), 10, 32)
	dateStr := c.Query("date")
	if err != nil || dateStr == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "location_id and date parameters are required")
		return
	}

	day, err := utils.ParseDate(dateStr)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}
	if utils.IsPastDate(day, time.Now()) {
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot check availability for past dates")
		return
	}

	var location models.Location
	if err := config.DB.First(&location, uint(locationID)).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Location not found")
		return
	}

	slots, err := availabilityService.ForDate(config.DB, &location, dateStr)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// CreateReservation books over the public channel. Party sizes above
// the self-service cap get a hint to call instead.
func CreateReservation(c *gin.Context) {
	var input CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required field: location_id, date, time, party_size, name, email")
		return
	}

	if input.PartySize > models.PublicMaxPartySize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":        fmt.Sprintf("Party size must be between 1 and %d. For larger parties, please call us.", models.PublicMaxPartySize),
			"requiresCall": true,
		})
		return
	}

	reservation, err := reservationService.Create(services.CreateRequest{
		LocationID:      input.LocationID,
		Date:            input.Date,
		Time:            input.Time,
		PartySize:       input.PartySize,
		CustomerName:    input.Name,
		CustomerEmail:   input.Email,
		CustomerPhone:   input.Phone,
		SpecialRequests: input.SpecialRequests,
	}, false, 0, "")
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := gin.H{
		"id":                reservation.ID,
		"reservationNumber": reservation.ReservationNumber,
		"message":           fmt.Sprintf("Reservation confirmed! Your reservation number is %s", reservation.ReservationNumber),
	}
	if reservation.Room != nil {
		resp["room"] = gin.H{
			"code": reservation.Room.Code,
			"name": reservation.Room.Name,
		}
	}
	c.JSON(http.StatusCreated, resp)
}

// GetReservationByNumber lets a guest look up their booking.
func GetReservationByNumber(c *gin.Context) {
	reservation, err := reservationService.GetByNumber(c.Param("number"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation.ToJSON())
}
