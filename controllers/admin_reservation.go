package controllers

import (
	"net/http"
	"strconv"

	"pavilion-backend/models"
	"pavilion-backend/services"
	"pavilion-backend/utils"

	"github.com/gin-gonic/gin"
)

type AdminCreateReservationInput struct {
	LocationID      uint   `json:"location_id" binding:"required"`
	RoomID          *uint  `json:"room_id"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	PartySize       int    `json:"party_size" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
	Name            string `json:"customer_name" binding:"required"`
	Email           string `json:"customer_email" binding:"required"`
	Phone           string `json:"customer_phone"`
	SpecialRequests string `json:"special_requests"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type UpdateReservationInput struct {
	LocationID      uint   `json:"location_id" binding:"required"`
	RoomID          *uint  `json:"room_id"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	PartySize       int    `json:"party_size" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status" binding:"required"`
	Name            string `json:"customer_name" binding:"required"`
	Email           string `json:"customer_email" binding:"required"`
	Phone           string `json:"customer_phone"`
	SpecialRequests string `json:"special_requests"`
}

type UpdateRoomInput struct {
	RoomID uint `json:"room_id" binding:"required"`
}

// ListReservations returns reservations for the admin console with
// optional location_id, date and search filters.
func ListReservations(c *gin.Context) {
	var filter services.ListFilter
	if raw := c.Query("location_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid location_id format")
			return
		}
		filter.LocationID = uint(id)
	}
	filter.Date = c.Query("date")
	filter.Search = c.Query("search")

	reservations, err := reservationService.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]map[string]interface{}, 0, len(reservations))
	for i := range reservations {
		out = append(out, reservations[i].ToJSON())
	}
	c.JSON(http.StatusOK, out)
}

// AdminCreateReservation books over the admin channel: larger parties,
// optional explicit room, manager soft-block override.
func AdminCreateReservation(c *gin.Context) {
	var input AdminCreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields: location_id, date, time, party_size, customer_name, customer_email")
		return
	}

	reservation, err := reservationService.Create(services.CreateRequest{
		LocationID:      input.LocationID,
		Date:            input.Date,
		Time:            input.Time,
		PartySize:       input.PartySize,
		DurationMinutes: input.DurationMinutes,
		CustomerName:    input.Name,
		CustomerEmail:   input.Email,
		CustomerPhone:   input.Phone,
		SpecialRequests: input.SpecialRequests,
		RoomID:          input.RoomID,
	}, true, utils.AdminID(c), utils.AdminRole(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reservation.ToJSON())
}

// UpdateReservationStatus moves a reservation between the four states.
func UpdateReservationStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil || !models.IsValidStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Valid status required (confirmed, cancelled, no-show, completed)")
		return
	}

	if err := reservationService.UpdateStatus(uint(id), input.Status, utils.AdminID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}

// UpdateReservation applies the admin full edit.
func UpdateReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	var input UpdateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields for update")
		return
	}

	err = reservationService.UpdateDetails(uint(id), services.UpdateDetailsRequest{
		LocationID:      input.LocationID,
		Date:            input.Date,
		Time:            input.Time,
		PartySize:       input.PartySize,
		DurationMinutes: input.DurationMinutes,
		CustomerName:    input.Name,
		CustomerEmail:   input.Email,
		CustomerPhone:   input.Phone,
		SpecialRequests: input.SpecialRequests,
		Status:          input.Status,
		RoomID:          input.RoomID,
	}, utils.AdminID(c), utils.AdminRole(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation updated successfully"})
}

// UpdateReservationRoom moves a reservation to an explicit room. Soft
// blocked rooms need the manager role; the override is always audited.
func UpdateReservationRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	var input UpdateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "room_id is required")
		return
	}

	if err := reservationService.UpdateRoom(uint(id), input.RoomID, utils.AdminID(c), utils.AdminRole(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room updated successfully"})
}

// DeleteReservation removes the reservation row entirely.
func DeleteReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	if err := reservationService.Delete(uint(id), utils.AdminID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}
