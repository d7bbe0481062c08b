package controllers

import (
	"errors"
	"net/http"

	"pavilion-backend/services"
	"pavilion-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	auditService        *services.AuditService
	assignmentService   *services.AssignmentService
	availabilityService *services.AvailabilityService
	reservationService  *services.ReservationService
	blockService        *services.BlockService
)

// InitServices wires the service layer. Called once from main after the
// database connection is up.
func InitServices(db *gorm.DB) {
	auditService = services.NewAuditService()
	assignmentService = services.NewAssignmentService()
	availabilityService = services.NewAvailabilityService(assignmentService)
	reservationService = services.NewReservationService(db, availabilityService, assignmentService, auditService)
	blockService = services.NewBlockService(db, auditService)
}

// respondServiceError maps service sentinel errors to HTTP statuses.
// Anything unrecognized is a 500 with a generic message.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrBlockedSlot),
		errors.Is(err, services.ErrNoRoomAvailable):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrSoftBlocked):
		utils.RespondWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrEmailConflict):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrSlotContention):
		utils.RespondWithError(c, http.StatusConflict, "The slot is being booked by someone else, please retry")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "An internal error occurred")
	}
}
