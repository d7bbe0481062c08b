package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"pavilion-backend/config"
	"pavilion-backend/models"
	"pavilion-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubscribeInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Subscribe adds an email to the newsletter. Resubscribing an
// unsubscribed address reactivates it with a fresh timestamp.
func Subscribe(c *gin.Context) {
	var input SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Email is required")
		return
	}

	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)

	if email == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Email is required")
		return
	}
	if !utils.ValidateEmail(email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	var subscriber models.NewsletterSubscriber
	err := config.DB.Where("email = ?", email).First(&subscriber).Error
	switch {
	case err == nil:
		if subscriber.Status == models.SubscriberActive {
			c.JSON(http.StatusOK, gin.H{"message": "Email is already subscribed"})
			return
		}
		subscriber.Status = models.SubscriberActive
		subscriber.SubscribedAt = time.Now()
		if err := config.DB.Save(&subscriber).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "An internal error occurred during subscription")
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		subscriber = models.NewsletterSubscriber{
			Email:  email,
			Status: models.SubscriberActive,
		}
		if name != "" {
			subscriber.Name = &name
		}
		if err := config.DB.Create(&subscriber).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "An internal error occurred during subscription")
			return
		}
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "An internal error occurred during subscription")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Successfully subscribed to newsletter"})
}
