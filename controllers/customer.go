package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pavilion-backend/config"
	"pavilion-backend/models"
	"pavilion-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateCustomerInput struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required"`
	Phone            string `json:"phone"`
	NewsletterSignup bool   `json:"newsletter_signup"`
}

// ListCustomers returns every customer, ordered by id.
func ListCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Order("id").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "An internal error occurred")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// UpdateCustomer edits a customer record. Changing the email to one
// already held by another customer is a conflict, since email is the
// natural key for booking upserts.
func UpdateCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer id")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Name and email are required")
		return
	}
	email := strings.TrimSpace(input.Email)
	if !utils.ValidateEmail(email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
		return
	}
	phone := strings.TrimSpace(input.Phone)
	if phone != "" && !utils.ValidatePhone(phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "An internal error occurred")
		}
		return
	}

	if email != customer.Email {
		var count int64
		if err := config.DB.Model(&models.Customer{}).
			Where("email = ? AND id <> ?", email, customer.ID).
			Count(&count).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "An internal error occurred")
			return
		}
		if count > 0 {
			utils.RespondWithError(c, http.StatusConflict, "This email address is already in use by another customer")
			return
		}
	}

	oldDetails := map[string]interface{}{
		"name":              customer.Name,
		"email":             customer.Email,
		"phone":             customer.Phone,
		"newsletter_signup": customer.NewsletterSignup,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		customer.Name = strings.TrimSpace(input.Name)
		customer.Email = email
		customer.Phone = phone
		customer.NewsletterSignup = input.NewsletterSignup
		if err := tx.Save(&customer).Error; err != nil {
			return err
		}
		return auditService.Log(tx, utils.AdminID(c), "update_customer", "customer", customer.ID,
			map[string]interface{}{
				"old": oldDetails,
				"new": map[string]interface{}{
					"name":              customer.Name,
					"email":             customer.Email,
					"phone":             customer.Phone,
					"newsletter_signup": customer.NewsletterSignup,
				},
			})
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer updated successfully"})
}

// ListSubscribers returns newsletter subscribers, ordered by id.
func ListSubscribers(c *gin.Context) {
	var subscribers []models.NewsletterSubscriber
	if err := config.DB.Order("id").Find(&subscribers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "An internal error occurred")
		return
	}
	c.JSON(http.StatusOK, subscribers)
}
