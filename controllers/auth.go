package controllers

import (
	"errors"
	"net/http"
	"strings"

	"pavilion-backend/config"
	"pavilion-backend/models"
	"pavilion-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an admin and sets the session cookie. The token
// also comes back in the body for API clients that prefer a Bearer
// header.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	username := strings.TrimSpace(input.Username)

	var admin models.Admin
	result := config.DB.Where("username = ?", username).First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid username or password")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, admin.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := utils.GenerateToken(&admin)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.SetCookie(
		utils.SessionCookie,
		token,
		utils.SessionMaxAge(),
		"/",
		"",
		utils.SecureCookies(),
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"name":     admin.FullName,
			"role":     admin.Role,
		},
	})
}

// Logout clears the session cookie.
func Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", utils.SecureCookies(), true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Me returns the authenticated admin from the session.
func Me(c *gin.Context) {
	adminID := utils.AdminID(c)
	if adminID == 0 {
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var admin models.Admin
	if err := config.DB.First(&admin, adminID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Admin not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"name":     admin.FullName,
			"role":     admin.Role,
		},
	})
}
