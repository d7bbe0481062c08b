package controllers

import (
	"net/http"
	"strings"

	"pavilion-backend/config"
	"pavilion-backend/models"
	"pavilion-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateNameInput struct {
	FullName string `json:"fullName" binding:"required"`
}

type UpdatePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

func GetProfile(c *gin.Context) {
	adminID := utils.AdminID(c)
	if adminID == 0 {
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var admin models.Admin
	if err := config.DB.First(&admin, adminID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Admin not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": admin.Username,
		"fullName": admin.FullName,
		"role":     admin.Role,
	})
}

func UpdateProfileName(c *gin.Context) {
	adminID := utils.AdminID(c)
	if adminID == 0 {
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input UpdateNameInput
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.FullName) == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Full name is required")
		return
	}

	var admin models.Admin
	if err := config.DB.First(&admin, adminID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Admin not found")
		return
	}

	if err := config.DB.Model(&admin).Update("full_name", strings.TrimSpace(input.FullName)).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update name")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Name updated successfully"})
}

func UpdateProfilePassword(c *gin.Context) {
	adminID := utils.AdminID(c)
	if adminID == 0 {
		utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input UpdatePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "All password fields are required")
		return
	}
	if input.NewPassword != input.ConfirmPassword {
		utils.RespondWithError(c, http.StatusBadRequest, "New passwords do not match")
		return
	}

	var admin models.Admin
	if err := config.DB.First(&admin, adminID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Admin not found")
		return
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, admin.PasswordHash) {
		utils.RespondWithError(c, http.StatusBadRequest, "Incorrect current password")
		return
	}

	hash, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}
	if err := config.DB.Model(&admin).Update("password_hash", hash).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
