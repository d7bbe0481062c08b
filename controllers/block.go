package controllers

import (
	"net/http"
	"strconv"

	"pavilion-backend/services"
	"pavilion-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateBlockInput struct {
	LocationID uint   `json:"location_id" binding:"required"`
	RoomID     *uint  `json:"room_id"`
	BlockType  string `json:"block_type" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	Reason     string `json:"reason"`
}

// ListBlocks returns blocks, optionally filtered by location.
func ListBlocks(c *gin.Context) {
	var locationID uint
	if raw := c.Query("location_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid location_id format")
			return
		}
		locationID = uint(id)
	}

	blocks, err := blockService.List(locationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]map[string]interface{}, 0, len(blocks))
	for i := range blocks {
		out = append(out, blocks[i].ToJSON())
	}
	c.JSON(http.StatusOK, out)
}

// CreateBlock records a hard or soft block on a location or room.
func CreateBlock(c *gin.Context) {
	var input CreateBlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required field: location_id, block_type, start_date, end_date, start_time, end_time")
		return
	}

	block, err := blockService.Create(services.CreateBlockRequest{
		LocationID: input.LocationID,
		RoomID:     input.RoomID,
		BlockType:  input.BlockType,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Reason:     input.Reason,
	}, utils.AdminID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, block.ToJSON())
}

// DeleteBlock removes a block.
func DeleteBlock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid block id")
		return
	}

	if err := blockService.Delete(uint(id), utils.AdminID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Block deleted successfully"})
}
