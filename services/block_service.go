package services

import (
	"errors"
	"fmt"

	"pavilion-backend/models"
	"pavilion-backend/utils"

	"gorm.io/gorm"
)

// BlockService manages hard and soft blocks on locations and rooms.
type BlockService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewBlockService(db *gorm.DB, audit *AuditService) *BlockService {
	return &BlockService{db: db, audit: audit}
}

// CreateBlockRequest describes a new block. RoomID nil blocks the whole
// location.
type CreateBlockRequest struct {
	LocationID uint
	RoomID     *uint
	BlockType  string
	StartDate  string
	EndDate    string
	StartTime  string
	EndTime    string
	Reason     string
}

// List returns blocks, optionally for one location, newest range first.
func (s *BlockService) List(locationID uint) ([]models.Block, error) {
	q := s.db.Preload("Location").Preload("Room").Preload("Creator")
	if locationID != 0 {
		q = q.Where("location_id = ?", locationID)
	}
	var blocks []models.Block
	if err := q.Order("start_date DESC, start_time DESC").Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// Create validates and stores a block, auditing in the same transaction.
func (s *BlockService) Create(req CreateBlockRequest, adminID uint) (*models.Block, error) {
	if req.BlockType != models.BlockHard && req.BlockType != models.BlockSoft {
		return nil, fmt.Errorf("%w: block_type must be %q or %q", ErrValidation, models.BlockHard, models.BlockSoft)
	}
	if _, err := utils.ParseDate(req.StartDate); err != nil {
		return nil, fmt.Errorf("%w: invalid start_date, use YYYY-MM-DD", ErrValidation)
	}
	if _, err := utils.ParseDate(req.EndDate); err != nil {
		return nil, fmt.Errorf("%w: invalid end_date, use YYYY-MM-DD", ErrValidation)
	}
	if req.EndDate < req.StartDate {
		return nil, fmt.Errorf("%w: end_date must not precede start_date", ErrValidation)
	}
	if _, err := utils.MinuteOfDay(req.StartTime); err != nil {
		return nil, fmt.Errorf("%w: invalid start_time, use HH:MM", ErrValidation)
	}
	if _, err := utils.MinuteOfDay(req.EndTime); err != nil {
		return nil, fmt.Errorf("%w: invalid end_time, use HH:MM", ErrValidation)
	}
	if req.EndTime <= req.StartTime {
		return nil, fmt.Errorf("%w: end_time must be after start_time", ErrValidation)
	}

	var location models.Location
	if err := s.db.First(&location, req.LocationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: location %d", ErrNotFound, req.LocationID)
		}
		return nil, err
	}
	if req.RoomID != nil {
		var room models.Room
		if err := s.db.Where("id = ? AND location_id = ?", *req.RoomID, location.ID).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: room %d in location %d", ErrNotFound, *req.RoomID, location.ID)
			}
			return nil, err
		}
	}

	block := models.Block{
		LocationID: location.ID,
		RoomID:     req.RoomID,
		BlockType:  req.BlockType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Reason:     req.Reason,
	}
	if adminID != 0 {
		block.CreatedBy = &adminID
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&block).Error; err != nil {
			return err
		}
		return s.audit.Log(tx, adminID, "create_block", "block", block.ID, map[string]interface{}{
			"block_type": block.BlockType,
			"room_id":    block.RoomID,
			"start_date": block.StartDate,
			"end_date":   block.EndDate,
			"start_time": block.StartTime,
			"end_time":   block.EndTime,
		})
	})
	if err != nil {
		return nil, err
	}
	if err := s.db.Preload("Location").Preload("Room").Preload("Creator").
		First(&block, block.ID).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

// Delete removes a block. Existing reservations inside its window are
// left untouched.
func (s *BlockService) Delete(id, adminID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var block models.Block
		if err := tx.First(&block, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: block %d", ErrNotFound, id)
			}
			return err
		}
		if err := tx.Delete(&block).Error; err != nil {
			return err
		}
		return s.audit.Log(tx, adminID, "delete_block", "block", id, map[string]interface{}{
			"block_type": block.BlockType,
		})
	})
}
