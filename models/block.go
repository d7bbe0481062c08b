package models

import "time"

const (
	BlockHard = "hard"
	BlockSoft = "soft"
)

// Block closes a (location, date range, time range) to reservations.
// RoomID nil means location-wide: every room is covered. A hard block
// admits no reservation at all; a soft block is skipped by automatic
// room assignment but a manager may override it explicitly, which is
// always audited.
type Block struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	LocationID uint   `gorm:"index;not null" json:"location_id"`
	RoomID     *uint  `gorm:"index" json:"room_id"`
	StartDate  string `gorm:"type:varchar(10);not null" json:"start_date"`
	EndDate    string `gorm:"type:varchar(10);not null" json:"end_date"`
	StartTime  string `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime    string `gorm:"type:varchar(5);not null" json:"end_time"`
	BlockType  string `gorm:"type:varchar(10);not null" json:"block_type"`
	Reason     string `gorm:"type:text" json:"reason"`
	CreatedBy  *uint  `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`

	Location Location `gorm:"foreignKey:LocationID" json:"-"`
	Room     *Room    `gorm:"foreignKey:RoomID" json:"-"`
	Creator  *Admin   `gorm:"foreignKey:CreatedBy" json:"-"`
}

// CoversWindow reports whether the block covers any part of the time
// window [startTime, endTime) on the given date. Date bounds are
// inclusive at both ends; time ranges that merely touch do not overlap,
// so a block ending 18:00 leaves a window starting 18:00 free.
func (b *Block) CoversWindow(date, startTime, endTime string) bool {
	if date < b.StartDate || date > b.EndDate {
		return false
	}
	return b.StartTime < endTime && b.EndTime > startTime
}

// AppliesToRoom reports whether the block constrains the given room.
// Location-wide blocks apply to every room.
func (b *Block) AppliesToRoom(roomID uint) bool {
	return b.RoomID == nil || *b.RoomID == roomID
}

// ToJSON inlines the location, room and creator names the way the admin
// block list consumes them. Associations must be preloaded.
func (b *Block) ToJSON() map[string]interface{} {
	out := map[string]interface{}{
		"id":              b.ID,
		"location_id":     b.LocationID,
		"room_id":         b.RoomID,
		"start_date":      b.StartDate,
		"end_date":        b.EndDate,
		"start_time":      b.StartTime,
		"end_time":        b.EndTime,
		"block_type":      b.BlockType,
		"reason":          b.Reason,
		"created_by":      b.CreatedBy,
		"created_at":      b.CreatedAt,
		"location_name":   nil,
		"room_name":       nil,
		"created_by_name": nil,
	}
	if b.Location.ID != 0 {
		out["location_name"] = b.Location.Name
	}
	if b.Room != nil && b.Room.ID != 0 {
		out["room_name"] = b.Room.Name
	}
	if b.Creator != nil && b.Creator.ID != 0 {
		out["created_by_name"] = b.Creator.FullName
	}
	return out
}
