package models

import "time"

// RoomType is a pricing/occupancy tier shared by several physical rooms.
// BasePrice covers occupancy up to MaxOccupancy; ExtraAdultPrice and
// ChildPrice are per-guest nightly surcharges and may be unset.
type RoomType struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	Name            string   `gorm:"uniqueIndex;size:100" json:"name"`
	Description     string   `gorm:"type:text" json:"description,omitempty"`
	MaxOccupancy    int      `gorm:"default:2" json:"max_occupancy"`
	BasePrice       float64  `json:"base_price"`
	ExtraAdultPrice *float64 `json:"extra_adult_price,omitempty"`
	ChildPrice      *float64 `json:"child_price,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
