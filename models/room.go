package models

import (
	"time"

	"gorm.io/datatypes"
)

type Room struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RoomNumber string `gorm:"column:room_number;uniqueIndex;size:50" json:"room_number"`
	RoomTypeID uint   `gorm:"column:room_type_id;index" json:"room_type_id"`
	Floor      *int   `json:"floor,omitempty"`

	// is_active=false hides the room from the catalog and availability
	// checks without touching booking history.
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	ImageURLs   datatypes.JSON `gorm:"column:image_urls" json:"image_urls,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RoomType  RoomType  `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
	Amenities []Amenity `gorm:"many2many:room_amenities;" json:"amenities"`
}
