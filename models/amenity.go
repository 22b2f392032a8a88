package models

type Amenity struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:100" json:"name"`
	Icon string `gorm:"size:100" json:"icon,omitempty"`
}
