package models

import "time"

const (
	RoleGuest = "guest"
	RoleAdmin = "admin"
)

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;size:150" json:"email"`
	HashedPassword string    `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	FullName       string    `gorm:"size:255" json:"full_name"`
	Phone          string    `gorm:"size:50" json:"phone,omitempty"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	Role           string    `gorm:"size:20;default:guest" json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
