package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an identity record. It is created and refreshed only from validated
// identity provider sessions.
type User struct {
	ID              string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Email           *string   `gorm:"size:255;uniqueIndex" json:"email"`
	FirstName       *string   `gorm:"size:255" json:"firstName"`
	LastName        *string   `gorm:"size:255" json:"lastName"`
	ProfileImageURL *string   `gorm:"size:1024" json:"profileImageUrl"`
	Role            Role      `gorm:"size:20;not null;default:'citizen'" json:"role"`
	Verified        bool      `gorm:"not null;default:false" json:"verified"`
	Bio             *string   `gorm:"type:text" json:"bio"`
	Location        *string   `gorm:"size:255" json:"location"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an id and the default role.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = newID()
	}
	if u.Role == "" {
		u.Role = RoleCitizen
	}
	return nil
}

func newID() string {
	return uuid.New().String()
}
