package models

import "time"

// User is a staff account. Password is a bcrypt hash. ResetToken/TokenExpiry
// back the forgot-password flow and are cleared whenever the password changes.
type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"uniqueIndex;size:255;not null" json:"username"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`
	Email        *string `gorm:"uniqueIndex;size:255" json:"email,omitempty"`

	ResetToken  *string    `gorm:"index;size:64" json:"-"`
	TokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }
