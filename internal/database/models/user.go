package models

import (
	"time"
)

// User is a submitter or reviewer identity
type User struct {
	BaseModel
	Email                   string     `json:"email" gorm:"not null;size:255;uniqueIndex" validate:"required,email,max=255"`
	FullName                string     `json:"full_name" gorm:"size:200" validate:"max=200"`
	Role                    UserRole   `json:"role" gorm:"type:varchar(32);not null;default:'submitter'"`
	OrganizationAffiliation string     `json:"organization_affiliation" gorm:"size:200"`
	PasswordHash            *string    `json:"-" gorm:"size:255"`
	IsActive                bool       `json:"is_active" gorm:"not null;default:true"`
	LastLogin               *time.Time `json:"last_login,omitempty"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
