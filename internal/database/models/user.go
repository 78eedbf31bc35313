package models

import (
	"github.com/google/uuid"
)

// User represents an account that can record entries for an organization.
// OrganizationID is nullable: an owner user is created first, then the
// organization referencing it, and only then is the user patched to point
// back at the organization (two-phase creation).
type User struct {
	BaseModel
	Username       string     `json:"username" gorm:"uniqueIndex;not null;size:100" validate:"required,min=3,max=100"`
	Email          string     `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	PasswordHash   string     `json:"-" gorm:"not null;size:255"`
	Role           UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'user'" validate:"required"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	IsActive       bool       `json:"is_active" gorm:"not null;default:true"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
