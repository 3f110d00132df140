package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role constants. A profile without a role record is treated as an employee.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// Profile represents an employee account.
type Profile struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string     `gorm:"not null;size:255" json:"-"`
	FirstName    *string    `gorm:"size:100" json:"first_name"`
	LastName     *string    `gorm:"size:100" json:"last_name"`
	AvatarURL    *string    `gorm:"type:text" json:"avatar_url"`
	Role         string     `gorm:"size:50;not null;default:employee" json:"role"`
	TeamID       *uuid.UUID `gorm:"type:uuid;index" json:"team_id"`
	Team         *Team      `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName specifies the table name for Profile model.
func (Profile) TableName() string {
	return "profiles"
}

// BeforeCreate assigns a UUID primary key.
func (p *Profile) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DisplayName returns "First Last" with missing parts dropped. Never null:
// a profile with no name parts yields the empty string.
func (p *Profile) DisplayName() string {
	var parts []string
	if p.FirstName != nil && *p.FirstName != "" {
		parts = append(parts, *p.FirstName)
	}
	if p.LastName != nil && *p.LastName != "" {
		parts = append(parts, *p.LastName)
	}
	return strings.Join(parts, " ")
}

// Team represents an optional grouping of employees.
type Team struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null;size:255" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Team model.
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate assigns a UUID primary key.
func (t *Team) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
