package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OvertimeEntry represents overtime hours reported by an employee.
type OvertimeEntry struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Owner      *Profile   `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	Date       time.Time  `gorm:"type:date;not null;index" json:"date"`
	Hours      float64    `gorm:"not null" json:"hours"`
	Notes      *string    `gorm:"type:text" json:"notes"`
	Status     string     `gorm:"size:50;not null;default:pending;index" json:"status"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid" json:"approved_by"`
	ApprovedAt *time.Time `json:"approved_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName specifies the table name for OvertimeEntry model.
func (OvertimeEntry) TableName() string {
	return "overtime"
}

// BeforeCreate assigns a UUID primary key.
func (o *OvertimeEntry) BeforeCreate(_ *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
