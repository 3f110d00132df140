package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance status constants.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// Attendance represents one employee's check-in record for one calendar day.
type Attendance struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_user_date" json:"user_id"`
	Owner    *Profile   `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	Date     time.Time  `gorm:"type:date;not null;uniqueIndex:idx_attendance_user_date" json:"date"`
	CheckIn  time.Time  `gorm:"not null" json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
	Status   string     `gorm:"size:50;not null;index" json:"status"`
	Notes    *string    `gorm:"type:text" json:"notes"`
}

// TableName specifies the table name for Attendance model.
func (Attendance) TableName() string {
	return "attendances"
}

// BeforeCreate assigns a UUID primary key.
func (a *Attendance) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Holiday represents a company or public holiday shown on the calendar.
type Holiday struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"not null;size:255" json:"name"`
	Date time.Time `gorm:"type:date;not null;index" json:"date"`
	Type string    `gorm:"size:50" json:"type"`
}

// TableName specifies the table name for Holiday model.
func (Holiday) TableName() string {
	return "holidays"
}

// BeforeCreate assigns a UUID primary key.
func (h *Holiday) BeforeCreate(_ *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
