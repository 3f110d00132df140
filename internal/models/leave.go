package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Request status constants. Both request kinds start at pending; the only
// non-terminal transition besides approve/reject is pending -> cancelled on
// leave requests.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

// Leave duration type constants.
const (
	DurationFullDay          = "full_day"
	DurationHalfDayMorning   = "half_day_morning"
	DurationHalfDayAfternoon = "half_day_afternoon"
	DurationHourly           = "hourly"
)

// LeaveRequest represents a leave request owned by an employee.
type LeaveRequest struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Owner        *Profile   `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	Type         string     `gorm:"size:100;not null" json:"type"`
	StartDate    time.Time  `gorm:"type:date;not null;index" json:"start_date"`
	EndDate      *time.Time `gorm:"type:date;index" json:"end_date"`
	DurationType string     `gorm:"size:50;not null;default:full_day" json:"duration_type"`
	StartTime    *string    `gorm:"size:5" json:"start_time"` // "15:04", required when hourly
	EndTime      *string    `gorm:"size:5" json:"end_time"`
	Reason       *string    `gorm:"type:text" json:"reason"`
	Status       string     `gorm:"size:50;not null;default:pending;index" json:"status"`
	RequestedAt  time.Time  `gorm:"not null" json:"requested_at"`
	ApprovedBy   *uuid.UUID `gorm:"type:uuid" json:"approved_by"`
	ApprovedAt   *time.Time `json:"approved_at"`
}

// TableName specifies the table name for LeaveRequest model.
func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// BeforeCreate assigns a UUID primary key.
func (l *LeaveRequest) BeforeCreate(_ *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// DurationDays returns the inclusive day count of the leave range, or 1 when
// no end date is set.
func (l *LeaveRequest) DurationDays() int {
	if l.EndDate == nil {
		return 1
	}
	start := DateOf(l.StartDate)
	end := DateOf(*l.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// Overlaps reports whether the leave range touches [from, to] inclusive. A
// record overlaps when its start or end falls inside the window, or the
// window falls entirely inside the record's range.
func (l *LeaveRequest) Overlaps(from, to time.Time) bool {
	start := DateOf(l.StartDate)
	end := start
	if l.EndDate != nil {
		end = DateOf(*l.EndDate)
	}
	return !end.Before(DateOf(from)) && !start.After(DateOf(to))
}

// DateOf truncates a timestamp to a calendar date in UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
