package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/logiteam/logiteam-api/internal/errs"
	"github.com/logiteam/logiteam-api/internal/models"
)

// AttendanceRepository handles attendance database operations.
type AttendanceRepository struct {
	db *DB
}

// NewAttendanceRepository creates a new attendance repository.
func NewAttendanceRepository(db *DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create persists a new attendance row. The (user_id, date) pair is unique;
// a second check-in for the same day fails on that constraint.
func (r *AttendanceRepository) Create(att *models.Attendance) error {
	if err := r.db.Create(att).Error; err != nil {
		return errs.Store("create attendance", err)
	}
	return nil
}

// GetByUserAndDate retrieves the attendance row for one user on one day.
// Returns nil without error when the user has not checked in.
func (r *AttendanceRepository) GetByUserAndDate(userID uuid.UUID, date time.Time) (*models.Attendance, error) {
	var att models.Attendance
	err := r.db.Where("user_id = ? AND date = ?", userID, models.DateOf(date)).First(&att).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.Store("get attendance", err)
	}
	return &att, nil
}

// SetCheckOut stamps the check-out time on an attendance row.
func (r *AttendanceRepository) SetCheckOut(id uuid.UUID, checkOut time.Time) error {
	res := r.db.Model(&models.Attendance{}).
		Where("id = ?", id).
		Update("check_out", checkOut)
	if res.Error != nil {
		return errs.Store("set check-out", res.Error)
	}
	if res.RowsAffected == 0 {
		return &errs.NotFoundError{Kind: "attendance", ID: id.String()}
	}
	return nil
}

// HistoryByUser retrieves a user's attendance rows, most recent first.
func (r *AttendanceRepository) HistoryByUser(userID uuid.UUID) ([]models.Attendance, error) {
	var rows []models.Attendance
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Order("check_in DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errs.Store("list attendance history", err)
	}
	return rows, nil
}

// ListByDateRange retrieves all attendance rows with dates in [from, to],
// with the owner profile attached.
func (r *AttendanceRepository) ListByDateRange(from, to time.Time) ([]models.Attendance, error) {
	var rows []models.Attendance
	err := r.db.Where("date BETWEEN ? AND ?", models.DateOf(from), models.DateOf(to)).
		Preload("Owner").
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errs.Store("list attendance by date range", err)
	}
	return rows, nil
}

// CountByDateAndStatus counts attendance rows for one day with one status.
func (r *AttendanceRepository) CountByDateAndStatus(date time.Time, status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Attendance{}).
		Where("date = ? AND status = ?", models.DateOf(date), status).
		Count(&count).Error
	if err != nil {
		return 0, errs.Store("count attendance", err)
	}
	return count, nil
}
