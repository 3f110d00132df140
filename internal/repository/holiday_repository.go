package repository

import (
	"time"

	"github.com/logiteam/logiteam-api/internal/errs"
	"github.com/logiteam/logiteam-api/internal/models"
)

// HolidayRepository handles holiday database operations.
type HolidayRepository struct {
	db *DB
}

// NewHolidayRepository creates a new holiday repository.
func NewHolidayRepository(db *DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// CreateBatch persists holidays in one insert.
func (r *HolidayRepository) CreateBatch(holidays []models.Holiday) error {
	if len(holidays) == 0 {
		return nil
	}
	if err := r.db.Create(&holidays).Error; err != nil {
		return errs.Store("create holidays", err)
	}
	return nil
}

// ListByDateRange retrieves holidays with dates in [from, to].
func (r *HolidayRepository) ListByDateRange(from, to time.Time) ([]models.Holiday, error) {
	var holidays []models.Holiday
	err := r.db.Where("date BETWEEN ? AND ?", models.DateOf(from), models.DateOf(to)).
		Order("date ASC").
		Find(&holidays).Error
	if err != nil {
		return nil, errs.Store("list holidays", err)
	}
	return holidays, nil
}

// Count returns the total number of holiday rows.
func (r *HolidayRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Holiday{}).Count(&count).Error; err != nil {
		return 0, errs.Store("count holidays", err)
	}
	return count, nil
}
