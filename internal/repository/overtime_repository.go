package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/logiteam/logiteam-api/internal/errs"
	"github.com/logiteam/logiteam-api/internal/models"
)

// OvertimeRepository handles overtime entry database operations.
type OvertimeRepository struct {
	db *DB
}

// NewOvertimeRepository creates a new overtime repository.
func NewOvertimeRepository(db *DB) *OvertimeRepository {
	return &OvertimeRepository{db: db}
}

// Create persists a new overtime entry.
func (r *OvertimeRepository) Create(entry *models.OvertimeEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return errs.Store("create overtime entry", err)
	}
	return nil
}

// GetByID retrieves an overtime entry by id.
func (r *OvertimeRepository) GetByID(id uuid.UUID) (*models.OvertimeEntry, error) {
	var entry models.OvertimeEntry
	err := r.db.Preload("Owner").First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &errs.NotFoundError{Kind: "overtime entry", ID: id.String()}
		}
		return nil, errs.Store("get overtime entry", err)
	}
	return &entry, nil
}

// ListByOwner retrieves an employee's overtime entries, most recent date
// first, id descending as tie-break.
func (r *OvertimeRepository) ListByOwner(ownerID uuid.UUID) ([]models.OvertimeEntry, error) {
	var entries []models.OvertimeEntry
	err := r.db.Where("user_id = ?", ownerID).
		Order("date DESC").
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, errs.Store("list overtime entries", err)
	}
	return entries, nil
}

// ListPending retrieves all pending overtime entries across owners, oldest
// date first, with the owner profile attached.
func (r *OvertimeRepository) ListPending() ([]models.OvertimeEntry, error) {
	var entries []models.OvertimeEntry
	err := r.db.Where("status = ?", models.StatusPending).
		Preload("Owner").
		Order("date ASC").
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, errs.Store("list pending overtime entries", err)
	}
	return entries, nil
}

// UpdateStatusIfPending applies updates to the entry only while its status
// is still pending. Returns the number of rows changed.
func (r *OvertimeRepository) UpdateStatusIfPending(id uuid.UUID, updates map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.OvertimeEntry{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return 0, errs.Store("update overtime status", res.Error)
	}
	return res.RowsAffected, nil
}

// SumHoursInRange totals overtime hours with dates inside [from, to].
func (r *OvertimeRepository) SumHoursInRange(from, to time.Time) (float64, error) {
	var total *float64
	err := r.db.Model(&models.OvertimeEntry{}).
		Select("SUM(hours)").
		Where("date BETWEEN ? AND ?", from, to).
		Scan(&total).Error
	if err != nil {
		return 0, errs.Store("sum overtime hours", err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
