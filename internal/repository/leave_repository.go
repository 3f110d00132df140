package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/logiteam/logiteam-api/internal/errs"
	"github.com/logiteam/logiteam-api/internal/models"
)

// LeaveRepository handles leave request database operations.
type LeaveRepository struct {
	db *DB
}

// NewLeaveRepository creates a new leave repository.
func NewLeaveRepository(db *DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

// Create persists a new leave request.
func (r *LeaveRepository) Create(req *models.LeaveRequest) error {
	if err := r.db.Create(req).Error; err != nil {
		return errs.Store("create leave request", err)
	}
	return nil
}

// GetByID retrieves a leave request by id.
func (r *LeaveRepository) GetByID(id uuid.UUID) (*models.LeaveRequest, error) {
	var req models.LeaveRequest
	err := r.db.Preload("Owner").First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &errs.NotFoundError{Kind: "leave request", ID: id.String()}
		}
		return nil, errs.Store("get leave request", err)
	}
	return &req, nil
}

// ListByOwner retrieves an employee's leave requests, most recent first.
// Ties on requested_at break by id descending for a deterministic order.
func (r *LeaveRepository) ListByOwner(ownerID uuid.UUID) ([]models.LeaveRequest, error) {
	var reqs []models.LeaveRequest
	err := r.db.Where("user_id = ?", ownerID).
		Order("requested_at DESC").
		Order("id DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, errs.Store("list leave requests", err)
	}
	return reqs, nil
}

// ListPending retrieves all pending leave requests across owners, oldest
// first, with the owner profile attached.
func (r *LeaveRepository) ListPending() ([]models.LeaveRequest, error) {
	var reqs []models.LeaveRequest
	err := r.db.Where("status = ?", models.StatusPending).
		Preload("Owner").
		Order("requested_at ASC").
		Order("id ASC").
		Find(&reqs).Error
	if err != nil {
		return nil, errs.Store("list pending leave requests", err)
	}
	return reqs, nil
}

// UpdateStatusIfPending applies updates to the record only while its status
// is still pending. Returns the number of rows changed; zero means the
// record is gone or already left the pending state.
func (r *LeaveRepository) UpdateStatusIfPending(id uuid.UUID, updates map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.LeaveRequest{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return 0, errs.Store("update leave request status", res.Error)
	}
	return res.RowsAffected, nil
}

// ListOverlapping retrieves leave requests whose inclusive date range
// touches [from, to]. Requests without an end date count as single-day.
func (r *LeaveRepository) ListOverlapping(from, to time.Time) ([]models.LeaveRequest, error) {
	var reqs []models.LeaveRequest
	err := r.db.Where("start_date <= ? AND COALESCE(end_date, start_date) >= ?", to, from).
		Preload("Owner").
		Order("start_date ASC").
		Find(&reqs).Error
	if err != nil {
		return nil, errs.Store("list overlapping leave requests", err)
	}
	return reqs, nil
}

// ListOverlappingByStatus is ListOverlapping restricted to one status.
func (r *LeaveRepository) ListOverlappingByStatus(from, to time.Time, status string) ([]models.LeaveRequest, error) {
	var reqs []models.LeaveRequest
	err := r.db.Where("start_date <= ? AND COALESCE(end_date, start_date) >= ?", to, from).
		Where("status = ?", status).
		Preload("Owner").
		Order("start_date ASC").
		Find(&reqs).Error
	if err != nil {
		return nil, errs.Store("list overlapping leave requests", err)
	}
	return reqs, nil
}
