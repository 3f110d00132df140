package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/logiteam/logiteam-api/internal/errs"
	"github.com/logiteam/logiteam-api/internal/models"
)

// ProfileRepository handles profile database operations.
type ProfileRepository struct {
	db *DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create persists a new profile.
func (r *ProfileRepository) Create(profile *models.Profile) error {
	if err := r.db.Create(profile).Error; err != nil {
		return errs.Store("create profile", err)
	}
	return nil
}

// GetByID retrieves a profile by id with the team attached.
func (r *ProfileRepository) GetByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("Team").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &errs.NotFoundError{Kind: "profile", ID: id.String()}
		}
		return nil, errs.Store("get profile", err)
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by email.
func (r *ProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &errs.NotFoundError{Kind: "profile", ID: email}
		}
		return nil, errs.Store("get profile by email", err)
	}
	return &profile, nil
}

// List retrieves all profiles with teams attached, ordered by first name.
func (r *ProfileRepository) List() ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Preload("Team").
		Order("first_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, errs.Store("list profiles", err)
	}
	return profiles, nil
}

// Update applies field updates to a profile.
func (r *ProfileRepository) Update(id uuid.UUID, updates map[string]interface{}) (*models.Profile, error) {
	res := r.db.Model(&models.Profile{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, errs.Store("update profile", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, &errs.NotFoundError{Kind: "profile", ID: id.String()}
	}
	return r.GetByID(id)
}

// Count returns the total number of profiles.
func (r *ProfileRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Profile{}).Count(&count).Error; err != nil {
		return 0, errs.Store("count profiles", err)
	}
	return count, nil
}
