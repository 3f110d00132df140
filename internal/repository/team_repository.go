package repository

import (
	"github.com/logiteam/logiteam-api/internal/errs"
	"github.com/logiteam/logiteam-api/internal/models"
)

// TeamRepository handles team database operations.
type TeamRepository struct {
	db *DB
}

// NewTeamRepository creates a new team repository.
func NewTeamRepository(db *DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create persists a new team. The name column carries a unique index; a
// duplicate name surfaces as a store error.
func (r *TeamRepository) Create(team *models.Team) error {
	if err := r.db.Create(team).Error; err != nil {
		return errs.Store("create team", err)
	}
	return nil
}

// List retrieves all teams ordered by name.
func (r *TeamRepository) List() ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.Order("name ASC").Find(&teams).Error; err != nil {
		return nil, errs.Store("list teams", err)
	}
	return teams, nil
}
