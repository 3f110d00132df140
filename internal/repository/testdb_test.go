package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/logiteam/logiteam-api/internal/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	// Enable foreign key constraints (SQLite default is off)
	db.Exec("PRAGMA foreign_keys = ON")

	err = db.AutoMigrate(
		&models.Team{},
		&models.Profile{},
		&models.LeaveRequest{},
		&models.OvertimeEntry{},
		&models.Attendance{},
		&models.Holiday{},
	)
	if err != nil {
		t.Fatalf("Failed to auto-migrate tables: %v", err)
	}

	return &DB{db}
}

// createTestProfile creates a test profile in the database.
func createTestProfile(t *testing.T, db *DB, firstName, lastName string) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		Email:        fmt.Sprintf("%s.%d@example.com", firstName, time.Now().UnixNano()),
		PasswordHash: "x",
		Role:         models.RoleEmployee,
	}
	if firstName != "" {
		profile.FirstName = &firstName
	}
	if lastName != "" {
		profile.LastName = &lastName
	}

	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}
	return profile
}

// date builds a normalized calendar date.
func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// createTestLeave creates a pending leave request owned by ownerID.
func createTestLeave(t *testing.T, repo *LeaveRepository, ownerID uuid.UUID, start time.Time, end *time.Time, requestedAt time.Time) *models.LeaveRequest {
	t.Helper()

	req := &models.LeaveRequest{
		UserID:       ownerID,
		Type:         "vacation",
		StartDate:    start,
		EndDate:      end,
		DurationType: models.DurationFullDay,
		Status:       models.StatusPending,
		RequestedAt:  requestedAt,
	}
	if err := repo.Create(req); err != nil {
		t.Fatalf("Failed to create test leave request: %v", err)
	}
	return req
}
