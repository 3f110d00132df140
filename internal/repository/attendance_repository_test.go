package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/logiteam/logiteam-api/internal/errs"
	"github.com/logiteam/logiteam-api/internal/models"
)

// createTestAttendance creates an attendance row for one user and day.
func createTestAttendance(t *testing.T, repo *AttendanceRepository, userID uuid.UUID, day time.Time, status string) *models.Attendance {
	t.Helper()

	att := &models.Attendance{
		UserID:  userID,
		Date:    day,
		CheckIn: day.Add(9 * time.Hour),
		Status:  status,
	}
	if err := repo.Create(att); err != nil {
		t.Fatalf("Failed to create test attendance: %v", err)
	}
	return att
}

func TestAttendanceRepository_GetByUserAndDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	owner := createTestProfile(t, db, "Ana", "Silva")

	created := createTestAttendance(t, repo, owner.ID, date(2024, 3, 4), models.AttendancePresent)

	got, err := repo.GetByUserAndDate(owner.ID, date(2024, 3, 4))
	if err != nil {
		t.Fatalf("GetByUserAndDate() failed: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Error("Expected the created attendance row")
	}

	// No row for another day: nil, not an error
	got, err = repo.GetByUserAndDate(owner.ID, date(2024, 3, 5))
	if err != nil {
		t.Fatalf("GetByUserAndDate() failed: %v", err)
	}
	if got != nil {
		t.Error("Expected nil for a day without a check-in")
	}
}

func TestAttendanceRepository_DuplicateDayRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	owner := createTestProfile(t, db, "Ana", "Silva")

	createTestAttendance(t, repo, owner.ID, date(2024, 3, 4), models.AttendancePresent)

	err := repo.Create(&models.Attendance{
		UserID:  owner.ID,
		Date:    date(2024, 3, 4),
		CheckIn: time.Now().UTC(),
		Status:  models.AttendancePresent,
	})
	if !errs.IsStore(err) {
		t.Errorf("Expected a store error on a second check-in for the same day, got %v", err)
	}
}

func TestAttendanceRepository_SetCheckOut(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	owner := createTestProfile(t, db, "Ana", "Silva")

	att := createTestAttendance(t, repo, owner.ID, date(2024, 3, 4), models.AttendancePresent)

	out := date(2024, 3, 4).Add(18 * time.Hour)
	if err := repo.SetCheckOut(att.ID, out); err != nil {
		t.Fatalf("SetCheckOut() failed: %v", err)
	}

	got, err := repo.GetByUserAndDate(owner.ID, date(2024, 3, 4))
	if err != nil {
		t.Fatalf("GetByUserAndDate() failed: %v", err)
	}
	if got.CheckOut == nil || !got.CheckOut.Equal(out) {
		t.Error("Expected check-out to be stamped")
	}
}

func TestAttendanceRepository_SetCheckOut_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)

	err := repo.SetCheckOut(uuid.New(), time.Now().UTC())
	if !errs.IsNotFound(err) {
		t.Errorf("Expected NotFoundError, got %v", err)
	}
}

func TestAttendanceRepository_HistoryByUser_Order(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	owner := createTestProfile(t, db, "Ana", "Silva")

	older := createTestAttendance(t, repo, owner.ID, date(2024, 3, 4), models.AttendancePresent)
	newer := createTestAttendance(t, repo, owner.ID, date(2024, 3, 5), models.AttendanceLate)

	got, err := repo.HistoryByUser(owner.ID)
	if err != nil {
		t.Fatalf("HistoryByUser() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(got))
	}
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Error("Expected history most recent day first")
	}
}

func TestAttendanceRepository_ListByDateRange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	ana := createTestProfile(t, db, "Ana", "Silva")
	bruno := createTestProfile(t, db, "Bruno", "Costa")

	createTestAttendance(t, repo, ana.ID, date(2024, 3, 4), models.AttendancePresent)
	createTestAttendance(t, repo, bruno.ID, date(2024, 3, 4), models.AttendanceLate)
	createTestAttendance(t, repo, ana.ID, date(2024, 4, 1), models.AttendancePresent)

	got, err := repo.ListByDateRange(date(2024, 3, 1), date(2024, 3, 31))
	if err != nil {
		t.Fatalf("ListByDateRange() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 rows in March, got %d", len(got))
	}
	if got[0].Owner == nil {
		t.Error("Expected owner to be preloaded")
	}
}

func TestAttendanceRepository_CountByDateAndStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	ana := createTestProfile(t, db, "Ana", "Silva")
	bruno := createTestProfile(t, db, "Bruno", "Costa")
	carla := createTestProfile(t, db, "Carla", "Dias")

	createTestAttendance(t, repo, ana.ID, date(2024, 3, 4), models.AttendancePresent)
	createTestAttendance(t, repo, bruno.ID, date(2024, 3, 4), models.AttendancePresent)
	createTestAttendance(t, repo, carla.ID, date(2024, 3, 4), models.AttendanceLate)

	count, err := repo.CountByDateAndStatus(date(2024, 3, 4), models.AttendancePresent)
	if err != nil {
		t.Fatalf("CountByDateAndStatus() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 present, got %d", count)
	}
}
