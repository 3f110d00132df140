package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/logiteam/logiteam-api/internal/cache"
	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// setupCachedService wires the lifecycle service to a miniredis-backed cache.
func setupCachedService(t *testing.T) (*Service, *mockLeaveRepository, *cache.RedisCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := cache.NewRedisCacheFromClient(client)
	t.Cleanup(func() { c.Close() })

	leaveRepo := newMockLeaveRepository()
	overtimeRepo := newMockOvertimeRepository()
	log := logger.New("error", "json", "stdout")
	svc := NewServiceWithInterfaces(leaveRepo, overtimeRepo, c, time.Minute, log, func() time.Time { return testTime })
	return svc, leaveRepo, c
}

func TestListPendingLeave_ServedFromCache(t *testing.T) {
	svc, leaveRepo, _ := setupCachedService(t)
	ctx := context.Background()

	leaveRepo.Create(&models.LeaveRequest{UserID: uuid.New(), Type: "vacation", Status: models.StatusPending})

	first, err := svc.ListPendingLeave(ctx, managerActor())
	if err != nil {
		t.Fatalf("ListPendingLeave() failed: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("Expected 1 pending request, got %d", len(first))
	}

	// A second read comes from the cache and does not see the new record
	leaveRepo.Create(&models.LeaveRequest{UserID: uuid.New(), Type: "sick", Status: models.StatusPending})

	second, err := svc.ListPendingLeave(ctx, managerActor())
	if err != nil {
		t.Fatalf("ListPendingLeave() failed: %v", err)
	}
	if len(second) != 1 {
		t.Errorf("Expected the cached view with 1 request, got %d", len(second))
	}
}

func TestSubmitLeave_InvalidatesPendingView(t *testing.T) {
	svc, leaveRepo, c := setupCachedService(t)
	ctx := context.Background()

	leaveRepo.Create(&models.LeaveRequest{UserID: uuid.New(), Type: "vacation", Status: models.StatusPending})
	if _, err := svc.ListPendingLeave(ctx, managerActor()); err != nil {
		t.Fatalf("ListPendingLeave() failed: %v", err)
	}

	if val, _ := c.Get(ctx, cache.KeyPendingLeave); val == "" {
		t.Fatal("Expected the pending view to be cached")
	}

	if _, err := svc.SubmitLeave(ctx, uuid.New(), LeaveInput{
		Type:      "sick",
		StartDate: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("SubmitLeave() failed: %v", err)
	}

	if val, _ := c.Get(ctx, cache.KeyPendingLeave); val != "" {
		t.Error("Expected the pending view invalidated after submission")
	}

	got, err := svc.ListPendingLeave(ctx, managerActor())
	if err != nil {
		t.Fatalf("ListPendingLeave() failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Expected the rebuilt view with 2 requests, got %d", len(got))
	}
}

func TestSetLeaveStatus_InvalidatesReportViews(t *testing.T) {
	svc, leaveRepo, c := setupCachedService(t)
	ctx := context.Background()

	req := &models.LeaveRequest{UserID: uuid.New(), Type: "vacation", Status: models.StatusPending}
	leaveRepo.Create(req)

	c.Set(ctx, cache.KeyLeaveReport(2024, 3), "stale", time.Minute)

	if _, err := svc.SetLeaveStatus(ctx, req.ID, models.StatusApproved, managerActor()); err != nil {
		t.Fatalf("SetLeaveStatus() failed: %v", err)
	}

	if val, _ := c.Get(ctx, cache.KeyLeaveReport(2024, 3)); val != "" {
		t.Error("Expected report views invalidated after a transition")
	}
}
