package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// setupTestCache starts a miniredis instance and wraps it in a RedisCache.
func setupTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisCacheFromClient(client)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestGet_MissingKey(t *testing.T) {
	c, _ := setupTestCache(t)

	val, err := c.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if val != "" {
		t.Errorf("Expected empty string for a missing key, got %q", val)
	}
}

func TestSetAndGet(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, KeyPendingLeave, `[{"id":"x"}]`, time.Minute); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	val, err := c.Get(ctx, KeyPendingLeave)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if val != `[{"id":"x"}]` {
		t.Errorf("Expected stored value back, got %q", val)
	}
}

func TestSet_Expires(t *testing.T) {
	c, mr := setupTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, KeyDashboard, "{}", time.Minute); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	val, err := c.Get(ctx, KeyDashboard)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if val != "" {
		t.Errorf("Expected key expired, got %q", val)
	}
}

func TestDel(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	c.Set(ctx, KeyPendingLeave, "a", time.Minute)
	c.Set(ctx, KeyOwnLeave("u1"), "b", time.Minute)

	if err := c.Del(ctx, KeyPendingLeave, KeyOwnLeave("u1")); err != nil {
		t.Fatalf("Del() failed: %v", err)
	}

	if val, _ := c.Get(ctx, KeyPendingLeave); val != "" {
		t.Error("Expected pending key deleted")
	}
	if val, _ := c.Get(ctx, KeyOwnLeave("u1")); val != "" {
		t.Error("Expected own key deleted")
	}
}

func TestDelPattern(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	c.Set(ctx, KeyAttendanceReport(2024, 3), "a", time.Minute)
	c.Set(ctx, KeyLeaveReport(2024, 3), "b", time.Minute)
	c.Set(ctx, KeyDashboard, "c", time.Minute)

	if err := c.DelPattern(ctx, PatternReports); err != nil {
		t.Fatalf("DelPattern() failed: %v", err)
	}

	if val, _ := c.Get(ctx, KeyAttendanceReport(2024, 3)); val != "" {
		t.Error("Expected attendance report key deleted")
	}
	if val, _ := c.Get(ctx, KeyLeaveReport(2024, 3)); val != "" {
		t.Error("Expected leave report key deleted")
	}
	if val, _ := c.Get(ctx, KeyDashboard); val == "" {
		t.Error("Expected dashboard key untouched")
	}
}

func TestHealth(t *testing.T) {
	c, mr := setupTestCache(t)

	if err := c.Health(context.Background()); err != nil {
		t.Errorf("Health() failed: %v", err)
	}

	mr.Close()
	if err := c.Health(context.Background()); err == nil {
		t.Error("Expected health failure after the server is gone")
	}
}
