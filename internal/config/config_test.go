package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

const minimalConfig = `
database:
  postgres:
    host: localhost
    database: logiteam
    user: logiteam
  redis:
    host: localhost
auth:
  jwt_secret: secret
`

func TestLoad_Defaults(t *testing.T) {
	path := writeTestConfig(t, minimalConfig)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Workday.Start != "09:00" {
		t.Errorf("Expected default workday start 09:00, got %q", cfg.Workday.Start)
	}
	if cfg.Workday.LateGraceMinutes != 10 {
		t.Errorf("Expected default grace of 10 minutes, got %d", cfg.Workday.LateGraceMinutes)
	}
	if cfg.Database.Redis.TTL() != 60*time.Second {
		t.Errorf("Expected default cache TTL 60s, got %v", cfg.Database.Redis.TTL())
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Error("Expected metrics enabled on /metrics by default")
	}
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	path := writeTestConfig(t, `
database:
  postgres:
    host: localhost
`)

	if _, err := Load(path); err == nil {
		t.Error("Expected validation failure for incomplete config")
	}
}

func TestLoad_InvalidWorkdayStart(t *testing.T) {
	path := writeTestConfig(t, minimalConfig+`
workday:
  start: "9 o'clock"
`)

	if _, err := Load(path); err == nil {
		t.Error("Expected validation failure for unparseable workday start")
	}
}

func TestLateCutoff(t *testing.T) {
	w := WorkdayConfig{Start: "09:00", LateGraceMinutes: 10}

	cutoff, err := w.LateCutoff()
	if err != nil {
		t.Fatalf("LateCutoff() failed: %v", err)
	}
	if cutoff.Hour() != 9 || cutoff.Minute() != 10 {
		t.Errorf("Expected cutoff 09:10, got %02d:%02d", cutoff.Hour(), cutoff.Minute())
	}
}

func TestRedisTTL_Configured(t *testing.T) {
	r := RedisConfig{CacheTTL: 300}
	if r.TTL() != 5*time.Minute {
		t.Errorf("Expected 5m TTL, got %v", r.TTL())
	}
}
