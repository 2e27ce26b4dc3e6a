package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "MISSION_STORE", "TOPIC_MAX_LEN", "CORS_ALLOWED_ORIGINS", "FRONTEND_ORIGIN", "GENERATE_RATE_WINDOW"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.AppEnv != "dev" {
		t.Fatalf("expected dev env, got %q", cfg.AppEnv)
	}
	if cfg.MissionStore != "memory" {
		t.Fatalf("expected memory store, got %q", cfg.MissionStore)
	}
	if cfg.TopicMaxLen != 100 {
		t.Fatalf("expected topic max len 100, got %d", cfg.TopicMaxLen)
	}
	if cfg.GenerateRateWindow != time.Minute {
		t.Fatalf("expected one minute rate window, got %s", cfg.GenerateRateWindow)
	}
	if len(cfg.CORSAllowedOrigins) < 2 {
		t.Fatalf("expected dev cors origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", " Production ")
	t.Setenv("MISSION_STORE", "Postgres")
	t.Setenv("TOPIC_MAX_LEN", "40")
	t.Setenv("GENERATE_RATE_LIMIT", "not-a-number")
	t.Setenv("API_REQUEST_TIMEOUT", "2s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,https://a.example,")

	cfg := Load()
	if cfg.AppEnv != "production" || !IsProduction(cfg.AppEnv) {
		t.Fatalf("expected production env, got %q", cfg.AppEnv)
	}
	if cfg.MissionStore != "postgres" {
		t.Fatalf("expected normalized store driver, got %q", cfg.MissionStore)
	}
	if cfg.TopicMaxLen != 40 {
		t.Fatalf("expected topic max len 40, got %d", cfg.TopicMaxLen)
	}
	if cfg.GenerateRateLimit != 30 {
		t.Fatalf("invalid int must fall back to default, got %d", cfg.GenerateRateLimit)
	}
	if cfg.APIRequestTimeout != 2*time.Second {
		t.Fatalf("expected 2s request timeout, got %s", cfg.APIRequestTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected deduplicated origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PHRASEBANK_FILE=/tmp/bank.yaml\nPORT=9999\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("PORT", "7000")
	t.Setenv("PHRASEBANK_FILE", "")
	os.Unsetenv("PHRASEBANK_FILE")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("PHRASEBANK_FILE"); got != "/tmp/bank.yaml" {
		t.Fatalf("expected dotenv value, got %q", got)
	}
	if got := os.Getenv("PORT"); got != "7000" {
		t.Fatalf("dotenv must not override existing env, got %q", got)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing dotenv must be ignored: %v", err)
	}
}
