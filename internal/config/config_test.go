package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

const validYAML = `
app:
  port: 9090
database:
  dsn: "host=localhost user=app dbname=shop"
redis:
  addr: "localhost:6379"
  cache_ttl: "10m"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
  issuer: "ECommerceApi"
  audience: "ECommerceApi"
  expiration_hours: 12
`

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, validYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.TokenTTL != 12*time.Hour {
		t.Errorf("expected 12h token TTL, got %s", cfg.TokenTTL)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Errorf("expected 10m cache TTL, got %s", cfg.CacheTTL)
	}
}

func TestLoad_ShortSecretIsFatal(t *testing.T) {
	path := writeConfigFile(t, `
database:
  dsn: "host=localhost user=app dbname=shop"
jwt:
  secret: "too-short"
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for secret shorter than 32 characters")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, validYAML)
	t.Setenv("PORT", "7000")
	t.Setenv("JWT_EXPIRATION_HOURS", "48")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "7000" {
		t.Errorf("expected env override port 7000, got %s", cfg.Port)
	}
	if cfg.TokenTTL != 48*time.Hour {
		t.Errorf("expected 48h token TTL, got %s", cfg.TokenTTL)
	}
}

func TestLoad_DefaultExpiration(t *testing.T) {
	path := writeConfigFile(t, `
database:
  dsn: "host=localhost user=app dbname=shop"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected default 24h token TTL, got %s", cfg.TokenTTL)
	}
	if cfg.JWTIssuer != "ECommerceApi" || cfg.JWTAudience != "ECommerceApi" {
		t.Errorf("expected default issuer/audience, got %s/%s", cfg.JWTIssuer, cfg.JWTAudience)
	}
}

func TestLoad_MissingDSN(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: "0123456789abcdef0123456789abcdef"
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing DSN")
	}
}
