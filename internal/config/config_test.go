package config

import (
	"os"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	os.Unsetenv("JWT_SECRET")

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("unexpected error parsing config: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.HTTPPort)
	}
	if cfg.DBType != "sqlite" {
		t.Errorf("expected default db type sqlite, got %q", cfg.DBType)
	}
	if cfg.UploadMaxBytes != 5242880 {
		t.Errorf("expected default upload cap 5242880, got %d", cfg.UploadMaxBytes)
	}
	if cfg.JWTSecret != "" {
		t.Errorf("expected no default JWT secret, got %q", cfg.JWTSecret)
	}
}

func TestParseConfigReadsJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("unexpected error parsing config: %v", err)
	}
	if cfg.JWTSecret != "from-env" {
		t.Errorf("expected secret from environment, got %q", cfg.JWTSecret)
	}
}
