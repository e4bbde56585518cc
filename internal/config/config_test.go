package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "4000" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "4000")
	}
	if cfg.Server.Mode != "development" {
		t.Errorf("Server.Mode = %q, want %q", cfg.Server.Mode, "development")
	}
	if cfg.JWT.AccessTokenExpiration != "24h" {
		t.Errorf("JWT.AccessTokenExpiration = %q, want %q", cfg.JWT.AccessTokenExpiration, "24h")
	}
	if !cfg.UsesInsecureJWTSecret() {
		t.Error("expected the insecure development secret to be active by default")
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true for default config")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: \"8080\"\njwt:\n  secret: file-secret\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.JWT.Secret != "file-secret" {
		t.Errorf("JWT.Secret = %q, want %q", cfg.JWT.Secret, "file-secret")
	}
	// Values absent from the file keep their defaults
	if cfg.Database.Port != "5432" {
		t.Errorf("Database.Port = %q, want %q", cfg.Database.Port, "5432")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "9999")
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("JWT.Secret = %q, want %q", cfg.JWT.Secret, "env-secret")
	}
}

func TestLoadConfigProductionRefusesDefaultSecret(t *testing.T) {
	t.Setenv("SERVER_MODE", "production")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for production mode with the default JWT secret")
	}
}

func TestLoadConfigProductionWithExplicitSecret(t *testing.T) {
	t.Setenv("SERVER_MODE", "production")
	t.Setenv("JWT_SECRET", "a-real-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
	if cfg.UsesInsecureJWTSecret() {
		t.Error("UsesInsecureJWTSecret() = true with an explicit secret")
	}
}

func TestLoadConfigInvalidExpiration(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "one-day")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for an unparseable token expiration")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "courses"

	want := "postgres://app:pw@db.internal:5433/courses?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("GetPostgresConnectionString() = %q, want %q", got, want)
	}
}
