package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, expected %q", cfg.Server.Port, "8080")
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, expected %q", cfg.Database.Driver, "sqlite")
	}
	if cfg.JWT.ExpireHour != 24 {
		t.Errorf("JWT.ExpireHour = %d, expected 24", cfg.JWT.ExpireHour)
	}
	if cfg.Auth.RefreshTokenTTLDays != 30 {
		t.Errorf("Auth.RefreshTokenTTLDays = %d, expected 30", cfg.Auth.RefreshTokenTTLDays)
	}
	if cfg.Auth.RotationWindowDays != 7 {
		t.Errorf("Auth.RotationWindowDays = %d, expected 7", cfg.Auth.RotationWindowDays)
	}
	if cfg.Auth.VerificationTTLHours != 24 {
		t.Errorf("Auth.VerificationTTLHours = %d, expected 24", cfg.Auth.VerificationTTLHours)
	}
	if cfg.Auth.ResetTTLMinutes != 60 {
		t.Errorf("Auth.ResetTTLMinutes = %d, expected 60", cfg.Auth.ResetTTLMinutes)
	}
	if cfg.SMTP.Enabled {
		t.Error("SMTP should be disabled by default")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, expected default %q", cfg.Server.Port, "8080")
	}
}

func TestLoad_FromFile(t *testing.T) {
	content := `
server:
  port: "9090"
  mode: release
database:
  driver: postgres
  dsn: "host=localhost user=app dbname=tasknest"
jwt:
  secret: file-secret
auth:
  refresh_token_ttl_days: 14
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, expected %q", cfg.Server.Port, "9090")
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, expected %q", cfg.Database.Driver, "postgres")
	}
	if cfg.JWT.Secret != "file-secret" {
		t.Errorf("JWT.Secret = %q, expected %q", cfg.JWT.Secret, "file-secret")
	}
	if cfg.Auth.RefreshTokenTTLDays != 14 {
		t.Errorf("Auth.RefreshTokenTTLDays = %d, expected 14", cfg.Auth.RefreshTokenTTLDays)
	}

	// Values the file omits fall back to defaults
	if cfg.Auth.RotationWindowDays != 7 {
		t.Errorf("Auth.RotationWindowDays = %d, expected default 7", cfg.Auth.RotationWindowDays)
	}
	if cfg.JWT.ExpireHour != 24 {
		t.Errorf("JWT.ExpireHour = %d, expected default 24", cfg.JWT.ExpireHour)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SMTP_HOST", "mail.example.com")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("Server.Port = %q, expected %q", cfg.Server.Port, "3000")
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("JWT.Secret = %q, expected %q", cfg.JWT.Secret, "env-secret")
	}
	if !cfg.SMTP.Enabled {
		t.Error("setting SMTP_HOST should enable SMTP")
	}
	if cfg.SMTP.Host != "mail.example.com" {
		t.Errorf("SMTP.Host = %q, expected %q", cfg.SMTP.Host, "mail.example.com")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on invalid YAML")
	}
}
