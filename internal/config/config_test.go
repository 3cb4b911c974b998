package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.DSN != "billwise.db" {
		t.Errorf("DSN = %q, want billwise.db", cfg.Database.DSN)
	}
	if cfg.App.Migrations {
		t.Error("Migrations should default to false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DSN", ":memory:")
	t.Setenv("MIGRATIONS", "1")
	t.Setenv("READ_TIMEOUT", "5")

	cfg := Load()
	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Database.DSN != ":memory:" {
		t.Errorf("DSN = %q, want :memory:", cfg.Database.DSN)
	}
	if !cfg.App.Migrations {
		t.Error("Migrations should be enabled")
	}
	if cfg.Server.ReadTimeout != 5 {
		t.Errorf("ReadTimeout = %d, want 5", cfg.Server.ReadTimeout)
	}
}

func TestGetEnvIntInvalid(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "not-a-number")
	cfg := Load()
	if cfg.Server.ReadTimeout != 15 {
		t.Errorf("ReadTimeout = %d, want default 15", cfg.Server.ReadTimeout)
	}
}
