package config

import (
	"context"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Fatalf("unexpected default port: %q", cfg.Port)
	}
	if cfg.OwnerEmail != "" {
		t.Fatalf("owner bootstrap should default to disabled, got %q", cfg.OwnerEmail)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("unexpected default bcrypt cost: %d", cfg.BcryptCost)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("OWNER_EMAIL", "owner@x.com")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/ais")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "9000" || cfg.OwnerEmail != "owner@x.com" || cfg.BcryptCost != 12 {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.Database.URL != "postgres://u:p@db:5432/ais" {
		t.Fatalf("nested database config not applied: %+v", cfg.Database)
	}
}

func TestOrigins(t *testing.T) {
	cfg := &Config{CORSOrigins: "http://localhost:3000, https://ais.example.com ,"}
	got := cfg.Origins()
	if len(got) != 2 || got[0] != "http://localhost:3000" || got[1] != "https://ais.example.com" {
		t.Fatalf("unexpected origins: %v", got)
	}
}
