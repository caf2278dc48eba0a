package config

import (
	"errors"
	"strings"
	"testing"
)

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error for missing APP_NAME")
	}
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
	if !strings.Contains(err.Error(), "APP_NAME") {
		t.Fatalf("error should name the missing variable: %v", err)
	}
}

func TestLoad_StoreOptional(t *testing.T) {
	t.Setenv("APP_NAME", "competency-matrix")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("store settings are optional: %v", err)
	}
	if cfg.Database.Configured() {
		t.Fatalf("empty store settings should not count as configured")
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	url := DatabaseConfig{URL: "postgres://u:p@host:5432/db", DBHost: "ignored"}
	if url.DSN() != "postgres://u:p@host:5432/db" {
		t.Fatalf("DATABASE_URL should win: %q", url.DSN())
	}

	parts := DatabaseConfig{
		DBHost: "localhost", DBPort: "5432", DBUser: "app",
		DBPassword: "secret", DBName: "matrix", DBSSLMode: "disable",
	}
	want := "host=localhost port=5432 user=app password=secret dbname=matrix sslmode=disable"
	if parts.DSN() != want {
		t.Fatalf("DSN() = %q, want %q", parts.DSN(), want)
	}
}
