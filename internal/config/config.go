package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// DatabaseConfig carries either a full connection URL (DATABASE_URL) or the
// individual parts. The database name can be overridden separately via
// DATABASE_NAME to match how deployments pass it alongside the URL.
type DatabaseConfig struct {
	URL        string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		URL:        opt("DATABASE_URL"),
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DATABASE_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = opt("DB_NAME")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// Configured reports whether any store connection settings are present.
// The service starts without a store and serves 500s on data endpoints
// when nothing is configured.
func (c DatabaseConfig) Configured() bool {
	return c.URL != "" || c.DBHost != ""
}

// DSN renders the config as a pgx connection string. A DATABASE_URL wins
// over individual parts; DATABASE_NAME is appended to a URL that does not
// already select a database.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	parts := []string{
		"host=" + c.DBHost,
		"port=" + c.DBPort,
		"user=" + c.DBUser,
		"password=" + c.DBPassword,
		"dbname=" + c.DBName,
		"sslmode=" + c.DBSSLMode,
	}
	return strings.Join(parts, " ")
}
