package cmd

import (
	"log/slog"
	"strings"

	"kakanin/internal/adapters/out/postgres"
	"kakanin/internal/jobs"
)

// Default values used when the environment leaves a setting empty.
const (
	DefaultHTTPPort      = "8080"
	DefaultDBHost        = "localhost"
	DefaultDBPort        = "5432"
	DefaultDBUser        = "postgres"
	DefaultDBName        = "kakanin"
	DefaultDBSslMode     = "disable"
	DefaultSQLitePath    = "kakanin.db"
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "password"
)

type Config struct {
	HTTPPort           string
	DBDriver           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	SQLitePath         string
	AdminUsername      string
	AdminPassword      string
	DuePickupsSchedule string
	LogLevel           string
}

// LoadConfig reads the settings through getenv, normally os.Getenv after the
// optional .env file has been loaded.
func LoadConfig(getenv func(string) string) Config {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	return Config{
		HTTPPort:           env("HTTP_PORT", DefaultHTTPPort),
		DBDriver:           env("DB_DRIVER", postgres.DriverPostgres),
		DBHost:             env("DB_HOST", DefaultDBHost),
		DBPort:             env("DB_PORT", DefaultDBPort),
		DBUser:             env("DB_USER", DefaultDBUser),
		DBPassword:         getenv("DB_PASSWORD"),
		DBName:             env("DB_NAME", DefaultDBName),
		DBSslMode:          env("DB_SSLMODE", DefaultDBSslMode),
		SQLitePath:         env("SQLITE_PATH", DefaultSQLitePath),
		AdminUsername:      env("ADMIN_USERNAME", DefaultAdminUsername),
		AdminPassword:      env("ADMIN_PASSWORD", DefaultAdminPassword),
		DuePickupsSchedule: env("DUE_PICKUPS_SCHEDULE", jobs.DefaultDuePickupsSchedule),
		LogLevel:           env("LOG_LEVEL", "info"),
	}
}

// ConnectionConfig returns the database settings for postgres.Open.
func (c Config) ConnectionConfig() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Driver:     c.DBDriver,
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		Name:       c.DBName,
		SSLMode:    c.DBSslMode,
		SQLitePath: c.SQLitePath,
	}
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error"). Unknown values
// fall back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// UsesDefaultAdminPassword reports whether ADMIN_PASSWORD was left unset.
func (c Config) UsesDefaultAdminPassword() bool {
	return c.AdminPassword == DefaultAdminPassword
}
