// Package pgtest starts throwaway databases for integration and query tests.
package pgtest

import (
	"context"
	"time"

	postgres_adapter "kakanin/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every table in truncation order.
const Tables = "orders, buyer_info, users"

// StartPostgres runs postgres:15-alpine, connects and migrates the schema.
// The caller terminates the container.
func StartPostgres(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), postgres_adapter.GormConfig(logger.Silent))
	if err != nil {
		return container, nil, err
	}

	if err = postgres_adapter.AutoMigrate(db); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// OpenSQLite returns a migrated in-memory database private to the caller.
func OpenSQLite() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), postgres_adapter.GormConfig(logger.Silent))
	if err != nil {
		return nil, err
	}

	// every pooled connection to :memory: would get its own empty database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err = postgres_adapter.AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
