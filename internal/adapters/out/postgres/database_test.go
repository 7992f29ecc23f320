package postgres_test

import (
	"testing"
	"time"

	postgres_adapter "kakanin/internal/adapters/out/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestConnectionConfig_DSN(t *testing.T) {
	cfg := postgres_adapter.ConnectionConfig{
		Host:     "db",
		Port:     "5432",
		User:     "kakanin",
		Password: "secret",
		Name:     "orders",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=kakanin password=secret dbname=orders sslmode=disable", cfg.DSN())
}

func TestOpen(t *testing.T) {
	t.Run("should reject unknown driver", func(t *testing.T) {
		_, err := postgres_adapter.Open(postgres_adapter.ConnectionConfig{Driver: "oracle"})

		require.ErrorIs(t, err, postgres_adapter.ErrUnknownDriver)
	})

	t.Run("should open and migrate sqlite", func(t *testing.T) {
		db, err := postgres_adapter.Open(postgres_adapter.ConnectionConfig{
			Driver:     postgres_adapter.DriverSQLite,
			SQLitePath: t.TempDir() + "/kakanin.db",
		})
		require.NoError(t, err)

		assert.Equal(t, time.UTC, db.Config.NowFunc().Location())
		require.NoError(t, postgres_adapter.AutoMigrate(db))
		for _, table := range []string{"users", "buyer_info", "orders"} {
			assert.True(t, db.Migrator().HasTable(table), table)
		}
	})
}

func TestGormConfig_StampsUTC(t *testing.T) {
	cfg := postgres_adapter.GormConfig(logger.Silent)

	assert.Equal(t, time.UTC, cfg.NowFunc().Location())
	assert.NotNil(t, cfg.Logger)
}
