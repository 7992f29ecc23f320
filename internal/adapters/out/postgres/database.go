package postgres

import (
	"errors"
	"fmt"
	"time"

	"kakanin/internal/adapters/out/postgres/buyerrepo"
	"kakanin/internal/adapters/out/postgres/orderrepo"
	"kakanin/internal/adapters/out/postgres/userrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrUnknownDriver = errors.New("unknown database driver")

// ConnectionConfig selects the database. SQLitePath is only read for the
// sqlite driver, the other fields only for postgres.
type ConnectionConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// DSN builds a libpq keyword/value connection string.
func (c ConnectionConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Open connects with the configured driver. Slow queries and errors are
// reported through gorm's logger at warn level.
func Open(cfg ConnectionConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres, "":
		dialector = gormpostgres.Open(cfg.DSN())
	case DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	return gorm.Open(dialector, GormConfig(logger.Warn))
}

// GormConfig is shared by every connection. created_at is stamped in UTC so
// insertion order compares the same on postgres and on sqlite, which stores
// timestamps as text.
func GormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:  logger.Default.LogMode(level),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}
}

// AutoMigrate creates or updates the users, buyer_info and orders tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&userrepo.UserDTO{}, &buyerrepo.BuyerDTO{}, &orderrepo.OrderDTO{})
}
