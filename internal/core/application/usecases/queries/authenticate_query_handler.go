package queries

import (
	"context"
	"database/sql"
	"errors"

	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthenticateQueryHandler struct {
	db *gorm.DB
}

func NewAuthenticateQueryHandler(db *gorm.DB) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{db: db}
}

// Handle returns user.ErrInvalidCredentials for a wrong password, an unknown
// username, or when no administrator exists yet.
func (h AuthenticateQueryHandler) Handle(ctx context.Context, query AuthenticateQuery) error {
	if err := query.Validate(); err != nil {
		return err
	}

	var (
		id           uuid.UUID
		username     string
		passwordHash string
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT id, username, password_hash
		FROM users
		ORDER BY username
		LIMIT 1
	`).Row()
	if err := row.Scan(&id, &username, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.ErrInvalidCredentials
		}
		return err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}
	admin, err := user.RestoreUser(userID, username, passwordHash)
	if err != nil {
		return err
	}

	return admin.Authenticate(query.username, query.password)
}
