package ports

import (
	"context"

	"kakanin/internal/core/domain/model/user"
)

// UserRepository stores the administrator account.
type UserRepository interface {
	Add(ctx context.Context, aggregate *user.User) error

	// GetFirst returns the administrator, or errs.ObjectNotFoundError if the
	// account has not been created yet.
	GetFirst(ctx context.Context) (*user.User, error)

	Count(ctx context.Context) (int64, error)
}
