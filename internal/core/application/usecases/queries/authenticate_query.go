package queries

import (
	"errors"

	"kakanin/internal/pkg/guard"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery checks the administrator's credentials.
type AuthenticateQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateQuery(username, password string) AuthenticateQuery {
	return AuthenticateQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}
}

func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}
