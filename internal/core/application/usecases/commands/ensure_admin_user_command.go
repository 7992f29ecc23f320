package commands

import (
	"errors"
	"strings"

	"kakanin/internal/pkg/errs"
	"kakanin/internal/pkg/guard"
)

var ErrEnsureAdminUserCommandIsNotConstructed = errors.New(
	"EnsureAdminUserCommand must be created via NewEnsureAdminUserCommand constructor",
)

// EnsureAdminUserCommand creates the administrator account on first start.
type EnsureAdminUserCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

func NewEnsureAdminUserCommand(username, password string) (EnsureAdminUserCommand, error) {
	command := EnsureAdminUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	username = strings.TrimSpace(username)
	var usernameErr, passwordErr error
	if username == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(usernameErr, passwordErr); err != nil {
		return EnsureAdminUserCommand{}, err
	}

	command.username = username
	command.password = password
	return command, nil
}

func (c EnsureAdminUserCommand) Validate() error {
	return c.guard.Validate(ErrEnsureAdminUserCommandIsNotConstructed)
}

func (c EnsureAdminUserCommand) Username() string {
	return c.username
}

func (c EnsureAdminUserCommand) Password() string {
	return c.password
}
