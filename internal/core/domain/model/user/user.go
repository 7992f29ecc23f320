// Package user holds the single administrator account that records orders.
package user

import (
	"errors"
	"strings"
	"unicode/utf8"

	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	MaxUsernameLength = 50
	MinPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	MaxPasswordBytes = 72
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	// ErrInvalidCredentials is returned for both an unknown username and a wrong
	// password so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// User is the administrator. The password is only kept as a bcrypt hash.
type User struct {
	id           kernel.UUID
	username     string
	passwordHash string

	isConstructed bool
}

// NewUser hashes password with bcrypt.DefaultCost and creates the account.
func NewUser(id kernel.UUID, username, password string) (*User, error) {
	if err := errors.Join(validateUsernameAndID(id, username), validatePassword(password)); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return RestoreUser(id, username, string(hash))
}

// RestoreUser rebuilds the account from storage with an existing hash.
func RestoreUser(id kernel.UUID, username, passwordHash string) (*User, error) {
	if err := validateUsernameAndID(id, username); err != nil {
		return nil, err
	}
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("password hash", err)
	}

	return &User{
		id:            id,
		username:      strings.TrimSpace(username),
		passwordHash:  passwordHash,
		isConstructed: true,
	}, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Authenticate checks the submitted credentials. Both username and password must match.
func (u *User) Authenticate(username, password string) error {
	if err := u.Validate(); err != nil {
		return err
	}
	passwordErr := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password))
	if passwordErr != nil || strings.TrimSpace(username) != u.username {
		return ErrInvalidCredentials
	}
	return nil
}

func validateUsernameAndID(id kernel.UUID, username string) error {
	username = strings.TrimSpace(username)

	var usernameErr error
	switch n := utf8.RuneCountInString(username); {
	case n == 0:
		usernameErr = errs.NewValueIsRequiredError("username")
	case n > MaxUsernameLength:
		usernameErr = errs.NewValueIsOutOfRangeError("username length", n, 1, MaxUsernameLength)
	}

	return errors.Join(id.Validate(), usernameErr)
}

func validatePassword(password string) error {
	if n := len(password); n < MinPasswordLength || n > MaxPasswordBytes {
		return errs.NewValueIsOutOfRangeError("password length", n, MinPasswordLength, MaxPasswordBytes)
	}
	return nil
}
