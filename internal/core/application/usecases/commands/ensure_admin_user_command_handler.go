package commands

import (
	"context"

	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/model/user"
)

// EnsureAdminUserCommandHandler creates the administrator when no user exists yet.
// Running it again is a no-op.
type EnsureAdminUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewEnsureAdminUserCommandHandler(uowFactory UserUoWFactory) EnsureAdminUserCommandHandler {
	return EnsureAdminUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reports whether a new account was created.
func (h *EnsureAdminUserCommandHandler) Handle(ctx context.Context, cmd EnsureAdminUserCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	count, err := userRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	admin, err := user.NewUser(kernel.NewUUID(), cmd.Username(), cmd.Password())
	if err != nil {
		return false, err
	}

	if err = userRepo.Add(ctx, admin); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
