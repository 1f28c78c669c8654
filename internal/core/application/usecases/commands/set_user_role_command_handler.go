package commands

import (
	"context"
	"fmt"

	"feedback/internal/core/ports"
)

// SetUserRoleCommandHandler moves an account to a different role.
// Assigning the role the account already holds surfaces NoChangeError so
// callers can tell a no-op apart from an actual change.
type SetUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
	notifier   ports.Notifier
}

// NewSetUserRoleCommandHandler creates a handler for role changes.
func NewSetUserRoleCommandHandler(
	uowFactory UserUoWFactory,
	notifier ports.Notifier,
) SetUserRoleCommandHandler {
	return SetUserRoleCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the account, applies the role change and persists it.
func (h SetUserRoleCommandHandler) Handle(ctx context.Context, command SetUserRoleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	u, err := userRepo.Get(ctx, command.UserID())
	if err != nil {
		return err
	}

	if err = u.ChangeRole(command.Role()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.notifier.Publish(
		ctx,
		u.ID().String(),
		fmt.Sprintf("Your account role was changed to %s.", u.Role()),
		ports.SeverityInfo,
	)
}
