package commands

import (
	"context"

	"feedback/internal/core/ports"
)

// SetUserActiveCommandHandler suspends or reinstates an account.
// The operation is idempotent: repeating the same value is a clean no-op.
type SetUserActiveCommandHandler struct {
	uowFactory UserUoWFactory
	notifier   ports.Notifier
}

// NewSetUserActiveCommandHandler creates a handler for account suspension.
func NewSetUserActiveCommandHandler(
	uowFactory UserUoWFactory,
	notifier ports.Notifier,
) SetUserActiveCommandHandler {
	return SetUserActiveCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the account, flips the active flag and persists it.
func (h SetUserActiveCommandHandler) Handle(ctx context.Context, command SetUserActiveCommand) error {
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

	u.SetActive(command.Active())

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	message := "Your account has been suspended."
	severity := ports.SeverityWarning
	if command.Active() {
		message = "Your account has been reactivated."
		severity = ports.SeverityInfo
	}

	return h.notifier.Publish(ctx, u.ID().String(), message, severity)
}
