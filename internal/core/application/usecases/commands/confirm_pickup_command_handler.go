package commands

import (
	"context"
	"fmt"

	"feedback/internal/core/ports"
)

// ConfirmPickupCommandHandler records the pickup proof and moves the task
// into the delivery leg.
type ConfirmPickupCommandHandler struct {
	uowFactory TaskUoWFactory
	notifier   ports.Notifier
}

// NewConfirmPickupCommandHandler creates a handler for pickup confirmation.
func NewConfirmPickupCommandHandler(
	uowFactory TaskUoWFactory,
	notifier ports.Notifier,
) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the task, stores the proof with the transition and persists
// the result.
func (h ConfirmPickupCommandHandler) Handle(ctx context.Context, command ConfirmPickupCommand) error {
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

	taskRepo := uow.TaskRepository()

	t, err := taskRepo.Get(ctx, command.TaskID())
	if err != nil {
		return err
	}

	if err = t.ConfirmPickup(command.DriverID(), command.Proof()); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.notifier.Publish(
		ctx,
		command.DriverID().String(),
		fmt.Sprintf("Pickup confirmed at %s. Head to %s.", t.MerchantName(), t.Recipient().Address()),
		ports.SeverityInfo,
	)
}
