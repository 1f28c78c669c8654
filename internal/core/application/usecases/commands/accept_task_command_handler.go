package commands

import (
	"context"
	"fmt"

	"feedback/internal/core/ports"
)

// AcceptTaskCommandHandler claims an available task for a driver.
//
// Two drivers can race for the same task. The aggregate rejects a claim on
// anything but an available task with ConflictError, and the repository
// update is a compare-and-swap on the prior status, so of two concurrent
// accepts exactly one commit wins. The loser surfaces ConflictError and the
// task keeps exactly one owner.
type AcceptTaskCommandHandler struct {
	uowFactory TaskUoWFactory
	notifier   ports.Notifier
}

// NewAcceptTaskCommandHandler creates a handler for task claims.
func NewAcceptTaskCommandHandler(
	uowFactory TaskUoWFactory,
	notifier ports.Notifier,
) AcceptTaskCommandHandler {
	return AcceptTaskCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the task, records the driver as its exclusive owner and
// persists the claim.
func (h AcceptTaskCommandHandler) Handle(ctx context.Context, command AcceptTaskCommand) error {
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

	if err = t.Accept(command.DriverID()); err != nil {
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
		fmt.Sprintf("You accepted the delivery from %s.", t.MerchantName()),
		ports.SeverityInfo,
	)
}
