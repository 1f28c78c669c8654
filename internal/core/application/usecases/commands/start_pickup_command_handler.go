package commands

import (
	"context"
)

// StartPickupCommandHandler moves an accepted task into the pickup leg.
// Only the driver who claimed the task may advance it; anyone else is
// rejected with ForbiddenError.
type StartPickupCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewStartPickupCommandHandler creates a handler for starting pickups.
func NewStartPickupCommandHandler(uowFactory TaskUoWFactory) StartPickupCommandHandler {
	return StartPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the task, applies the start-pickup transition and persists it.
func (h StartPickupCommandHandler) Handle(ctx context.Context, command StartPickupCommand) error {
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

	if err = t.StartPickup(command.DriverID()); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
