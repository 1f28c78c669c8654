package commands

import (
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/guard"
)

var ErrAcceptTaskCommandIsNotConstructed = errors.New(
	"AcceptTaskCommand must be created via NewAcceptTaskCommand constructor",
)

// AcceptTaskCommand represents a driver claiming an available delivery task
// from the board.
//
// Example:
//
//	cmd, err := NewAcceptTaskCommand(taskID, driverID)
//	if err != nil {
//	    return err
//	}
//	handler := NewAcceptTaskCommandHandler(uowFactory, notifier)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // another driver claimed the task first
//	}
type AcceptTaskCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptTaskCommand creates a command for a driver to claim a task.
func NewAcceptTaskCommand(taskID, driverID kernel.UUID) (AcceptTaskCommand, error) {
	if err := errors.Join(taskID.Validate(), driverID.Validate()); err != nil {
		return AcceptTaskCommand{}, err
	}

	return AcceptTaskCommand{
		taskID:   taskID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptTaskCommand) Validate() error {
	return c.guard.Validate(ErrAcceptTaskCommandIsNotConstructed)
}

// TaskID returns the identifier of the task to claim.
func (c AcceptTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// DriverID returns the identifier of the claiming driver.
func (c AcceptTaskCommand) DriverID() kernel.UUID {
	return c.driverID
}
