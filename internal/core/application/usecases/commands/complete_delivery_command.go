package commands

import (
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents the owning driver handing the food
// over at the drop-off and closing out the task.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
func NewCompleteDeliveryCommand(taskID, driverID kernel.UUID) (CompleteDeliveryCommand, error) {
	if err := errors.Join(taskID.Validate(), driverID.Validate()); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return CompleteDeliveryCommand{
		taskID:   taskID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// TaskID returns the identifier of the task being completed.
func (c CompleteDeliveryCommand) TaskID() kernel.UUID {
	return c.taskID
}

// DriverID returns the identifier of the acting driver.
func (c CompleteDeliveryCommand) DriverID() kernel.UUID {
	return c.driverID
}
