package commands

import (
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/guard"
)

var ErrStartPickupCommandIsNotConstructed = errors.New(
	"StartPickupCommand must be created via NewStartPickupCommand constructor",
)

// StartPickupCommand represents the owning driver heading to the merchant
// to collect the food.
type StartPickupCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartPickupCommand creates a command to begin the pickup leg.
func NewStartPickupCommand(taskID, driverID kernel.UUID) (StartPickupCommand, error) {
	if err := errors.Join(taskID.Validate(), driverID.Validate()); err != nil {
		return StartPickupCommand{}, err
	}

	return StartPickupCommand{
		taskID:   taskID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPickupCommand) Validate() error {
	return c.guard.Validate(ErrStartPickupCommandIsNotConstructed)
}

// TaskID returns the identifier of the task being worked.
func (c StartPickupCommand) TaskID() kernel.UUID {
	return c.taskID
}

// DriverID returns the identifier of the acting driver.
func (c StartPickupCommand) DriverID() kernel.UUID {
	return c.driverID
}
