package commands

import (
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand represents the owning driver confirming collection
// at the merchant with proof, typically a photo reference.
//
// The proof itself is validated by the aggregate so that a missing proof is
// reported the same way whatever state the task is in.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	driverID kernel.UUID
	proof    string

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command to confirm a pickup.
func NewConfirmPickupCommand(taskID, driverID kernel.UUID, proof string) (ConfirmPickupCommand, error) {
	if err := errors.Join(taskID.Validate(), driverID.Validate()); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return ConfirmPickupCommand{
		taskID:   taskID,
		driverID: driverID,
		proof:    proof,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// TaskID returns the identifier of the task being worked.
func (c ConfirmPickupCommand) TaskID() kernel.UUID {
	return c.taskID
}

// DriverID returns the identifier of the acting driver.
func (c ConfirmPickupCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Proof returns the pickup proof reference.
func (c ConfirmPickupCommand) Proof() string {
	return c.proof
}
