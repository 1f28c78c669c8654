package task

import (
	"fmt"

	"feedback/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery task.
// It implements a strictly linear state machine: no skipping, no backward
// transitions.
//
// State transitions:
//
//	Available ──> Accepted ──> PickingUp ──> Delivering ──> Completed
//
// Available tasks belong to no driver; from Accepted onward the task is
// exclusively owned by the driver who claimed it. Completed is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available is the initial status. The task sits in the shared pool
	// and any driver may claim it.
	Available

	// Accepted indicates a driver claimed the task and owns it exclusively.
	Accepted

	// PickingUp indicates the driver is at the merchant collecting the food.
	PickingUp

	// Delivering indicates pickup was confirmed with proof and the food is
	// on its way to the recipient.
	Delivering

	// Completed indicates the delivery finished. Terminal.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Available:  "available",
		Accepted:   "accepted",
		PickingUp:  "picking-up",
		Delivering: "delivering",
		Completed:  "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:  "available",
		Accepted:   "accepted",
		PickingUp:  "picking-up",
		Delivering: "delivering",
		Completed:  "completed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"task status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lower-case name of the status, matching its wire
// representation. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Available -> Accepted
//
// Claiming is the one transition where concurrent actors race for the same
// resource, so losing it is a ConflictError rather than an InvalidStateError:
// by the time the loser's attempt is checked, another driver has already
// moved the task out of Available.
func (s Status) Accept() (Status, error) {
	if s != Available {
		return 0, errs.NewConflictErrorWithCause(
			"task",
			fmt.Errorf("%s is not a valid status to accept, task already claimed", s.String()),
		)
	}

	return Accepted, nil
}

// StartPickup transitions the status to PickingUp.
//
// Valid transitions:
//   - Accepted -> PickingUp
func (s Status) StartPickup() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidStateErrorWithCause(
			"task status",
			fmt.Errorf("%s is not a valid status to start pickup", s.String()),
		)
	}

	return PickingUp, nil
}

// ConfirmPickup transitions the status to Delivering.
//
// Valid transitions:
//   - PickingUp -> Delivering
func (s Status) ConfirmPickup() (Status, error) {
	if s != PickingUp {
		return 0, errs.NewInvalidStateErrorWithCause(
			"task status",
			fmt.Errorf("%s is not a valid status to confirm pickup", s.String()),
		)
	}

	return Delivering, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Delivering -> Completed
//
// Completed is terminal; no further transitions are accepted.
func (s Status) Complete() (Status, error) {
	if s != Delivering {
		return 0, errs.NewInvalidStateErrorWithCause(
			"task status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
