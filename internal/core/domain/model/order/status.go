package order

import (
	"fmt"

	"feedback/internal/pkg/errs"
)

// Status represents the lifecycle state of a customer order.
//
// State transitions:
//
//	Confirmed ──> Fulfilled
//
// An order is confirmed at checkout and fulfilled when its linked delivery
// task completes; nothing else moves it. Fulfilled is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Confirmed is the initial status assigned at checkout.
	Confirmed

	// Fulfilled indicates the linked delivery task completed. Terminal.
	Fulfilled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Confirmed: "confirmed",
		Fulfilled: "fulfilled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Confirmed: "confirmed",
		Fulfilled: "fulfilled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status is invalid",
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

// Fulfill transitions the status to Fulfilled.
//
// Valid transitions:
//   - Confirmed -> Fulfilled
func (s Status) Fulfill() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to fulfill", s.String()),
		)
	}

	return Fulfilled, nil
}
