package merchant

import (
	"fmt"

	"feedback/internal/pkg/errs"
)

// Status represents the verification state of a merchant account.
// It implements a state machine with defined transitions to ensure
// merchants follow the correct verification workflow.
//
// State transitions:
//
//	Pending ──┬──> Approved
//	          └──> Rejected
//
// Both Approved and Rejected are terminal: a verdict is final and the
// merchant cannot re-enter verification.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a merchant registers.
	// Merchants in this status are waiting for an admin verdict.
	Pending

	// Approved indicates the merchant passed verification.
	// Only approved merchants may list food. Terminal.
	Approved

	// Rejected indicates the merchant failed verification.
	// A rejection always carries a reason. Terminal.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Pending:  "pending",
		Approved: "approved",
		Rejected: "rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "pending",
		Approved: "approved",
		Rejected: "rejected",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Approved, and Rejected; Unknown (0) and any
// other values are invalid. Used to vet Status values arriving from
// persistence before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"verification status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lower-case name of the status, matching its wire
// representation. Implements fmt.Stringer and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Pending -> Approved
//
// Any other source state yields an InvalidStateError: both verdicts are
// terminal and re-verification is not defined.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateErrorWithCause(
			"verification status",
			fmt.Errorf("%s is not a valid status to approve", s.String()),
		)
	}

	return Approved, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//
// Any other source state yields an InvalidStateError.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateErrorWithCause(
			"verification status",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}

	return Rejected, nil
}
