package task

import (
	"fmt"

	"feedback/internal/pkg/errs"
)

// Priority ranks how urgently a task should be picked up, driven by how
// close the food is to its expiry time.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityLow means the food keeps for a while yet.
	PriorityLow

	// PriorityMedium is the default urgency.
	PriorityMedium

	// PriorityHigh means the food expires soon and the task should be
	// surfaced first.
	PriorityHigh
)

// String returns the lower-case name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if p != PriorityLow && p != PriorityMedium && p != PriorityHigh {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority is invalid",
			fmt.Errorf("%d is not a valid priority", p),
		)
	}
	return nil
}
