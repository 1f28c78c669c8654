package listing

import (
	"fmt"

	"feedback/internal/pkg/errs"
)

// Status represents the lifecycle state of a surplus-food listing.
//
// State transitions:
//
//	Active ──┬──> Expired ──> Removed
//	         └──> Removed
//
// Active listings can also toggle their compliance flag without changing
// status. Removed is absorbing: once removed a listing accepts no further
// transitions of any kind.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Active is the initial status when a merchant publishes a listing.
	// Only active listings are browsable and claimable.
	Active

	// Expired indicates the listing passed its best-before time.
	// Reached only through the scheduled expiry sweep. An expired listing
	// can still be removed by an admin.
	Expired

	// Removed indicates an admin took the listing down. Terminal.
	Removed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "unknown",
		Active:  "active",
		Expired: "expired",
		Removed: "removed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:  "active",
		Expired: "expired",
		Removed: "removed",
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
// Valid statuses are Active, Expired, and Removed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"listing status is invalid",
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

// Expire transitions the status to Expired.
//
// Valid transitions:
//   - Active -> Expired
func (s Status) Expire() (Status, error) {
	if s != Active {
		return 0, errs.NewInvalidStateErrorWithCause(
			"listing status",
			fmt.Errorf("%s is not a valid status to expire", s.String()),
		)
	}

	return Expired, nil
}

// Remove transitions the status to Removed.
//
// Valid transitions:
//   - Active -> Removed
//   - Expired -> Removed
//
// Removed -> Removed is not a transition: removal is terminal and
// re-removal fails with an InvalidStateError.
func (s Status) Remove() (Status, error) {
	if s != Active && s != Expired {
		return 0, errs.NewInvalidStateErrorWithCause(
			"listing status",
			fmt.Errorf("%s is not a valid status to remove", s.String()),
		)
	}

	return Removed, nil
}
