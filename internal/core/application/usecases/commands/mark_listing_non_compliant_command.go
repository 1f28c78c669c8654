package commands

import (
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/errs"
	"feedback/internal/pkg/guard"
)

var ErrMarkListingNonCompliantCommandIsNotConstructed = errors.New(
	"MarkListingNonCompliantCommand must be created via NewMarkListingNonCompliantCommand constructor",
)

// MarkListingNonCompliantCommand represents an admin flagging a listing for
// compliance issues during moderation.
type MarkListingNonCompliantCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID
	issues    []string

	guard guard.ConstructorGuard
}

// NewMarkListingNonCompliantCommand creates a command to flag a listing.
// At least one issue is required; blank issues are rejected by the aggregate.
func NewMarkListingNonCompliantCommand(
	listingID kernel.UUID,
	issues []string,
) (MarkListingNonCompliantCommand, error) {
	if err := listingID.Validate(); err != nil {
		return MarkListingNonCompliantCommand{}, err
	}
	if len(issues) == 0 {
		return MarkListingNonCompliantCommand{}, errs.NewValueIsRequiredError("issues")
	}

	return MarkListingNonCompliantCommand{
		listingID: listingID,
		issues:    append([]string(nil), issues...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkListingNonCompliantCommand) Validate() error {
	return c.guard.Validate(ErrMarkListingNonCompliantCommandIsNotConstructed)
}

// ListingID returns the identifier of the listing to flag.
func (c MarkListingNonCompliantCommand) ListingID() kernel.UUID {
	return c.listingID
}

// Issues returns the compliance issues found during moderation.
func (c MarkListingNonCompliantCommand) Issues() []string {
	return append([]string(nil), c.issues...)
}
