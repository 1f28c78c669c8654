package commands

import (
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/guard"
)

var ErrRemoveListingCommandIsNotConstructed = errors.New(
	"RemoveListingCommand must be created via NewRemoveListingCommand constructor",
)

// RemoveListingCommand represents taking a listing off the marketplace,
// either by an admin during moderation or by the owning merchant.
type RemoveListingCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveListingCommand creates a command to remove a listing.
func NewRemoveListingCommand(listingID kernel.UUID) (RemoveListingCommand, error) {
	if err := listingID.Validate(); err != nil {
		return RemoveListingCommand{}, err
	}

	return RemoveListingCommand{
		listingID: listingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveListingCommand) Validate() error {
	return c.guard.Validate(ErrRemoveListingCommandIsNotConstructed)
}

// ListingID returns the identifier of the listing to remove.
func (c RemoveListingCommand) ListingID() kernel.UUID {
	return c.listingID
}
