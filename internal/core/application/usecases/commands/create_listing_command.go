package commands

import (
	"errors"
	"time"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/errs"
	"feedback/internal/pkg/guard"
)

var ErrCreateListingCommandIsNotConstructed = errors.New(
	"CreateListingCommand must be created via NewCreateListingCommand constructor",
)

// CreateListingCommand represents a merchant's request to post a surplus
// food listing.
//
// Example:
//
//	cmd, err := NewCreateListingCommand(
//	    listingID, merchantID,
//	    "Surprise Bag - Bakery", "Assorted pastries from today",
//	    3, photos, bestBefore,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid listing data: %w", err)
//	}
//	handler := NewCreateListingCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create listing: %w", err)
//	}
type CreateListingCommand struct { //nolint:recvcheck //using for validation
	listingID   kernel.UUID
	merchantID  kernel.UUID
	title       string
	description string
	quantity    int
	images      []string
	bestBefore  time.Time

	guard guard.ConstructorGuard
}

// NewCreateListingCommand creates a command to post a new listing.
// Validates identifiers, a non-empty title, a positive quantity and a
// best-before time.
func NewCreateListingCommand(
	listingID, merchantID kernel.UUID,
	title, description string,
	quantity int,
	images []string,
	bestBefore time.Time,
) (CreateListingCommand, error) {
	listingCommand := CreateListingCommand{
		description: description,
		images:      append([]string(nil), images...),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		listingCommand.setListingID(listingID),
		listingCommand.setMerchantID(merchantID),
		listingCommand.setTitle(title),
		listingCommand.setQuantity(quantity),
		listingCommand.setBestBefore(bestBefore),
	); err != nil {
		return CreateListingCommand{}, err
	}

	return listingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateListingCommand) Validate() error {
	return c.guard.Validate(ErrCreateListingCommandIsNotConstructed)
}

// ListingID returns the unique identifier for the new listing.
func (c CreateListingCommand) ListingID() kernel.UUID {
	return c.listingID
}

// MerchantID returns the identifier of the posting merchant.
func (c CreateListingCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// Title returns the listing title.
func (c CreateListingCommand) Title() string {
	return c.title
}

// Description returns the optional listing description.
func (c CreateListingCommand) Description() string {
	return c.description
}

// Quantity returns how many units are offered.
func (c CreateListingCommand) Quantity() int {
	return c.quantity
}

// Images returns the listing photo references.
func (c CreateListingCommand) Images() []string {
	return append([]string(nil), c.images...)
}

// BestBefore returns the time the food stops being safe to offer.
func (c CreateListingCommand) BestBefore() time.Time {
	return c.bestBefore
}

func (c *CreateListingCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}

	c.listingID = listingID
	return nil
}

func (c *CreateListingCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *CreateListingCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreateListingCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *CreateListingCommand) setBestBefore(bestBefore time.Time) error {
	if bestBefore.IsZero() {
		return errs.NewValueIsRequiredError("bestBefore")
	}

	c.bestBefore = bestBefore
	return nil
}
