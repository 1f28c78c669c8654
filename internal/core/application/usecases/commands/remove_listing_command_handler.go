package commands

import (
	"context"
	"fmt"

	"feedback/internal/core/ports"
)

// RemoveListingCommandHandler takes a listing off the marketplace and
// notifies the owning merchant. Removal is terminal.
type RemoveListingCommandHandler struct {
	uowFactory ListingUoWFactory
	notifier   ports.Notifier
}

// NewRemoveListingCommandHandler creates a handler for listing removal.
func NewRemoveListingCommandHandler(
	uowFactory ListingUoWFactory,
	notifier ports.Notifier,
) RemoveListingCommandHandler {
	return RemoveListingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the listing, applies the removal transition and persists it.
func (h RemoveListingCommandHandler) Handle(ctx context.Context, command RemoveListingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	listingRepo := uow.ListingRepository()

	l, err := listingRepo.Get(ctx, command.ListingID())
	if err != nil {
		return err
	}

	if err = l.Remove(); err != nil {
		return err
	}

	if err = listingRepo.Update(ctx, l); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.notifier.Publish(
		ctx,
		l.MerchantID().String(),
		fmt.Sprintf("Your listing %q was removed from the marketplace.", l.Title()),
		ports.SeverityWarning,
	)
}
