package commands

import (
	"context"
	"fmt"

	"feedback/internal/core/domain/model/listing"
	"feedback/internal/pkg/errs"
)

// CreateListingCommandHandler posts a new surplus food listing on behalf of
// a verified merchant. Only approved merchants may list food; everyone else
// is turned away with ForbiddenError before anything is written.
type CreateListingCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateListingCommandHandler creates a handler for posting listings.
func NewCreateListingCommandHandler(uowFactory CatalogUoWFactory) CreateListingCommandHandler {
	return CreateListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the posting merchant is approved, constructs the listing
// aggregate and persists it.
func (h CreateListingCommandHandler) Handle(ctx context.Context, command CreateListingCommand) error {
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

	m, err := uow.MerchantRepository().Get(ctx, command.MerchantID())
	if err != nil {
		return err
	}

	if !m.IsApproved() {
		return errs.NewForbiddenErrorWithCause(
			"merchant",
			fmt.Errorf("merchant %s is not approved to list food", m.ID()),
		)
	}

	l, err := listing.NewListing(
		command.ListingID(),
		command.MerchantID(),
		command.Title(),
		command.Description(),
		command.Quantity(),
		command.Images(),
		command.BestBefore(),
	)
	if err != nil {
		return err
	}

	if err = uow.ListingRepository().Add(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
