package commands

import (
	"context"
	"fmt"
	"strings"

	"feedback/internal/core/ports"
)

// MarkListingNonCompliantCommandHandler records a compliance verdict on an
// active listing and notifies the owning merchant with the issue list.
type MarkListingNonCompliantCommandHandler struct {
	uowFactory ListingUoWFactory
	notifier   ports.Notifier
}

// NewMarkListingNonCompliantCommandHandler creates a handler for compliance
// verdicts.
func NewMarkListingNonCompliantCommandHandler(
	uowFactory ListingUoWFactory,
	notifier ports.Notifier,
) MarkListingNonCompliantCommandHandler {
	return MarkListingNonCompliantCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the listing, applies the compliance verdict and persists it.
func (h MarkListingNonCompliantCommandHandler) Handle(
	ctx context.Context,
	command MarkListingNonCompliantCommand,
) error {
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

	if err = l.MarkNonCompliant(command.Issues()); err != nil {
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
		fmt.Sprintf(
			"Your listing %q was flagged for compliance: %s",
			l.Title(),
			strings.Join(l.ComplianceIssues(), "; "),
		),
		ports.SeverityWarning,
	)
}
