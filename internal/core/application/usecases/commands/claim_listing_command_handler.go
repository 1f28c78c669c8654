package commands

import (
	"context"
	"fmt"
	"time"

	"feedback/internal/core/domain/services"
	"feedback/internal/core/ports"
	"feedback/internal/pkg/errs"
)

// ClaimListingCommandHandler claims an active, compliant listing for an NGO.
// The listing leaves the marketplace and a pickup task appears on the driver
// board, both in one transaction.
type ClaimListingCommandHandler struct {
	uowFactory ClaimUoWFactory
	notifier   ports.Notifier
	planner    services.FulfillmentPlanner
	now        func() time.Time
}

// NewClaimListingCommandHandler creates a handler for donation claims.
func NewClaimListingCommandHandler(
	uowFactory ClaimUoWFactory,
	notifier ports.Notifier,
) ClaimListingCommandHandler {
	return ClaimListingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		planner:    services.NewFulfillmentPlanner(),
		now:        time.Now,
	}
}

// Handle plans the pickup task for the claimed listing, removes the listing
// from the marketplace and persists both changes.
func (h ClaimListingCommandHandler) Handle(ctx context.Context, command ClaimListingCommand) error {
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

	if !l.IsCompliant() {
		return errs.NewInvalidStateErrorWithCause(
			"listing",
			fmt.Errorf("listing %s has unresolved compliance issues", l.ID()),
		)
	}

	m, err := uow.MerchantRepository().Get(ctx, l.MerchantID())
	if err != nil {
		return err
	}

	t, err := h.planner.PlanDonationPickup(
		command.TaskID(),
		command.ClaimID(),
		l, m,
		command.NGOName(),
		command.NGOAddress(),
		command.NGOPhone(),
		command.PickupTime(),
		h.now(),
	)
	if err != nil {
		return err
	}

	if err = l.Remove(); err != nil {
		return err
	}

	if err = listingRepo.Update(ctx, l); err != nil {
		return err
	}

	if err = uow.TaskRepository().Add(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.notifier.Publish(
		ctx,
		l.MerchantID().String(),
		fmt.Sprintf("Your listing %q was claimed by %s.", l.Title(), command.NGOName()),
		ports.SeverityInfo,
	)
}
