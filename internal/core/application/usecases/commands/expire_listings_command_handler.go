package commands

import (
	"context"
	"fmt"
	"log/slog"

	"feedback/internal/core/ports"
)

// ExpireListingsCommandHandler sweeps active listings past their best-before
// time into the expired status and tells each owning merchant.
type ExpireListingsCommandHandler struct {
	uowFactory ListingUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewExpireListingsCommandHandler creates a handler for the expiry sweep.
func NewExpireListingsCommandHandler(
	uowFactory ListingUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) ExpireListingsCommandHandler {
	return ExpireListingsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle expires every active listing whose best-before time is at or
// before the sweep moment. All expirations commit together.
func (h ExpireListingsCommandHandler) Handle(ctx context.Context, command ExpireListingsCommand) error {
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

	listings, err := listingRepo.GetAllPastBestBefore(ctx, command.AsOf())
	if err != nil {
		return err
	}
	if len(listings) == 0 {
		return uow.Commit(ctx)
	}

	for _, l := range listings {
		if err = l.Expire(); err != nil {
			return err
		}

		if err = listingRepo.Update(ctx, l); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The sweep is committed at this point. Notifications are advisory, so a
	// failed publish is logged and must not fail the run.
	for _, l := range listings {
		if pubErr := h.notifier.Publish(
			ctx,
			l.MerchantID().String(),
			fmt.Sprintf("Your listing %q expired and is no longer visible.", l.Title()),
			ports.SeverityWarning,
		); pubErr != nil {
			h.logger.WarnContext(ctx, "Expiry notification not delivered",
				"merchantID", l.MerchantID().String(),
				"error", pubErr,
			)
		}
	}

	return nil
}
