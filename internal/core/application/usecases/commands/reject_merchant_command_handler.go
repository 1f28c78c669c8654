package commands

import (
	"context"
	"fmt"

	"feedback/internal/core/ports"
)

// RejectMerchantCommandHandler records a rejection verdict on a pending
// merchant and notifies the merchant with the reason after commit.
type RejectMerchantCommandHandler struct {
	uowFactory MerchantUoWFactory
	notifier   ports.Notifier
}

// NewRejectMerchantCommandHandler creates a handler for merchant rejections.
func NewRejectMerchantCommandHandler(
	uowFactory MerchantUoWFactory,
	notifier ports.Notifier,
) RejectMerchantCommandHandler {
	return RejectMerchantCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the merchant, applies the rejection transition with its
// reason and persists the result.
func (h RejectMerchantCommandHandler) Handle(ctx context.Context, command RejectMerchantCommand) error {
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

	merchantRepo := uow.MerchantRepository()

	m, err := merchantRepo.Get(ctx, command.MerchantID())
	if err != nil {
		return err
	}

	if err = m.Reject(command.Reason()); err != nil {
		return err
	}

	if err = merchantRepo.Update(ctx, m); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.notifier.Publish(
		ctx,
		m.ID().String(),
		fmt.Sprintf("Your merchant application was rejected: %s", m.RejectionReason()),
		ports.SeverityWarning,
	)
}
