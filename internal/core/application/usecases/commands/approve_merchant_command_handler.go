package commands

import (
	"context"

	"feedback/internal/core/ports"
)

// ApproveMerchantCommandHandler records an approval verdict on a pending
// merchant and notifies the merchant after the transaction commits.
// Verdicts are final: an approved or rejected merchant cannot be re-reviewed.
type ApproveMerchantCommandHandler struct {
	uowFactory MerchantUoWFactory
	notifier   ports.Notifier
}

// NewApproveMerchantCommandHandler creates a handler for merchant approvals.
func NewApproveMerchantCommandHandler(
	uowFactory MerchantUoWFactory,
	notifier ports.Notifier,
) ApproveMerchantCommandHandler {
	return ApproveMerchantCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the merchant, applies the approval transition and persists
// the result. Returns InvalidStateError when a verdict was already recorded.
func (h ApproveMerchantCommandHandler) Handle(ctx context.Context, command ApproveMerchantCommand) error {
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

	if err = m.Approve(); err != nil {
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
		"Your merchant account has been approved. You can start listing surplus food.",
		ports.SeveritySuccess,
	)
}
