package commands

import (
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/guard"
)

var ErrApproveMerchantCommandIsNotConstructed = errors.New(
	"ApproveMerchantCommand must be created via NewApproveMerchantCommand constructor",
)

// ApproveMerchantCommand represents an admin's decision to approve a pending
// merchant, opening the marketplace to their listings.
//
// Example:
//
//	cmd, err := NewApproveMerchantCommand(merchantID)
//	if err != nil {
//	    return err
//	}
//	handler := NewApproveMerchantCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to approve merchant: %w", err)
//	}
type ApproveMerchantCommand struct { //nolint:recvcheck //using for validation
	merchantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveMerchantCommand creates a command to approve a pending merchant.
func NewApproveMerchantCommand(merchantID kernel.UUID) (ApproveMerchantCommand, error) {
	if err := merchantID.Validate(); err != nil {
		return ApproveMerchantCommand{}, err
	}

	return ApproveMerchantCommand{
		merchantID: merchantID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveMerchantCommand) Validate() error {
	return c.guard.Validate(ErrApproveMerchantCommandIsNotConstructed)
}

// MerchantID returns the identifier of the merchant to approve.
func (c ApproveMerchantCommand) MerchantID() kernel.UUID {
	return c.merchantID
}
