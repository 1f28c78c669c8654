package commands

import (
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/errs"
	"feedback/internal/pkg/guard"
)

var ErrRejectMerchantCommandIsNotConstructed = errors.New(
	"RejectMerchantCommand must be created via NewRejectMerchantCommand constructor",
)

// RejectMerchantCommand represents an admin's decision to reject a pending
// merchant. The reason is mandatory and is shown to the merchant.
type RejectMerchantCommand struct { //nolint:recvcheck //using for validation
	merchantID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewRejectMerchantCommand creates a command to reject a pending merchant
// with an explanation.
func NewRejectMerchantCommand(merchantID kernel.UUID, reason string) (RejectMerchantCommand, error) {
	rejectCommand := RejectMerchantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setMerchantID(merchantID),
		rejectCommand.setReason(reason),
	); err != nil {
		return RejectMerchantCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectMerchantCommand) Validate() error {
	return c.guard.Validate(ErrRejectMerchantCommandIsNotConstructed)
}

// MerchantID returns the identifier of the merchant to reject.
func (c RejectMerchantCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// Reason returns the explanation recorded with the rejection.
func (c RejectMerchantCommand) Reason() string {
	return c.reason
}

func (c *RejectMerchantCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *RejectMerchantCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
