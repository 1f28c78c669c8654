package commands

import (
	"errors"
	"time"

	"feedback/internal/pkg/errs"
	"feedback/internal/pkg/guard"
)

var ErrExpireListingsCommandIsNotConstructed = errors.New(
	"ExpireListingsCommand must be created via NewExpireListingsCommand constructor",
)

// ExpireListingsCommand triggers the sweep that expires active listings
// whose best-before time has passed. Issued by the scheduler, not by users.
type ExpireListingsCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewExpireListingsCommand creates a sweep command for the given moment.
func NewExpireListingsCommand(asOf time.Time) (ExpireListingsCommand, error) {
	if asOf.IsZero() {
		return ExpireListingsCommand{}, errs.NewValueIsRequiredError("asOf")
	}

	return ExpireListingsCommand{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireListingsCommand) Validate() error {
	return c.guard.Validate(ErrExpireListingsCommandIsNotConstructed)
}

// AsOf returns the moment the sweep compares best-before times against.
func (c ExpireListingsCommand) AsOf() time.Time {
	return c.asOf
}
