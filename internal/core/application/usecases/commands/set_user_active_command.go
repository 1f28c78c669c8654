package commands

import (
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/guard"
)

var ErrSetUserActiveCommandIsNotConstructed = errors.New(
	"SetUserActiveCommand must be created via NewSetUserActiveCommand constructor",
)

// SetUserActiveCommand represents an admin suspending or reinstating an
// account. Suspension keeps the account's history intact.
type SetUserActiveCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	active bool

	guard guard.ConstructorGuard
}

// NewSetUserActiveCommand creates a command to flip an account's active flag.
func NewSetUserActiveCommand(userID kernel.UUID, active bool) (SetUserActiveCommand, error) {
	if err := userID.Validate(); err != nil {
		return SetUserActiveCommand{}, err
	}

	return SetUserActiveCommand{
		userID: userID,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetUserActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetUserActiveCommandIsNotConstructed)
}

// UserID returns the identifier of the account to change.
func (c SetUserActiveCommand) UserID() kernel.UUID {
	return c.userID
}

// Active reports whether the account should be active afterwards.
func (c SetUserActiveCommand) Active() bool {
	return c.active
}
