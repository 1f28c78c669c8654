package commands

import (
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/user"
	"feedback/internal/pkg/guard"
)

var ErrSetUserRoleCommandIsNotConstructed = errors.New(
	"SetUserRoleCommand must be created via NewSetUserRoleCommand constructor",
)

// SetUserRoleCommand represents an admin moving an account to a different
// role from the user management panel.
type SetUserRoleCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   user.Role

	guard guard.ConstructorGuard
}

// NewSetUserRoleCommand creates a command to change an account's role.
func NewSetUserRoleCommand(userID kernel.UUID, role user.Role) (SetUserRoleCommand, error) {
	if err := userID.Validate(); err != nil {
		return SetUserRoleCommand{}, err
	}
	if err := role.Validate(); err != nil {
		return SetUserRoleCommand{}, err
	}

	return SetUserRoleCommand{
		userID: userID,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrSetUserRoleCommandIsNotConstructed)
}

// UserID returns the identifier of the account to change.
func (c SetUserRoleCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the role to assign.
func (c SetUserRoleCommand) Role() user.Role {
	return c.role
}
