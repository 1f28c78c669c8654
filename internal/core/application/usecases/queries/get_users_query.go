package queries

import (
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/user"
	"feedback/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery retrieves accounts for the admin user management panel.
// Both filters are optional: user.RoleUnknown skips the role filter and an
// empty search matches everyone.
type GetUsersQuery struct {
	role   user.Role
	search string

	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a users query.
// search matches case-insensitively against name and email.
func NewGetUsersQuery(role user.Role, search string) (GetUsersQuery, error) {
	if role != user.RoleUnknown {
		if err := role.Validate(); err != nil {
			return GetUsersQuery{}, err
		}
	}

	return GetUsersQuery{
		role:   role,
		search: search,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// Role returns the role filter, user.RoleUnknown when unfiltered.
func (q GetUsersQuery) Role() user.Role {
	return q.role
}

// Search returns the name/email search term, possibly empty.
func (q GetUsersQuery) Search() string {
	return q.search
}

// GetUsersQueryResponse represents one account row in the admin panel.
type GetUsersQueryResponse struct {
	ID     kernel.UUID
	Name   string
	Email  string
	Role   string
	Active bool
}
