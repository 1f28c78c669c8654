package user

import (
	"errors"
	"fmt"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through the NewUser or RestoreUser factory methods.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is a platform account managed from the admin panel. It carries the
// role that routes the account into the right part of the platform and an
// active flag admins can flip to suspend access without deleting history.
type User struct {
	id     kernel.UUID
	name   string
	email  string
	role   Role
	active bool

	isConstructed bool
}

// NewUser creates an active User with the given role.
func NewUser(id kernel.UUID, name, email string, role Role) (*User, error) {
	u := &User{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistent storage.
func RestoreUser(id kernel.UUID, name, email string, role Role, active bool) (*User, error) {
	u, err := NewUser(id, name, email, role)
	if err != nil {
		return nil, err
	}

	u.active = active
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Role returns the user's current role.
func (u *User) Role() Role {
	return u.role
}

// IsActive reports whether the account may use the platform.
func (u *User) IsActive() bool {
	return u.active
}

// ChangeRole moves the account to a different role.
// Assigning the role the account already holds is reported as a no-change
// so the caller can skip the write and the audit entry.
func (u *User) ChangeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if u.role == role {
		return errs.NewNoChangeErrorWithCause(
			"role",
			fmt.Errorf("user already has role %s", role),
		)
	}

	u.role = role
	return nil
}

// SetActive suspends or reinstates the account. Idempotent.
func (u *User) SetActive(active bool) {
	u.active = active
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
