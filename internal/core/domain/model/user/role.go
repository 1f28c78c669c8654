package user

import (
	"fmt"

	"feedback/internal/pkg/errs"
)

// Role defines what part of the platform an account operates.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin reviews merchants, moderates listings and manages accounts.
	RoleAdmin

	// RoleMerchant posts surplus food listings once verified.
	RoleMerchant

	// RoleCustomer browses listings and places orders.
	RoleCustomer

	// RoleDriver picks up and delivers orders and donations.
	RoleDriver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleAdmin:    "admin",
		RoleMerchant: "merchant",
		RoleCustomer: "customer",
		RoleDriver:   "driver",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:    "admin",
		RoleMerchant: "merchant",
		RoleCustomer: "customer",
		RoleDriver:   "driver",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the lower-case name of the role, matching its wire
// representation. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
