package task

import (
	"errors"
	"fmt"

	"feedback/internal/pkg/errs"
	"feedback/internal/pkg/guard"
)

var ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")

// RecipientKind distinguishes a paying customer destination from a
// charitable-organization destination.
type RecipientKind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown RecipientKind = iota

	// KindCustomer is a delivery to the customer who checked out an order.
	KindCustomer

	// KindNGO is a delivery to a charitable organization that claimed a
	// listing as a donation.
	KindNGO
)

// String returns the display name of the kind.
func (k RecipientKind) String() string {
	switch k {
	case KindCustomer:
		return "Customer"
	case KindNGO:
		return "NGO"
	default:
		return "Unknown"
	}
}

// Validate checks if the RecipientKind value is valid.
func (k RecipientKind) Validate() error {
	if k != KindCustomer && k != KindNGO {
		return errs.NewValueIsInvalidErrorWithCause(
			"recipient kind is invalid",
			fmt.Errorf("%d is not a valid recipient kind", k),
		)
	}
	return nil
}

// Recipient is a value object describing the delivery destination: who
// receives the food, where, and how to reach them. It is a back-reference
// for display and contact only and never drives the task lifecycle.
type Recipient struct {
	name    string
	address string
	phone   string
	kind    RecipientKind

	guard guard.ConstructorGuard
}

// NewRecipient creates a validated Recipient.
// Name and address are required; phone is optional contact information.
func NewRecipient(name, address, phone string, kind RecipientKind) (Recipient, error) {
	if name == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient name")
	}
	if address == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient address")
	}
	if err := kind.Validate(); err != nil {
		return Recipient{}, err
	}

	return Recipient{
		name:    name,
		address: address,
		phone:   phone,
		kind:    kind,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Recipient was created through the constructor.
func (r Recipient) Validate() error {
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// Name returns the recipient's display name.
func (r Recipient) Name() string {
	return r.name
}

// Address returns the drop-off address.
func (r Recipient) Address() string {
	return r.address
}

// Phone returns the recipient's contact number, possibly empty.
func (r Recipient) Phone() string {
	return r.phone
}

// Kind returns whether the recipient is a customer or an NGO.
func (r Recipient) Kind() RecipientKind {
	return r.kind
}
