package merchant

import (
	"errors"
	"fmt"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/errs"
)

var (
	// ErrMerchantIsNotConstructed is returned when a Merchant instance was not
	// created through the NewMerchant or RestoreMerchant factory methods.
	ErrMerchantIsNotConstructed = errors.New("Merchant must be created via NewMerchant constructor")
)

// Merchant represents a food business account in the marketplace. It is the
// aggregate root for the verification workflow: registered merchants start
// pending and an admin either approves or rejects them.
//
// Merchant maintains these invariants:
//   - Must have a valid unique identifier
//   - Name, email, and business name are never empty
//   - A rejection reason is present if and only if the merchant is rejected
//   - Only pending merchants can receive a verdict; verdicts are final
//   - Only approved merchants may list food
type Merchant struct {
	id              kernel.UUID
	name            string
	email           string
	phone           string
	businessName    string
	businessAddress string
	status          Status
	rejectionReason string

	isConstructed bool
}

// NewMerchant creates a Merchant in Pending status awaiting verification.
// All identity fields are validated; an error describes every missing field.
func NewMerchant(id kernel.UUID, name, email, phone, businessName, businessAddress string) (*Merchant, error) {
	m := &Merchant{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setEmail(email),
		m.setBusinessName(businessName),
	); err != nil {
		return nil, err
	}

	m.phone = phone
	m.businessAddress = businessAddress
	return m, nil
}

// RestoreMerchant reconstructs a Merchant from persistent storage.
// Unlike NewMerchant it accepts any valid status, but it still enforces the
// rejection-reason invariant so corrupt rows cannot enter the domain.
func RestoreMerchant(
	id kernel.UUID,
	name, email, phone, businessName, businessAddress string,
	status Status,
	rejectionReason string,
) (*Merchant, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	if status == Rejected && rejectionReason == "" {
		return nil, errs.NewValueIsRequiredError("rejectionReason")
	}
	if status != Rejected && rejectionReason != "" {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"rejectionReason",
			fmt.Errorf("reason is only allowed on rejected merchants, status is %s", status),
		)
	}

	m, err := NewMerchant(id, name, email, phone, businessName, businessAddress)
	if err != nil {
		return nil, err
	}

	m.status = status
	m.rejectionReason = rejectionReason
	return m, nil
}

// Validate ensures the Merchant instance was properly constructed.
func (m *Merchant) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMerchantIsNotConstructed
	}
	return nil
}

// IsEqual compares two merchants by their unique identifiers.
func (m *Merchant) IsEqual(other *Merchant) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the merchant's unique identifier.
func (m *Merchant) ID() kernel.UUID {
	return m.id
}

// Name returns the contact person's name.
func (m *Merchant) Name() string {
	return m.name
}

// Email returns the merchant's contact email.
func (m *Merchant) Email() string {
	return m.email
}

// Phone returns the contact phone number, empty if none was provided.
func (m *Merchant) Phone() string {
	return m.phone
}

// BusinessName returns the registered business name.
func (m *Merchant) BusinessName() string {
	return m.businessName
}

// BusinessAddress returns the business address used as the pickup stop
// on delivery tasks.
func (m *Merchant) BusinessAddress() string {
	return m.businessAddress
}

// Status returns the current verification status.
func (m *Merchant) Status() Status {
	return m.status
}

// RejectionReason returns the reason recorded with a rejection verdict.
// Empty unless the merchant is rejected.
func (m *Merchant) RejectionReason() string {
	return m.rejectionReason
}

// IsApproved reports whether the merchant may list food.
func (m *Merchant) IsApproved() bool {
	return m.status == Approved
}

// Approve records an approval verdict.
//
// Business rules:
//   - The merchant must be in Pending status
//   - Any previously staged rejection reason is cleared
//
// Returns an InvalidStateError if the merchant already has a verdict.
func (m *Merchant) Approve() error {
	newStatus, err := m.status.Approve()
	if err != nil {
		return err
	}

	m.status = newStatus
	m.rejectionReason = ""
	return nil
}

// Reject records a rejection verdict with the supplied reason.
//
// Business rules:
//   - The merchant must be in Pending status
//   - The reason must be non-blank
//
// The reason check runs first so a blank reason never consumes the single
// allowed transition. Returns a ValueIsRequiredError for a blank reason and
// an InvalidStateError if the merchant already has a verdict.
func (m *Merchant) Reject(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := m.status.Reject()
	if err != nil {
		return err
	}

	m.status = newStatus
	m.rejectionReason = reason
	return nil
}

func (m *Merchant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Merchant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Merchant) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	m.email = email
	return nil
}

func (m *Merchant) setBusinessName(businessName string) error {
	if businessName == "" {
		return errs.NewValueIsRequiredError("businessName")
	}
	m.businessName = businessName
	return nil
}
