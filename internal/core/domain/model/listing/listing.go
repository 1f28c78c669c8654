package listing

import (
	"errors"
	"fmt"
	"time"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/errs"
)

var (
	// ErrListingIsNotConstructed is returned when a Listing instance was not
	// created through the NewListing or RestoreListing factory methods.
	ErrListingIsNotConstructed = errors.New("Listing must be created via NewListing constructor")
)

// Listing represents one batch of surplus food published by a merchant.
// It is the aggregate root for the compliance workflow: admins flag listings
// that break guidelines and take repeat offenders down.
//
// Listing maintains these invariants:
//   - Belongs to exactly one merchant (the owner never changes)
//   - Title is never empty and quantity is positive
//   - complianceIssues is non-empty if and only if the listing is
//     non-compliant
//   - Compliance can only be flagged while the listing is active
//   - Removal is terminal
type Listing struct {
	id               kernel.UUID
	merchantID       kernel.UUID
	title            string
	description      string
	quantity         int
	images           []string
	bestBefore       time.Time
	status           Status
	isCompliant      bool
	complianceIssues []string

	isConstructed bool
}

// NewListing creates an active, compliant Listing owned by the given
// merchant. Whether that merchant is approved to list is the caller's
// responsibility; the aggregate only guards its own fields.
func NewListing(
	id, merchantID kernel.UUID,
	title, description string,
	quantity int,
	images []string,
	bestBefore time.Time,
) (*Listing, error) {
	l := &Listing{
		status:        Active,
		isCompliant:   true,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setMerchantID(merchantID),
		l.setTitle(title),
		l.setQuantity(quantity),
		l.setBestBefore(bestBefore),
	); err != nil {
		return nil, err
	}

	l.description = description
	l.images = append([]string(nil), images...)
	return l, nil
}

// RestoreListing reconstructs a Listing from persistent storage.
// Enforces the compliance invariant so corrupt rows cannot enter the domain.
func RestoreListing(
	id, merchantID kernel.UUID,
	title, description string,
	quantity int,
	images []string,
	bestBefore time.Time,
	status Status,
	isCompliant bool,
	complianceIssues []string,
) (*Listing, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	if isCompliant && len(complianceIssues) > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"complianceIssues",
			errors.New("compliant listing must not carry issues"),
		)
	}
	if !isCompliant && len(complianceIssues) == 0 {
		return nil, errs.NewValueIsRequiredError("complianceIssues")
	}

	l, err := NewListing(id, merchantID, title, description, quantity, images, bestBefore)
	if err != nil {
		return nil, err
	}

	l.status = status
	l.isCompliant = isCompliant
	l.complianceIssues = append([]string(nil), complianceIssues...)
	return l, nil
}

// Validate ensures the Listing instance was properly constructed.
func (l *Listing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrListingIsNotConstructed
	}
	return nil
}

// IsEqual compares two listings by their unique identifiers.
func (l *Listing) IsEqual(other *Listing) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the listing's unique identifier.
func (l *Listing) ID() kernel.UUID {
	return l.id
}

// MerchantID returns the owning merchant's identifier.
func (l *Listing) MerchantID() kernel.UUID {
	return l.merchantID
}

// Title returns the listing title.
func (l *Listing) Title() string {
	return l.title
}

// Description returns the listing description.
func (l *Listing) Description() string {
	return l.description
}

// Quantity returns the number of portions or packages on offer.
func (l *Listing) Quantity() int {
	return l.quantity
}

// Images returns a copy of the listing's image URLs.
func (l *Listing) Images() []string {
	return append([]string(nil), l.images...)
}

// BestBefore returns the time after which the food should no longer be
// offered. The scheduled sweep expires listings past this moment.
func (l *Listing) BestBefore() time.Time {
	return l.bestBefore
}

// Status returns the current lifecycle status.
func (l *Listing) Status() Status {
	return l.status
}

// IsCompliant reports whether the listing currently meets the guidelines.
func (l *Listing) IsCompliant() bool {
	return l.isCompliant
}

// ComplianceIssues returns a copy of the recorded guideline violations.
// Empty exactly when the listing is compliant.
func (l *Listing) ComplianceIssues() []string {
	return append([]string(nil), l.complianceIssues...)
}

// MarkNonCompliant flags the listing as violating guidelines.
//
// Business rules:
//   - At least one issue must be supplied, and none may be blank
//   - The listing must be active
//
// On failure the compliance state is left exactly as it was.
func (l *Listing) MarkNonCompliant(issues []string) error {
	if len(issues) == 0 {
		return errs.NewValueIsRequiredError("issues")
	}
	for _, issue := range issues {
		if issue == "" {
			return errs.NewValueIsInvalidErrorWithCause("issues", errors.New("blank issue"))
		}
	}

	if l.status != Active {
		return errs.NewInvalidStateErrorWithCause(
			"listing status",
			fmt.Errorf("%s is not a valid status to mark non-compliant", l.status),
		)
	}

	l.isCompliant = false
	l.complianceIssues = append([]string(nil), issues...)
	return nil
}

// Remove takes the listing down permanently.
// Allowed from Active or Expired; fails with an InvalidStateError once the
// listing is already removed.
func (l *Listing) Remove() error {
	newStatus, err := l.status.Remove()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

// Expire marks an active listing as past its best-before time.
// Invoked by the scheduled sweep, not by user action.
func (l *Listing) Expire() error {
	newStatus, err := l.status.Expire()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

func (l *Listing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Listing) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	l.merchantID = merchantID
	return nil
}

func (l *Listing) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	l.title = title
	return nil
}

func (l *Listing) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	l.quantity = quantity
	return nil
}

func (l *Listing) setBestBefore(bestBefore time.Time) error {
	if bestBefore.IsZero() {
		return errs.NewValueIsRequiredError("bestBefore")
	}
	l.bestBefore = bestBefore
	return nil
}
