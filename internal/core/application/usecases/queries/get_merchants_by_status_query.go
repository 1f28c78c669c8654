// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/merchant"
	"feedback/internal/pkg/guard"
)

var ErrGetMerchantsByStatusQueryIsNotConstructed = errors.New(
	"GetMerchantsByStatusQuery must be created via NewGetMerchantsByStatusQuery constructor",
)

// GetMerchantsByStatusQuery retrieves merchants in a verification status.
// Backs the admin verification console: pending applications to review,
// approved and rejected accounts for the audit trail.
type GetMerchantsByStatusQuery struct {
	status merchant.Status

	guard guard.ConstructorGuard
}

// NewGetMerchantsByStatusQuery creates a query for one verification status.
func NewGetMerchantsByStatusQuery(status merchant.Status) (GetMerchantsByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetMerchantsByStatusQuery{}, err
	}

	return GetMerchantsByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMerchantsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetMerchantsByStatusQueryIsNotConstructed)
}

// Status returns the verification status to filter by.
func (q GetMerchantsByStatusQuery) Status() merchant.Status {
	return q.status
}

// GetMerchantsByStatusQueryResponse represents one merchant row in the
// verification console read model.
type GetMerchantsByStatusQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Email           string
	Phone           string
	BusinessName    string
	BusinessAddress string
	Status          string
	RejectionReason string
}
