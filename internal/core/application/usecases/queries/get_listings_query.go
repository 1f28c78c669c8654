package queries

import (
	"errors"
	"time"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/listing"
	"feedback/internal/pkg/guard"
)

var ErrGetListingsQueryIsNotConstructed = errors.New(
	"GetListingsQuery must be created via NewGetListingsQuery constructor",
)

// GetListingsQuery retrieves listings for the marketplace and the
// moderation console. The status filter is optional; passing
// listing.Unknown returns listings in every status. The compliance filter
// narrows the result to flagged listings only.
type GetListingsQuery struct {
	status           listing.Status
	onlyNonCompliant bool

	guard guard.ConstructorGuard
}

// NewGetListingsQuery creates a listings query.
// status may be listing.Unknown to skip the status filter.
func NewGetListingsQuery(status listing.Status, onlyNonCompliant bool) (GetListingsQuery, error) {
	if status != listing.Unknown {
		if err := status.Validate(); err != nil {
			return GetListingsQuery{}, err
		}
	}

	return GetListingsQuery{
		status:           status,
		onlyNonCompliant: onlyNonCompliant,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetListingsQuery) Validate() error {
	return q.guard.Validate(ErrGetListingsQueryIsNotConstructed)
}

// Status returns the status filter, listing.Unknown when unfiltered.
func (q GetListingsQuery) Status() listing.Status {
	return q.status
}

// OnlyNonCompliant reports whether only flagged listings are wanted.
func (q GetListingsQuery) OnlyNonCompliant() bool {
	return q.onlyNonCompliant
}

// GetListingsQueryResponse represents one listing row in the read model.
type GetListingsQueryResponse struct {
	ID               kernel.UUID
	MerchantID       kernel.UUID
	Title            string
	Description      string
	Quantity         int
	BestBefore       time.Time
	Status           string
	IsCompliant      bool
	ComplianceIssues []string
}
