// Package ports defines repository and outbound interfaces for the
// marketplace domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/merchant"
)

// MerchantRepository defines the persistence contract for merchant aggregates.
type MerchantRepository interface {
	// Add persists a new merchant aggregate to storage.
	Add(ctx context.Context, merchant *merchant.Merchant) error

	// Update persists changes to an existing merchant aggregate.
	Update(ctx context.Context, merchant *merchant.Merchant) error

	// Get retrieves a merchant aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no merchant has the id.
	Get(ctx context.Context, id kernel.UUID) (*merchant.Merchant, error)
}
