package ports

import (
	"context"
	"time"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/listing"
)

// ListingRepository defines the persistence contract for listing aggregates.
type ListingRepository interface {
	// Add persists a new listing aggregate to storage.
	Add(ctx context.Context, listing *listing.Listing) error

	// Update persists changes to an existing listing aggregate.
	Update(ctx context.Context, listing *listing.Listing) error

	// Get retrieves a listing aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no listing has the id.
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)

	// GetAllPastBestBefore retrieves active listings whose best-before time
	// is at or before asOf. Used by the expiry sweep.
	GetAllPastBestBefore(ctx context.Context, asOf time.Time) ([]*listing.Listing, error)
}
