package ports

import (
	"context"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its cart lines.
	Add(ctx context.Context, order *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, order *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
