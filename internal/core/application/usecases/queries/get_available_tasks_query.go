package queries

import (
	"context"
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/guard"
)

var ErrGetAvailableTasksQueryIsNotConstructed = errors.New(
	"GetAvailableTasksQuery must be created via NewGetAvailableTasksQuery constructor",
)

// GetAvailableTasksQuery retrieves the delivery tasks no driver has claimed
// yet. This is the hottest read in the system: every driver polls it, so
// the handler serves it through a cache in front of the database.
type GetAvailableTasksQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableTasksQuery creates a query for the driver task board.
func NewGetAvailableTasksQuery() GetAvailableTasksQuery {
	return GetAvailableTasksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableTasksQueryIsNotConstructed)
}

// GetAvailableTasksQueryResponse represents one task card on the driver
// board.
type GetAvailableTasksQueryResponse struct {
	ID               kernel.UUID `json:"id"`
	OrderID          kernel.UUID `json:"orderId"`
	MerchantName     string      `json:"merchantName"`
	MerchantAddress  string      `json:"merchantAddress"`
	MerchantPhone    string      `json:"merchantPhone"`
	RecipientName    string      `json:"recipientName"`
	RecipientAddress string      `json:"recipientAddress"`
	RecipientPhone   string      `json:"recipientPhone"`
	RecipientType    string      `json:"recipientType"`
	FoodItems        []string    `json:"foodItems"`
	Priority         string      `json:"priority"`
	PickupTime       string      `json:"pickupTime"`
	ExpiryTime       string      `json:"expiryTime"`
}

// AvailableTasksCache sits in front of the task board read.
// Get returns ObjectNotFoundError on a cache miss; Invalidate drops the
// cached board, called after a task is claimed so drivers stop seeing it.
type AvailableTasksCache interface {
	Get(ctx context.Context) ([]GetAvailableTasksQueryResponse, error)
	Set(ctx context.Context, tasks []GetAvailableTasksQueryResponse) error
	Invalidate(ctx context.Context) error
}
