package queries

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/task"
	"feedback/internal/pkg/errs"
)

// GetAvailableTasksQueryHandler serves the driver task board.
// Reads go through the cache first and fall back to the database on a
// miss; the database result repopulates the cache. A nil cache degrades
// to database-only reads.
type GetAvailableTasksQueryHandler struct {
	db    *gorm.DB
	cache AvailableTasksCache
}

// NewGetAvailableTasksQueryHandler creates a handler for the task board.
func NewGetAvailableTasksQueryHandler(
	db *gorm.DB,
	cache AvailableTasksCache,
) GetAvailableTasksQueryHandler {
	return GetAvailableTasksQueryHandler{db: db, cache: cache}
}

// Handle returns the unclaimed tasks, most urgent first.
func (h GetAvailableTasksQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableTasksQuery,
) ([]GetAvailableTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if h.cache != nil {
		cached, err := h.cache.Get(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
	}

	tasks, err := h.readFromDB(ctx)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err = h.cache.Set(ctx, tasks); err != nil {
			return nil, err
		}
	}

	return tasks, nil
}

func (h GetAvailableTasksQueryHandler) readFromDB(
	ctx context.Context,
) ([]GetAvailableTasksQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			merchant_name,
			merchant_address,
			merchant_phone,
			recipient_name,
			recipient_address,
			recipient_phone,
			recipient_kind,
			food_items,
			priority,
			pickup_time,
			expiry_time
		FROM tasks
		WHERE status = ?
		ORDER BY priority DESC, expiry_time
	`, int(task.Available)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]GetAvailableTasksQueryResponse, 0)

	for rows.Next() {
		var response GetAvailableTasksQueryResponse
		var id, orderID uuid.UUID
		var recipientKind, priority int
		var foodItemsJSON string

		err = rows.Scan(
			&id,
			&orderID,
			&response.MerchantName,
			&response.MerchantAddress,
			&response.MerchantPhone,
			&response.RecipientName,
			&response.RecipientAddress,
			&response.RecipientPhone,
			&recipientKind,
			&foodItemsJSON,
			&priority,
			&response.PickupTime,
			&response.ExpiryTime,
		)
		if err != nil {
			return nil, err
		}

		taskID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		linkedOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		response.ID = taskID
		response.OrderID = linkedOrderID
		response.RecipientType = task.RecipientKind(recipientKind).String()
		response.Priority = task.Priority(priority).String()

		if foodItemsJSON != "" {
			if err = json.Unmarshal([]byte(foodItemsJSON), &response.FoodItems); err != nil {
				return nil, err
			}
		}

		tasks = append(tasks, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
