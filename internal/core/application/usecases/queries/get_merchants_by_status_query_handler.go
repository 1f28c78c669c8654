package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/merchant"
)

// GetMerchantsByStatusQueryHandler reads merchant rows straight from the
// database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetMerchantsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetMerchantsByStatusQueryHandler creates a handler for verification
// console reads. Requires a GORM database connection for query execution.
func NewGetMerchantsByStatusQueryHandler(db *gorm.DB) GetMerchantsByStatusQueryHandler {
	return GetMerchantsByStatusQueryHandler{db: db}
}

// Handle executes the query and returns merchant rows sorted by name.
func (h GetMerchantsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetMerchantsByStatusQuery,
) ([]GetMerchantsByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	merchants := make([]GetMerchantsByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			business_name,
			business_address,
			status,
			rejection_reason
		FROM merchants
		WHERE status = ?
		ORDER BY name
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetMerchantsByStatusQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Email,
			&response.Phone,
			&response.BusinessName,
			&response.BusinessAddress,
			&status,
			&response.RejectionReason,
		)
		if err != nil {
			return nil, err
		}

		merchantID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = merchantID
		response.Status = merchant.Status(status).String()

		merchants = append(merchants, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return merchants, nil
}
