package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/listing"
)

// GetListingsQueryHandler reads listing rows straight from the database.
type GetListingsQueryHandler struct {
	db *gorm.DB
}

// NewGetListingsQueryHandler creates a handler for listing reads.
func NewGetListingsQueryHandler(db *gorm.DB) GetListingsQueryHandler {
	return GetListingsQueryHandler{db: db}
}

// Handle executes the query and returns listing rows, soonest best-before
// first so urgent food surfaces at the top of the marketplace.
func (h GetListingsQueryHandler) Handle(
	ctx context.Context,
	query GetListingsQuery,
) ([]GetListingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			merchant_id,
			title,
			description,
			quantity,
			best_before,
			status,
			is_compliant,
			compliance_issues
		FROM listings
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.Status() != listing.Unknown {
		sql += " AND status = ?"
		args = append(args, int(query.Status()))
	}
	if query.OnlyNonCompliant() {
		sql += " AND is_compliant = false"
	}
	sql += " ORDER BY best_before"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]GetListingsQueryResponse, 0)

	for rows.Next() {
		var response GetListingsQueryResponse
		var id, merchantID uuid.UUID
		var bestBefore time.Time
		var status int
		var issuesJSON string

		err = rows.Scan(
			&id,
			&merchantID,
			&response.Title,
			&response.Description,
			&response.Quantity,
			&bestBefore,
			&status,
			&response.IsCompliant,
			&issuesJSON,
		)
		if err != nil {
			return nil, err
		}

		listingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(merchantID[:])
		if idErr != nil {
			return nil, idErr
		}

		response.ID = listingID
		response.MerchantID = ownerID
		response.BestBefore = bestBefore
		response.Status = listing.Status(status).String()

		if issuesJSON != "" {
			if err = json.Unmarshal([]byte(issuesJSON), &response.ComplianceIssues); err != nil {
				return nil, err
			}
		}

		listings = append(listings, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}
