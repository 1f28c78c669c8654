package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/user"
	"feedback/internal/pkg/errs"
)

// GetUserQueryHandler reads a single account row straight from the database.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for single-account reads.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the query and returns the matching account row.
func (h GetUserQueryHandler) Handle(
	ctx context.Context,
	query GetUserQuery,
) (GetUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			role,
			active
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Row()

	var response GetUserQueryResponse
	var id uuid.UUID
	var role int

	err := row.Scan(
		&id,
		&response.Name,
		&response.Email,
		&role,
		&response.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetUserQueryResponse{}, errs.NewObjectNotFoundError("user", query.UserID().String())
	}
	if err != nil {
		return GetUserQueryResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetUserQueryResponse{}, err
	}
	response.ID = userID
	response.Role = user.Role(role).String()

	return response, nil
}

// GetUserQueryResponse represents a single account row.
type GetUserQueryResponse struct {
	ID     kernel.UUID
	Name   string
	Email  string
	Role   string
	Active bool
}
