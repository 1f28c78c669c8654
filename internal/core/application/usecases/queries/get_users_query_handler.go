package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/user"
)

// GetUsersQueryHandler reads account rows straight from the database.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for user management reads.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// Handle executes the query and returns account rows sorted by name.
func (h GetUsersQueryHandler) Handle(
	ctx context.Context,
	query GetUsersQuery,
) ([]GetUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			email,
			role,
			active
		FROM users
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if query.Role() != user.RoleUnknown {
		sql += " AND role = ?"
		args = append(args, int(query.Role()))
	}
	if query.Search() != "" {
		sql += " AND (name ILIKE ? OR email ILIKE ?)"
		pattern := "%" + query.Search() + "%"
		args = append(args, pattern, pattern)
	}
	sql += " ORDER BY name"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]GetUsersQueryResponse, 0)

	for rows.Next() {
		var response GetUsersQueryResponse
		var id uuid.UUID
		var role int

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Email,
			&role,
			&response.Active,
		)
		if err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = userID
		response.Role = user.Role(role).String()

		users = append(users, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
