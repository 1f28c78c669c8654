// Package userrepo provides data transfer objects and mapping functions for user persistence.
package userrepo

import (
	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Email  string    `gorm:"type:varchar(255);not null"`
	Role   int       `gorm:"type:int;not null;index"`
	Active bool      `gorm:"not null"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(user *user.User) UserDTO {
	return UserDTO{
		ID:     user.ID().Bytes(),
		Name:   user.Name(),
		Email:  user.Email(),
		Role:   int(user.Role()),
		Active: user.IsActive(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, user.Role(dto.Role), dto.Active)
}
