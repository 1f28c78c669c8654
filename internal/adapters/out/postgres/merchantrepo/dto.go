// Package merchantrepo provides data transfer objects and mapping functions for merchant persistence.
// This package implements the repository pattern for the merchant domain aggregate, handling
// the conversion between domain entities and database representations.
package merchantrepo

import (
	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/merchant"

	"github.com/google/uuid"
)

// MerchantDTO represents the database structure for persisting merchant aggregates.
// Maps merchant domain entities to relational database tables with indexing
// for efficient querying by verification status.
type MerchantDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Email           string    `gorm:"type:varchar(255);not null"`
	Phone           string    `gorm:"type:varchar(64)"`
	BusinessName    string    `gorm:"type:varchar(255);not null"`
	BusinessAddress string    `gorm:"type:varchar(512);not null"`
	Status          int       `gorm:"type:int;not null;index"`
	RejectionReason string    `gorm:"type:text"`
}

// TableName specifies the database table name for merchant entities.
// Overrides GORM's default naming convention to use "merchants".
func (MerchantDTO) TableName() string {
	return "merchants"
}

// fromDomain converts a merchant domain aggregate to its database representation.
func fromDomain(merchant *merchant.Merchant) MerchantDTO {
	return MerchantDTO{
		ID:              merchant.ID().Bytes(),
		Name:            merchant.Name(),
		Email:           merchant.Email(),
		Phone:           merchant.Phone(),
		BusinessName:    merchant.BusinessName(),
		BusinessAddress: merchant.BusinessAddress(),
		Status:          int(merchant.Status()),
		RejectionReason: merchant.RejectionReason(),
	}
}

// toDomain converts a database DTO to a merchant domain aggregate.
// Reconstructs the aggregate including its verification verdict using RestoreMerchant.
func toDomain(dto MerchantDTO) (*merchant.Merchant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return merchant.RestoreMerchant(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.BusinessName,
		dto.BusinessAddress,
		merchant.Status(dto.Status),
		dto.RejectionReason,
	)
}
