// Package listingrepo provides data transfer objects and mapping functions for listing persistence.
// Listing image URLs and compliance issues are stored as JSON text columns so the
// read side can scan them without joins.
package listingrepo

import (
	"encoding/json"
	"time"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/listing"

	"github.com/google/uuid"
)

// ListingDTO represents the database structure for persisting listing aggregates.
type ListingDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title            string    `gorm:"type:varchar(255);not null"`
	Description      string    `gorm:"type:text"`
	Quantity         int       `gorm:"type:int;not null"`
	Images           string    `gorm:"type:text"`
	BestBefore       time.Time `gorm:"not null;index"`
	Status           int       `gorm:"type:int;not null;index"`
	IsCompliant      bool      `gorm:"not null"`
	ComplianceIssues string    `gorm:"type:text"`
}

// TableName specifies the database table name for listing entities.
func (ListingDTO) TableName() string {
	return "listings"
}

// fromDomain converts a listing domain aggregate to its database representation.
func fromDomain(listing *listing.Listing) (ListingDTO, error) {
	images, err := json.Marshal(listing.Images())
	if err != nil {
		return ListingDTO{}, err
	}

	issues, err := json.Marshal(listing.ComplianceIssues())
	if err != nil {
		return ListingDTO{}, err
	}

	return ListingDTO{
		ID:               listing.ID().Bytes(),
		MerchantID:       listing.MerchantID().Bytes(),
		Title:            listing.Title(),
		Description:      listing.Description(),
		Quantity:         listing.Quantity(),
		Images:           string(images),
		BestBefore:       listing.BestBefore(),
		Status:           int(listing.Status()),
		IsCompliant:      listing.IsCompliant(),
		ComplianceIssues: string(issues),
	}, nil
}

// toDomain converts a database DTO to a listing domain aggregate.
// Reconstructs the aggregate including its compliance state using RestoreListing.
func toDomain(dto ListingDTO) (*listing.Listing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	var images []string
	if dto.Images != "" {
		if err = json.Unmarshal([]byte(dto.Images), &images); err != nil {
			return nil, err
		}
	}

	var issues []string
	if dto.ComplianceIssues != "" {
		if err = json.Unmarshal([]byte(dto.ComplianceIssues), &issues); err != nil {
			return nil, err
		}
	}

	return listing.RestoreListing(
		id,
		merchantID,
		dto.Title,
		dto.Description,
		dto.Quantity,
		images,
		dto.BestBefore,
		listing.Status(dto.Status),
		dto.IsCompliant,
		issues,
	)
}
