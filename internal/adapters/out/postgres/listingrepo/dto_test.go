package listingrepo

import (
	"testing"
	"time"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDomain_ActiveListing_RoundTrips(t *testing.T) {
	// Given
	id := kernel.NewUUID()
	merchantID := kernel.NewUUID()
	bestBefore := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)

	original, err := listing.NewListing(
		id,
		merchantID,
		"Surprise Bag",
		"Assorted pastries from today's bake",
		3,
		[]string{"https://cdn.example.com/bag.jpg"},
		bestBefore,
	)
	require.NoError(t, err)

	// When
	dto, err := fromDomain(original)
	require.NoError(t, err)

	restored, err := toDomain(dto)
	require.NoError(t, err)

	// Then
	assert.Equal(t, id, restored.ID())
	assert.Equal(t, merchantID, restored.MerchantID())
	assert.Equal(t, original.Title(), restored.Title())
	assert.Equal(t, original.Description(), restored.Description())
	assert.Equal(t, original.Quantity(), restored.Quantity())
	assert.Equal(t, original.Images(), restored.Images())
	assert.True(t, original.BestBefore().Equal(restored.BestBefore()))
	assert.Equal(t, listing.Active, restored.Status())
	assert.True(t, restored.IsCompliant())
}

func TestFromDomain_FlaggedListing_KeepsComplianceIssues(t *testing.T) {
	// Given
	original, err := listing.NewListing(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Day-old Bread",
		"",
		5,
		nil,
		time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	issues := []string{"missing allergen label", "no best-before on photo"}
	require.NoError(t, original.MarkNonCompliant(issues))

	// When
	dto, err := fromDomain(original)
	require.NoError(t, err)

	restored, err := toDomain(dto)
	require.NoError(t, err)

	// Then
	assert.False(t, restored.IsCompliant())
	assert.Equal(t, issues, restored.ComplianceIssues())
	assert.Equal(t, original.Status(), restored.Status())
}
