package queries_test

import (
	"testing"

	"feedback/internal/core/application/usecases/queries"
	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/listing"
	"feedback/internal/core/domain/model/merchant"
	"feedback/internal/core/domain/model/user"
	"feedback/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetMerchantsByStatusQuery_Valid(t *testing.T) {
	query, err := queries.NewGetMerchantsByStatusQuery(merchant.Pending)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, merchant.Pending, query.Status())
}

func TestNewGetMerchantsByStatusQuery_UnknownStatus_Error(t *testing.T) {
	_, err := queries.NewGetMerchantsByStatusQuery(merchant.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetMerchantsByStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetMerchantsByStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMerchantsByStatusQueryIsNotConstructed)
}

func TestNewGetListingsQuery_UnknownStatusMeansNoFilter(t *testing.T) {
	query, err := queries.NewGetListingsQuery(listing.Unknown, false)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, listing.Unknown, query.Status())
}

func TestNewGetListingsQuery_InvalidStatus_Error(t *testing.T) {
	_, err := queries.NewGetListingsQuery(listing.Status(42), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetAvailableTasksQuery_Valid(t *testing.T) {
	query := queries.NewGetAvailableTasksQuery()
	require.NoError(t, query.Validate())
}

func TestGetAvailableTasksQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAvailableTasksQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAvailableTasksQueryIsNotConstructed)
}

func TestNewGetUsersQuery_UnknownRoleMeansNoFilter(t *testing.T) {
	query, err := queries.NewGetUsersQuery(user.RoleUnknown, "alice")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, user.RoleUnknown, query.Role())
	assert.Equal(t, "alice", query.Search())
}

func TestNewGetUsersQuery_InvalidRole_Error(t *testing.T) {
	_, err := queries.NewGetUsersQuery(user.Role(42), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetUserQuery_Valid(t *testing.T) {
	userID := kernel.NewUUID()
	query, err := queries.NewGetUserQuery(userID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, userID, query.UserID())
}

func TestNewGetUserQuery_ZeroID_Error(t *testing.T) {
	_, err := queries.NewGetUserQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetUserQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUserQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUserQueryIsNotConstructed)
}
