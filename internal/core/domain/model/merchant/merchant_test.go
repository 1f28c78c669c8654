package merchant_test

import (
	"testing"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/merchant"
	"feedback/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingMerchant(t *testing.T) *merchant.Merchant {
	t.Helper()

	m, err := merchant.NewMerchant(
		kernel.NewUUID(),
		"Lisa Wong",
		"lisa@oliveg.example",
		"+1 555 0134",
		"Olive Garden Restaurant",
		"123 Main St, Klang",
	)
	require.NoError(t, err)
	return m
}

func TestNewMerchant(t *testing.T) {
	t.Run("should create pending merchant", func(t *testing.T) {
		m := newPendingMerchant(t)

		assert.Equal(t, merchant.Pending, m.Status())
		assert.Empty(t, m.RejectionReason())
		assert.False(t, m.IsApproved())
		require.NoError(t, m.Validate())
	})

	t.Run("should reject empty identity fields", func(t *testing.T) {
		_, err := merchant.NewMerchant(kernel.NewUUID(), "", "", "", "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := merchant.NewMerchant(kernel.UUID{}, "Lisa", "l@x.example", "", "Biz", "Addr")

		require.Error(t, err)
	})

	t.Run("zero value merchant fails validation", func(t *testing.T) {
		var m merchant.Merchant
		require.ErrorIs(t, m.Validate(), merchant.ErrMerchantIsNotConstructed)
	})
}

func TestMerchant_Approve(t *testing.T) {
	t.Run("should approve pending merchant", func(t *testing.T) {
		// Given
		m := newPendingMerchant(t)

		// When
		err := m.Approve()

		// Then
		require.NoError(t, err)
		assert.Equal(t, merchant.Approved, m.Status())
		assert.True(t, m.IsApproved())
		assert.Empty(t, m.RejectionReason())
	})

	t.Run("should fail after rejection", func(t *testing.T) {
		// Given
		m := newPendingMerchant(t)
		require.NoError(t, m.Reject("Incomplete documents"))

		// When
		err := m.Approve()

		// Then
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, merchant.Rejected, m.Status())
		assert.Equal(t, "Incomplete documents", m.RejectionReason())
	})

	t.Run("should fail when already approved", func(t *testing.T) {
		m := newPendingMerchant(t)
		require.NoError(t, m.Approve())

		require.ErrorIs(t, m.Approve(), errs.ErrInvalidState)
	})
}

func TestMerchant_Reject(t *testing.T) {
	t.Run("should store reason on rejection", func(t *testing.T) {
		// Given
		m := newPendingMerchant(t)

		// When
		err := m.Reject("Incomplete documents")

		// Then
		require.NoError(t, err)
		assert.Equal(t, merchant.Rejected, m.Status())
		assert.Equal(t, "Incomplete documents", m.RejectionReason())
	})

	t.Run("should require a reason and leave state untouched", func(t *testing.T) {
		// Given
		m := newPendingMerchant(t)

		// When
		err := m.Reject("")

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, merchant.Pending, m.Status())
		assert.Empty(t, m.RejectionReason())
	})

	t.Run("should fail when verdict already recorded", func(t *testing.T) {
		m := newPendingMerchant(t)
		require.NoError(t, m.Approve())

		require.ErrorIs(t, m.Reject("late"), errs.ErrInvalidState)
	})
}

func TestRestoreMerchant(t *testing.T) {
	t.Run("should restore rejected merchant with reason", func(t *testing.T) {
		m, err := merchant.RestoreMerchant(
			kernel.NewUUID(), "Lisa", "l@x.example", "", "Biz", "Addr",
			merchant.Rejected, "Incomplete documents",
		)

		require.NoError(t, err)
		assert.Equal(t, merchant.Rejected, m.Status())
		assert.Equal(t, "Incomplete documents", m.RejectionReason())
	})

	t.Run("should enforce reason present iff rejected", func(t *testing.T) {
		_, err := merchant.RestoreMerchant(
			kernel.NewUUID(), "Lisa", "l@x.example", "", "Biz", "Addr",
			merchant.Rejected, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = merchant.RestoreMerchant(
			kernel.NewUUID(), "Lisa", "l@x.example", "", "Biz", "Addr",
			merchant.Approved, "stray reason",
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := merchant.RestoreMerchant(
			kernel.NewUUID(), "Lisa", "l@x.example", "", "Biz", "Addr",
			merchant.Unknown, "",
		)
		require.Error(t, err)
	})
}
