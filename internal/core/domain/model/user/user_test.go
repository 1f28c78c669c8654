package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/errs"
)

func newCustomer(t *testing.T) *User {
	t.Helper()
	u, err := NewUser(kernel.NewUUID(), "Sarah Chen", "sarah@example.com", RoleCustomer)
	require.NoError(t, err)
	return u
}

func Test_NewUser(t *testing.T) {
	// Given
	id := kernel.NewUUID()

	// When
	u, err := NewUser(id, "Sarah Chen", "sarah@example.com", RoleCustomer)

	// Then
	require.NoError(t, err)
	assert.NoError(t, u.Validate())
	assert.Equal(t, id, u.ID())
	assert.Equal(t, "Sarah Chen", u.Name())
	assert.Equal(t, "sarah@example.com", u.Email())
	assert.Equal(t, RoleCustomer, u.Role())
	assert.True(t, u.IsActive())
}

func Test_NewUser_Validation(t *testing.T) {
	// Given
	id := kernel.NewUUID()

	tests := []struct {
		name     string
		id       kernel.UUID
		userName string
		email    string
		role     Role
	}{
		{"empty id", kernel.UUID{}, "Sarah Chen", "sarah@example.com", RoleCustomer},
		{"empty name", id, "", "sarah@example.com", RoleCustomer},
		{"empty email", id, "Sarah Chen", "", RoleCustomer},
		{"unknown role", id, "Sarah Chen", "sarah@example.com", RoleUnknown},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// When
			u, err := NewUser(test.id, test.userName, test.email, test.role)

			// Then
			assert.Nil(t, u)
			assert.Error(t, err)
		})
	}
}

func Test_User_ChangeRole(t *testing.T) {
	// Given
	u := newCustomer(t)

	// When
	err := u.ChangeRole(RoleDriver)

	// Then
	assert.NoError(t, err)
	assert.Equal(t, RoleDriver, u.Role())
}

func Test_User_ChangeRole_SameRole(t *testing.T) {
	// Given
	u := newCustomer(t)

	// When
	err := u.ChangeRole(RoleCustomer)

	// Then
	assert.ErrorIs(t, err, errs.ErrNoChange)
	assert.Equal(t, RoleCustomer, u.Role())
}

func Test_User_ChangeRole_InvalidRole(t *testing.T) {
	// Given
	u := newCustomer(t)

	// When
	err := u.ChangeRole(RoleUnknown)

	// Then
	assert.Error(t, err)
	assert.Equal(t, RoleCustomer, u.Role())
}

func Test_User_SetActive(t *testing.T) {
	// Given
	u := newCustomer(t)

	// When
	u.SetActive(false)

	// Then
	assert.False(t, u.IsActive())

	// When: repeating the same value changes nothing
	u.SetActive(false)

	// Then
	assert.False(t, u.IsActive())

	// When
	u.SetActive(true)

	// Then
	assert.True(t, u.IsActive())
}

func Test_RestoreUser(t *testing.T) {
	// Given
	id := kernel.NewUUID()

	// When
	u, err := RestoreUser(id, "Mike Torres", "mike@example.com", RoleDriver, false)

	// Then
	require.NoError(t, err)
	assert.Equal(t, RoleDriver, u.Role())
	assert.False(t, u.IsActive())
}

func Test_RoleFromString(t *testing.T) {
	// Given
	tests := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"admin", RoleAdmin, true},
		{"merchant", RoleMerchant, true},
		{"customer", RoleCustomer, true},
		{"driver", RoleDriver, true},
		{"moderator", RoleUnknown, false},
		{"", RoleUnknown, false},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			// When
			role, err := RoleFromString(test.input)

			// Then
			assert.Equal(t, test.want, role)
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func Test_User_Validate_NotConstructed(t *testing.T) {
	// Given
	var u User

	// When
	err := u.Validate()

	// Then
	assert.ErrorIs(t, err, ErrUserIsNotConstructed)
}
