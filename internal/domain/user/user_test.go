//go:build unit

package user_test

import (
	"strings"
	"testing"

	"collective-lifecycle/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid", input: "pro@example.com", want: "pro@example.com"},
		{name: "surrounding spaces are trimmed", input: "  pro@example.com ", want: "pro@example.com"},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
		{name: "no domain", input: "invalid-email", errIs: user.ErrInvalidEmail},
		{name: "no at sign", input: "invalidemail.com", errIs: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := user.NewEmail(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.Value())
		})
	}
}

func TestNewRole(t *testing.T) {
	for _, role := range user.AllRoles() {
		t.Run(role.String(), func(t *testing.T) {
			got, err := user.NewRole(role.String())
			require.NoError(t, err)
			assert.Equal(t, role, got)
		})
	}

	for _, invalid := range []string{"", "viewer", "PRO"} {
		t.Run("invalid "+invalid, func(t *testing.T) {
			_, err := user.NewRole(invalid)
			assert.ErrorIs(t, err, user.ErrInvalidRole)
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	_, err = user.NewPassword(strings.Repeat("a", user.MaxPasswordLength+1))
	assert.ErrorIs(t, err, user.ErrPasswordTooLong)

	p, err := user.NewPassword("password123")
	require.NoError(t, err)
	assert.Equal(t, "password123", p.Value())
}

func TestCheckMembership(t *testing.T) {
	offererID := uuid.New()

	assert.NoError(t, user.CheckMembership(user.RolePro, &offererID))
	assert.ErrorIs(t, user.CheckMembership(user.RolePro, nil), user.ErrMissingOfferer)
	assert.NoError(t, user.CheckMembership(user.RoleRedactor, nil))
	assert.NoError(t, user.CheckMembership(user.RoleAdmin, nil))
}
