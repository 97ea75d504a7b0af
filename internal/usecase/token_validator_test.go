//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/domain/user"
	"collective-lifecycle/internal/pkg/jwt"
	"collective-lifecycle/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	validator := usecase.NewTokenValidator(svc)
	offererID := uuid.New()
	sub := jwt.Subject{UserID: uuid.New(), Role: user.RolePro, OffererID: &offererID}

	t.Run("access token yields a pro actor", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(sub)
		require.NoError(t, err)

		actor, err := validator.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, collective.ActorPro, actor.Kind)
		assert.Equal(t, sub.UserID, actor.UserID)
		assert.Equal(t, user.RolePro, actor.Role)
		assert.Equal(t, &offererID, actor.OffererID)
	})

	t.Run("refresh token is rejected", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(sub)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)

		assert.ErrorIs(t, err, usecase.ErrNotAccessToken)
	})

	t.Run("pro token without offerer", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(jwt.Subject{UserID: uuid.New(), Role: user.RolePro})
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)

		assert.ErrorIs(t, err, user.ErrMissingOfferer)
	})

	t.Run("redactor needs no offerer", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(jwt.Subject{UserID: uuid.New(), Role: user.RoleRedactor})
		require.NoError(t, err)

		actor, err := validator.ValidateToken(token)

		require.NoError(t, err)
		assert.Nil(t, actor.OffererID)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		token, err := jwt.NewService("other-secret", time.Hour).GenerateAccessToken(sub)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
