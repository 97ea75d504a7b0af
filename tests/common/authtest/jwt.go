//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"collective-lifecycle/internal/domain/user"
	"collective-lifecycle/internal/pkg/config"
	"collective-lifecycle/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role, offererID *uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration)
	token, err := service.GenerateAccessToken(jwt.Subject{UserID: userID, Role: role, OffererID: offererID})
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, time.Millisecond)
	token, err := service.GenerateAccessToken(jwt.Subject{UserID: userID, Role: role})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
