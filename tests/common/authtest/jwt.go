//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"campsite-booking/internal/domain/user"
	"campsite-booking/internal/pkg/config"
	"campsite-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens with the same secret the app under test verifies with.
type JWTHelper struct {
	service *jwt.Service
	expired *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{
		service: jwt.NewService(cfg.Secret, cfg.AccessTokenDuration, cfg.RefreshTokenDuration),
		// issued an hour in the past, so no clock leeway can rescue it
		expired: jwt.NewService(cfg.Secret, -time.Hour, -time.Hour),
	}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.expired.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
