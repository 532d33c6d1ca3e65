package bootstrap

import (
	"errors"

	"campsite-booking/internal/pkg/config"
	"campsite-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

const minSecretLength = 16

// NewJWTService refuses to start with a guessable secret or a refresh token that dies before its access token.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	c := cfg.JWT
	if len(c.Secret) < minSecretLength {
		return nil, errors.New("JWT_SECRET must be at least 16 characters")
	}
	if c.AccessTokenDuration <= 0 || c.RefreshTokenDuration < c.AccessTokenDuration {
		return nil, errors.New("JWT durations must be positive and the refresh token must outlive the access token")
	}
	return jwt.NewService(c.Secret, c.AccessTokenDuration, c.RefreshTokenDuration), nil
}
