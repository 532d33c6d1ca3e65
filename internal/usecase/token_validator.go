package usecase

import (
	"campsite-booking/internal/domain/policy"
	"campsite-booking/internal/domain/user"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/pkg/jwt"
)

var ErrNotAccessToken = errs.New("token is not an access token")

// TokenValidator turns a bearer token into the request's actor
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (policy.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateAccessToken(tokenString string) (policy.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return policy.Actor{}, err
	}

	// a refresh token must never authorize an API call
	if claims.TokenType != jwt.TokenTypeAccess {
		return policy.Actor{}, ErrNotAccessToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return policy.Actor{}, err
	}

	return policy.NewActor(claims.UserID, role), nil
}
