//go:build unit

package api_test

import (
	"errors"

	"campsite-booking/internal/domain/policy"
	"campsite-booking/internal/domain/user"
	"campsite-booking/internal/handler/middleware"
	usecasemock "campsite-booking/tests/mock/usecase"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

const (
	guestToken = "guest-token"
	ownerToken = "owner-token"
	adminToken = "admin-token"
)

type testActors struct {
	guest policy.Actor
	owner policy.Actor
	admin policy.Actor
}

// newTestAuth wires the real auth middleware to a validator that knows three fixed tokens.
func newTestAuth(ctrl *gomock.Controller) (*middleware.AuthMiddleware, testActors) {
	actors := testActors{
		guest: policy.NewActor(uuid.New(), user.RoleGuest),
		owner: policy.NewActor(uuid.New(), user.RoleOwner),
		admin: policy.NewActor(uuid.New(), user.RoleAdmin),
	}
	byToken := map[string]policy.Actor{
		guestToken: actors.guest,
		ownerToken: actors.owner,
		adminToken: actors.admin,
	}

	validator := usecasemock.NewMockTokenValidator(ctrl)
	validator.EXPECT().ValidateAccessToken(gomock.Any()).DoAndReturn(func(token string) (policy.Actor, error) {
		if a, ok := byToken[token]; ok {
			return a, nil
		}
		return policy.Actor{}, errors.New("token is malformed")
	}).AnyTimes()

	return middleware.NewAuthMiddleware(validator), actors
}
