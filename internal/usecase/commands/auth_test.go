//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"campsite-booking/internal/domain/user"
	reqdto "campsite-booking/internal/handler/dto/request"
	"campsite-booking/internal/infra"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/pkg/jwt"
	"campsite-booking/internal/pkg/password"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/tests/common/builder"
	queriesmock "campsite-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	h         *txHarness
	readStore *queriesmock.MockUserReadStore
	jwt       *jwt.Service
	cmds      commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = newTxHarness(s.ctrl)
	s.readStore = queriesmock.NewMockUserReadStore(s.ctrl)
	s.jwt = jwt.NewService("test-secret-key", 15*time.Minute, 24*time.Hour)
	s.cmds = commands.NewAuthCommands(s.h.uow, s.readStore, s.jwt, s.h.clock)
}

func TestAuthCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestRegister() {
	ctx := context.Background()

	s.Run("success: password is stored hashed", func() {
		s.SetupTest()
		req := builder.NewUserBuilder().AsOwner().BuildRegisterDTO()

		var stored *user.User
		s.h.users.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, u *user.User) error {
				stored = u
				return nil
			})

		id, err := s.cmds.Register(ctx, req)

		s.Require().NoError(err)
		s.Equal(stored.ID(), id)
		s.Equal(user.RoleOwner, stored.Role())
		s.NotEqual(req.Password, stored.PasswordHash())
		s.NoError(password.ComparePassword(stored.PasswordHash(), req.Password))
	})

	s.Run("error: email already registered", func() {
		s.SetupTest()
		s.h.users.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).Return(
			infra.WrapRepoErr("failed to create user",
				&pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintUserEmail}))

		_, err := s.cmds.Register(ctx, builder.NewUserBuilder().BuildRegisterDTO())

		s.True(errs.Is(err, commands.ErrEmailTaken))
	})

	s.Run("error: admin cannot be self-assigned", func() {
		s.SetupTest()
		req := builder.NewUserBuilder().BuildRegisterDTO()
		req.Role = "admin"

		_, err := s.cmds.Register(ctx, req)

		s.True(errs.Is(err, commands.ErrValidation))
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()
	hash, err := password.HashPasswordWithCost("password123", bcrypt.MinCost)
	s.Require().NoError(err)

	loginReq := reqdto.LoginRequest{Email: "guest@example.com", Password: "password123"}

	s.Run("success: tokens carry the stored role and last login is recorded", func() {
		s.SetupTest()
		view := builder.NewUserBuilder().AsOwner().BuildView()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), "guest@example.com").Return(view, hash, nil)
		s.h.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Nil(), view.ID, s.h.clock.Now()).Return(nil)

		result, err := s.cmds.Login(ctx, loginReq)

		s.Require().NoError(err)
		s.Equal(view.ID, result.UserID)
		claims, err := s.jwt.ValidateToken(result.TokenPair.AccessToken)
		s.Require().NoError(err)
		s.Equal(jwt.TokenTypeAccess, claims.TokenType)
		s.Equal("owner", claims.Role)
	})

	s.Run("success: last login failure does not fail the login", func() {
		s.SetupTest()
		view := builder.NewUserBuilder().BuildView()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, hash, nil)
		s.h.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Nil(), view.ID, gomock.Any()).Return(assert.AnError)

		_, err := s.cmds.Login(ctx, loginReq)

		s.NoError(err)
	})

	s.Run("error: wrong password and unknown email look the same", func() {
		s.SetupTest()
		view := builder.NewUserBuilder().BuildView()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), "guest@example.com").Return(view, hash, nil)
		s.readStore.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, errWrong := s.cmds.Login(ctx, reqdto.LoginRequest{Email: "guest@example.com", Password: "wrongpass1"})
		_, errUnknown := s.cmds.Login(ctx, reqdto.LoginRequest{Email: "nobody@example.com", Password: "password123"})

		s.True(errs.Is(errWrong, commands.ErrInvalidCredentials))
		s.True(errs.Is(errUnknown, commands.ErrInvalidCredentials))
	})

	s.Run("error: inactive account", func() {
		s.SetupTest()
		view := builder.NewUserBuilder().AsInactive().BuildView()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, hash, nil)

		_, err := s.cmds.Login(ctx, loginReq)

		s.True(errs.Is(err, commands.ErrUserInactive))
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	ctx := context.Background()

	s.Run("success: role is re-read from storage", func() {
		s.SetupTest()
		view := builder.NewUserBuilder().AsOwner().BuildView()
		refresh, err := s.jwt.GenerateRefreshToken(view.ID, user.RoleGuest)
		s.Require().NoError(err)
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		pair, err := s.cmds.RefreshToken(ctx, refresh)

		s.Require().NoError(err)
		claims, err := s.jwt.ValidateToken(pair.AccessToken)
		s.Require().NoError(err)
		s.Equal("owner", claims.Role)
	})

	s.Run("error: access token is not accepted as refresh token", func() {
		s.SetupTest()
		access, err := s.jwt.GenerateAccessToken(uuid.New(), user.RoleGuest)
		s.Require().NoError(err)

		_, err = s.cmds.RefreshToken(ctx, access)

		s.True(errs.Is(err, commands.ErrTokenValidation))
	})

	s.Run("error: garbage token", func() {
		s.SetupTest()
		_, err := s.cmds.RefreshToken(ctx, "not-a-jwt")
		s.True(errs.Is(err, commands.ErrTokenValidation))
	})

	s.Run("error: deleted user", func() {
		s.SetupTest()
		id := uuid.New()
		refresh, err := s.jwt.GenerateRefreshToken(id, user.RoleGuest)
		s.Require().NoError(err)
		s.readStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err = s.cmds.RefreshToken(ctx, refresh)

		s.True(errs.Is(err, commands.ErrUserNotFound))
	})
}
