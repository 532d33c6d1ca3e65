//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"campsite-booking/internal/infra"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLastLoginParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()
	at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		rowsAffected int64
		mockError    error
		wantKind     infra.RepositoryErrorKind
	}{
		{
			name:         "success",
			rowsAffected: 1,
		},
		{
			name:         "unknown user",
			rowsAffected: 0,
			wantKind:     infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateLastLogin", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.UpdateLastLoginParams) bool {
				return arg.ID == testUserID && arg.LastLogin.Valid && arg.LastLogin.Time.Equal(at)
			})).Return(tt.rowsAffected, tt.mockError)

			repo := NewUserRepository(mockQueries)

			err := repo.UpdateLastLogin(context.Background(), nil, testUserID, at)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestCreateUser(t *testing.T) {
	u, err := builder.NewUserBuilder().WithEmail("taken@example.com").BuildDomain()
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.CreateUserParams) bool {
			return arg.ID == u.ID() && arg.Email == "taken@example.com"
		})).Return(sqlc.Users{ID: u.ID()}, nil)

		repo := NewUserRepository(mockQueries)
		assert.NoError(t, repo.Create(context.Background(), nil, u))
		mockQueries.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).
			Return(sqlc.Users{}, &pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintUserEmail})

		repo := NewUserRepository(mockQueries)
		err := repo.Create(context.Background(), nil, u)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, infra.ConstraintUserEmail, infra.ConstraintOf(err))
	})
}
