//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"campsite-booking/internal/infra"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func userRow(email string, active bool) sqlc.Users {
	return sqlc.Users{
		ID:           uuid.New(),
		Name:         "Test Guest",
		Email:        email,
		PasswordHash: "hashed_password",
		Role:         "guest",
		PhoneNumber:  pgtype.Text{},
		IsActive:     active,
		CreatedAt:    pgconv.TimeToPgtype(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)),
	}
}

func TestFindByEmail(t *testing.T) {
	testUser := userRow("guest@example.com", true)
	inactiveUser := userRow("inactive@example.com", false)

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.Users
		mockError  error
		wantHash   string
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			email:      testUser.Email,
			mockReturn: testUser,
			wantHash:   testUser.PasswordHash,
		},
		{
			name:       "success - inactive user (for validation)",
			email:      inactiveUser.Email,
			mockReturn: inactiveUser,
			wantHash:   inactiveUser.PasswordHash,
		},
		{
			name:       "user not found",
			email:      "notfound@example.com",
			mockReturn: sqlc.Users{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			email:      testUser.Email,
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			store := NewUserReadStore(mockQueries, nil)
			view, hash, err := store.FindByEmail(context.Background(), tt.email)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, view)
				assert.Empty(t, hash)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockReturn.ID, view.ID)
				assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
				assert.Nil(t, view.PhoneNumber)
				assert.Equal(t, tt.wantHash, hash)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	row := userRow("guest@example.com", true)
	row.PhoneNumber = pgconv.StringToPgtype("+36 30 123 4567")
	row.LastLogin = pgconv.TimeToPgtype(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		assert.NoError(t, err)
		assert.Equal(t, "guest@example.com", view.Email)
		if assert.NotNil(t, view.PhoneNumber) {
			assert.Equal(t, "+36 30 123 4567", *view.PhoneNumber)
		}
		assert.NotNil(t, view.LastLogin)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
