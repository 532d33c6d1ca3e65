package response

import (
	"time"

	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:          v.ID,
		Name:        v.Name,
		Email:       v.Email,
		Role:        v.Role,
		PhoneNumber: v.PhoneNumber,
		LastLogin:   v.LastLogin,
		CreatedAt:   v.CreatedAt,
	}
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
