package request

import (
	"strings"

	"campsite-booking/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Email       string `json:"email" binding:"required,email,max=255"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	Role        string `json:"role" binding:"omitempty,oneof=guest owner"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=50"`
}

// Registration is the validated form of a sign-up request
type Registration struct {
	Name        user.Name
	Email       user.Email
	Password    user.Password
	Role        user.Role
	PhoneNumber string
}

func (r *RegisterRequest) ToDomain() (Registration, error) {
	name, err := user.NewName(r.Name)
	if err != nil {
		return Registration{}, err
	}
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return Registration{}, err
	}
	pw, err := user.NewPassword(r.Password)
	if err != nil {
		return Registration{}, err
	}
	role, err := user.NewSelfServiceRole(r.Role)
	if err != nil {
		return Registration{}, err
	}
	return Registration{
		Name:        name,
		Email:       email,
		Password:    pw,
		Role:        role,
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
	}, nil
}
