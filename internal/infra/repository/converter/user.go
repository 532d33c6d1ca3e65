package converter

import (
	"campsite-booking/internal/domain/user"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		PhoneNumber:  pgconv.OptionalText(u.PhoneNumber()),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}
