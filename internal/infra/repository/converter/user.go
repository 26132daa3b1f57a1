package converter

import (
	"canteen-reservation/internal/domain/user"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	}
}
