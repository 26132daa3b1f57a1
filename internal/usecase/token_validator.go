package usecase

import (
	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/user"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/pkg/jwt"
)

var ErrNotAccessToken = errs.New("refresh token presented as access token")

// AccessTokenValidator resolves a bearer or cookie token into the acting user.
type AccessTokenValidator interface {
	Authenticate(tokenString string) (reservation.Actor, error)
}

type accessTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) AccessTokenValidator {
	return &accessTokenValidator{jwtService: jwtService}
}

func (v *accessTokenValidator) Authenticate(tokenString string) (reservation.Actor, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return reservation.Actor{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return reservation.Actor{}, ErrNotAccessToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return reservation.Actor{}, errs.Wrap(err, "token carries an unknown role")
	}
	return reservation.Actor{UserID: claims.UserID, Role: role}, nil
}
