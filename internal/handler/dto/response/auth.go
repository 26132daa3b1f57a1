package response

import (
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	var res UserResponse
	mustCopy(&res, v)
	return &res
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken:  r.TokenPair.AccessToken,
		RefreshToken: r.TokenPair.RefreshToken,
		User:         FromUserView(r.User),
	}
}

func FromTokenPair(p *commands.TokenPair) *TokenResponse {
	return &TokenResponse{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken}
}
