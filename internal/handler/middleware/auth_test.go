//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/user"
	"canteen-reservation/internal/pkg/cookie"
	"canteen-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubValidator map[string]reservation.Actor

func (s stubValidator) Authenticate(token string) (reservation.Actor, error) {
	if a, ok := s[token]; ok {
		return a, nil
	}
	return reservation.Actor{}, errs.New("unknown token")
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	agent := reservation.Actor{UserID: uuid.New(), Role: user.RoleAgent}
	manager := reservation.Actor{UserID: uuid.New(), Role: user.RoleGestionnaire}
	m := NewAuthMiddleware(stubValidator{"agent-token": agent, "manager-token": manager})

	r := gin.New()
	r.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, actor.UserID.String())
	})
	r.GET("/summary", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleGestionnaire), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name     string
		path     string
		bearer   string
		cookie   string
		wantCode int
		wantBody string
	}{
		{name: "bearer token", path: "/me", bearer: "agent-token", wantCode: http.StatusOK, wantBody: agent.UserID.String()},
		{name: "cookie wins over header", path: "/me", bearer: "agent-token", cookie: "manager-token", wantCode: http.StatusOK, wantBody: manager.UserID.String()},
		{name: "no token", path: "/me", wantCode: http.StatusUnauthorized},
		{name: "rejected token", path: "/me", bearer: "forged", wantCode: http.StatusUnauthorized},
		{name: "agent below staff floor", path: "/summary", bearer: "agent-token", wantCode: http.StatusForbidden},
		{name: "manager meets staff floor", path: "/summary", bearer: "manager-token", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
