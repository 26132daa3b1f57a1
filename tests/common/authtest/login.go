//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"canteen-reservation/internal/handler/dto/request"
	"canteen-reservation/internal/pkg/cookie"
	"canteen-reservation/tests/common/dbtest"
	"canteen-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is the password of every user created by dbtest fixtures.
const DefaultPassword = "password123"

// LoginUser logs in through the real endpoint and returns the access token
// taken from the cookie the browser would receive.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, access, "no %s cookie on login", cookie.AccessTokenCookieName)
	require.NotEmpty(t, access.Value)
	return access.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, DefaultPassword)
}
