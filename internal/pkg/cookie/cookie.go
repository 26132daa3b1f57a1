package cookie

import (
	"net/http"
	"time"

	"canteen-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	// The refresh token is only ever read by the refresh and logout endpoints.
	refreshTokenPath = "/api/auth"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	set(c, cfg, AccessTokenCookieName, accessToken, "/", int(accessExpiry.Seconds()))
	set(c, cfg, RefreshTokenCookieName, refreshToken, refreshTokenPath, int(refreshExpiry.Seconds()))
}

// ClearTokenCookies expires both cookies on the paths they were issued for.
func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	set(c, cfg, AccessTokenCookieName, "", "/", -1)
	set(c, cfg, RefreshTokenCookieName, "", refreshTokenPath, -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func set(c *gin.Context, cfg config.CookieConfig, name, value, path string, maxAge int) {
	c.SetCookie(name, value, maxAge, path, cfg.Domain, cfg.Secure, true)
}

func sameSiteMode(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
