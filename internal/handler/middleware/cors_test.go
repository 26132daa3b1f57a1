//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"canteen-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewCORSMiddleware(t *testing.T) {
	base := config.CORSConfig{
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:       time.Hour,
	}

	tests := []struct {
		name        string
		origins     []string
		credentials bool
		origin      string
		wantAllowed string
	}{
		{name: "listed origin", origins: []string{"https://cantine.example"}, credentials: true, origin: "https://cantine.example", wantAllowed: "https://cantine.example"},
		{name: "unlisted origin", origins: []string{"https://cantine.example"}, credentials: true, origin: "https://evil.example", wantAllowed: ""},
		{name: "wildcard without credentials", origins: []string{"*"}, origin: "https://any.example", wantAllowed: "*"},
		{name: "wildcard dropped with credentials", origins: []string{"*", "https://cantine.example"}, credentials: true, origin: "https://any.example", wantAllowed: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			cfg := base
			cfg.AllowOrigins = tt.origins
			cfg.AllowCredentials = tt.credentials

			r := gin.New()
			r.Use(NewCORSMiddleware(cfg))
			r.GET("/api/menus", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/api/menus", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
