package middleware

import (
	"log/slog"
	"slices"

	"canteen-reservation/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS policy for the booking front-end. Token
// cookies need credentialed requests, which browsers refuse with a wildcard
// origin, so "*" is only honoured when credentials are off.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	origins := slices.DeleteFunc(slices.Clone(cfg.AllowOrigins), func(o string) bool { return o == "*" })
	wildcard := len(origins) != len(cfg.AllowOrigins)
	switch {
	case wildcard && !cfg.AllowCredentials:
		corsCfg.AllowAllOrigins = true
	case wildcard:
		slog.Warn("ignoring wildcard CORS origin with credentials enabled", "origins", origins)
		corsCfg.AllowOrigins = origins
	default:
		corsCfg.AllowOrigins = origins
	}
	if !corsCfg.AllowAllOrigins && len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowOriginFunc = func(string) bool { return false }
	}

	slog.Info("CORS middleware initialized", "origins", cfg.AllowOrigins, "credentials", cfg.AllowCredentials)
	return cors.New(corsCfg)
}
