package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/user"
	"canteen-reservation/internal/pkg/cookie"
	"canteen-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.AccessTokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.AccessTokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerOrCookie(c)
		if token == "" {
			abortUnauthorized(c, "Access token required")
			return
		}

		actor, err := m.tokenValidator.Authenticate(token)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "rejected token", "path", c.FullPath(), "error", err.Error())
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ctxUserIDKey, actor.UserID)
		c.Set(ctxUserRoleKey, actor.Role)
		c.Set("jwt_claims", map[string]any{
			"user_id": actor.UserID.String(),
			"role":    string(actor.Role),
		})
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			resp := gin.H{"error": gin.H{"message": "Internal server error"}}
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			return
		}

		if !role.AtLeast(minRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Insufficient permissions"},
			})
			return
		}

		c.Next()
	}
}

// cookie first, then the Authorization header
func bearerOrCookie(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{"message": msg},
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// GetActor returns the authenticated caller as the reservation engine sees it.
func GetActor(c *gin.Context) (reservation.Actor, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return reservation.Actor{}, false
	}
	role, ok := GetUserRole(c)
	if !ok {
		return reservation.Actor{}, false
	}
	return reservation.Actor{UserID: id, Role: role}, true
}
