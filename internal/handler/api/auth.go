package api

import (
	"net/http"

	reqdto "canteen-reservation/internal/handler/dto/request"
	resdto "canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/internal/handler/httperr"
	"canteen-reservation/internal/handler/middleware"
	"canteen-reservation/internal/pkg/config"
	"canteen-reservation/internal/pkg/cookie"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoUserID = errs.New("user id missing from context")

type AuthHandler struct {
	cmds    commands.AuthCommands
	queries queries.UserQueries
	cfg     config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, queries queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:    cmds,
		queries: queries,
		cfg:     cfg,
	}
}

// @Summary User login
// @Description Login with email and password. Tokens are returned in the body and as HttpOnly cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSONOrAbort(c, &req) {
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		h.abortAuthError(c, err)
		return
	}

	h.setCookies(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Refresh tokens
// @Description Exchange a refresh token (cookie or body) for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request; optional when the refresh cookie is set"
// @Success 200 {object} resdto.TokenResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Refresh token required", nil)
			return
		}
		token = req.RefreshToken
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		h.abortAuthError(c, err)
		return
	}

	h.setCookies(c, pair)
	c.JSON(http.StatusOK, resdto.FromTokenPair(pair))
}

// @Summary User logout
// @Description Clear the token cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; the client loses them with the cookies
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserID, "Internal server error", nil)
		return
	}

	user, err := h.queries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errs.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithKind(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(user))
}

func (h *AuthHandler) setCookies(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cfg.Cookie,
		pair.AccessToken, pair.RefreshToken,
		h.cfg.JWT.AccessTokenDuration, h.cfg.JWT.RefreshTokenDuration,
	)
}

// unknown users and wrong passwords share one message
func (h *AuthHandler) abortAuthError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errs.Is(err, commands.ErrUserInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
	case errs.Is(err, commands.ErrAuthenticationFailed):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Authentication failed", nil)
	case errs.Is(err, commands.ErrTokenValidation):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
	default:
		httperr.AbortWithKind(c, err)
	}
}
