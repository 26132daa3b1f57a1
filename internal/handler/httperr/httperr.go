package httperr

import (
	"log/slog"
	"net/http"

	"canteen-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type kindMapping struct {
	kind    error
	status  int
	message string
}

// Order matters: the first matching kind wins.
var kindMappings = []kindMapping{
	{errs.ErrValidation, http.StatusBadRequest, "Validation failed"},
	{errs.ErrClosedDay, http.StatusBadRequest, "The canteen is closed on this day"},
	{errs.ErrDeadlinePassed, http.StatusBadRequest, "The reservation deadline has passed"},
	{errs.ErrMenuUnavailable, http.StatusBadRequest, "No menu available for this date"},
	{errs.ErrInvalidOption, http.StatusBadRequest, "Invalid menu option"},
	{errs.ErrDuplicateReservation, http.StatusConflict, "A reservation already exists for this date"},
	{errs.ErrConflict, http.StatusConflict, "Conflicting state"},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
}

// StatusOf classifies err by its kind. Unknown errors are internal.
func StatusOf(err error) (int, string) {
	for _, m := range kindMappings {
		if errs.Is(err, m.kind) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithKind aborts with the status and message of err's kind. Client
// errors carry the error text and its attached details; server errors carry
// nothing beyond the generic message.
func AbortWithKind(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12),
		)
		AbortWithError(c, status, err, msg, nil)
		return
	}
	AbortWithError(c, status, err, msg, append([]string{err.Error()}, errs.Details(err)...))
}
