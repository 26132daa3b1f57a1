//go:build unit

package httperr

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"canteen-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithErrorRecordsPublicError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	cause := errs.New("already taken")
	AbortWithError(c, http.StatusConflict, cause, "Conflicting state", "slot 12")

	require.Len(t, c.Errors, 1)
	last := c.Errors.Last()
	assert.True(t, last.IsType(gin.ErrorTypePublic))
	assert.ErrorIs(t, last.Err, cause)

	resp, ok := last.Meta.(Response)
	require.True(t, ok, "meta should carry the response")
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.Equal(t, "Conflicting state", resp.Error.Message)
	assert.Equal(t, "slot 12", resp.Detail)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", errs.Mark(errs.New("bad"), errs.ErrValidation), http.StatusBadRequest},
		{"duplicate wins over conflict", errs.Mark(errs.New("dup"), errs.ErrDuplicateReservation), http.StatusConflict},
		{"not found", errs.Mark(errs.New("gone"), errs.ErrNotFound), http.StatusNotFound},
		{"unclassified", errs.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := StatusOf(tt.err)
			assert.Equal(t, tt.status, status)
		})
	}
}
