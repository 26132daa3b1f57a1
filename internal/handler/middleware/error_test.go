//go:build unit

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"canteen-reservation/internal/handler/httperr"
	"canteen-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CustomRecovery(), ErrorHandler())
	return r
}

func serve(r *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()
	r.GET("/kind", func(c *gin.Context) {
		_ = c.Error(errs.Mark(errs.New("date is a Sunday"), errs.ErrClosedDay))
	})
	r.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusTeapot}
		resp.Error.Message = "short and stout"
		_ = c.Error(&gin.Error{Err: errs.New("tea"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errs.New("boom"))
	})
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{"/kind", http.StatusBadRequest, "The canteen is closed on this day"},
		{"/public", http.StatusTeapot, "short and stout"},
		{"/plain", http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(r, tt.path)
			require.Equal(t, tt.status, rec.Code)

			var body httperr.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Error.Message)
		})
	}

	t.Run("untouched when no error was recorded", func(t *testing.T) {
		rec := serve(r, "/ok")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	r := newErrorRouter()
	r.GET("/panic", func(*gin.Context) { panic("menu table on fire") })

	rec := serve(r, "/panic")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}
