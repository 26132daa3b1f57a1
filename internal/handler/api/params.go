package api

import (
	"net/http"

	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/handler/httperr"
	"canteen-reservation/internal/handler/middleware"
	"canteen-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoActor = errs.New("authenticated actor missing from context")

// actorOrAbort is only reachable behind RequireAuth; a missing actor means
// the route was wired without it.
func actorOrAbort(c *gin.Context) (reservation.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoActor, "Internal server error", nil)
		return reservation.Actor{}, false
	}
	return actor, true
}

func idParamOrAbort(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name+" format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSONOrAbort(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", []string{err.Error()})
		return false
	}
	return true
}

func bindQueryOrAbort(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", []string{err.Error()})
		return false
	}
	return true
}
