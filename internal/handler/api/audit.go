package api

import (
	"net/http"

	reqdto "canteen-reservation/internal/handler/dto/request"
	resdto "canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/internal/handler/httperr"
	"canteen-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	queries queries.AuditQueries
}

func NewAuditHandler(queries queries.AuditQueries) *AuditHandler {
	return &AuditHandler{queries: queries}
}

// @Summary List audit log
// @Description Newest first (admin)
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param entity_id query string false "Entity ID"
// @Param user_id query string false "Affected user ID"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} resdto.AuditLogListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /audit-logs [get]
func (h *AuditHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var q reqdto.ListAuditLogsQuery
	if !bindQueryOrAbort(c, &q) {
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	views, next, err := h.queries.List(c.Request.Context(), actor.Role, filter, q.ToCursor(), q.Limit)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuditLogViews(views, next))
}
