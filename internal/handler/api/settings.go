package api

import (
	"net/http"

	reqdto "canteen-reservation/internal/handler/dto/request"
	resdto "canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/internal/handler/httperr"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	cmds    commands.SettingsCommands
	queries queries.SettingsQueries
}

func NewSettingsHandler(cmds commands.SettingsCommands, queries queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{cmds: cmds, queries: queries}
}

// @Summary Get settings
// @Description Agents receive the deadline, open days and booking horizon only
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SettingsResponse
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	view, err := h.queries.Get(c.Request.Context(), actor.Role)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettingsView(view))
}

// @Summary Update settings
// @Description Partial update (admin). max_daily_capacity accepts null to remove the limit.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSettingsRequest true "Settings patch"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /settings [patch]
func (h *SettingsHandler) Update(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSettingsRequest
	if !bindJSONOrAbort(c, &req) {
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), actor, req)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettingsView(view))
}
