package api

import (
	"net/http"

	reqdto "canteen-reservation/internal/handler/dto/request"
	resdto "canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/internal/handler/httperr"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMenuNotFound = errs.Mark(errs.New("no menu for this date"), errs.ErrNotFound)

type MenuHandler struct {
	cmds    commands.MenuCommands
	queries queries.MenuQueries
}

func NewMenuHandler(cmds commands.MenuCommands, queries queries.MenuQueries) *MenuHandler {
	return &MenuHandler{cmds: cmds, queries: queries}
}

// @Summary List menus
// @Description Menus in a date range. Agents only see published menus.
// @Tags menus
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Param published query bool false "Only published menus"
// @Success 200 {array} resdto.MenuResponse
// @Failure 400 {object} httperr.Response
// @Router /menus [get]
func (h *MenuHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var q reqdto.ListMenusQuery
	if !bindQueryOrAbort(c, &q) {
		return
	}
	from, to, err := q.ToRange()
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	views, err := h.queries.List(c.Request.Context(), from, to, actor.Role, q.Published)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMenuViews(views))
}

// @Summary Get menu of a day
// @Tags menus
// @Produce json
// @Security BearerAuth
// @Param date path string true "Service day (YYYY-MM-DD)"
// @Success 200 {object} resdto.MenuResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /menus/{date} [get]
func (h *MenuHandler) GetForDate(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	date, err := reqdto.ParseDateParam("date", c.Param("date"))
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	view, err := h.queries.GetForDate(c.Request.Context(), date, actor.Role)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	if view == nil {
		httperr.AbortWithError(c, http.StatusNotFound, errMenuNotFound, "Menu not found", []string{date.String()})
		return
	}
	c.JSON(http.StatusOK, resdto.FromMenuView(view))
}

// @Summary Create menu
// @Description One menu per day with at least one MAIN option (staff)
// @Tags menus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMenuRequest true "Menu"
// @Success 201 {object} resdto.MenuResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /menus [post]
func (h *MenuHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateMenuRequest
	if !bindJSONOrAbort(c, &req) {
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), actor, req)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMenuView(view))
}

// @Summary Update a menu
// @Description Edits side dishes, notes, publication and options. Options, when sent, replace the whole list.
// @Description Options referenced by reservations cannot be removed.
// @Tags menus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu ID"
// @Param request body reqdto.UpdateMenuRequest true "Menu changes"
// @Success 200 {object} resdto.MenuResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /menus/{id} [patch]
func (h *MenuHandler) Update(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParamOrAbort(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateMenuRequest
	if !bindJSONOrAbort(c, &req) {
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMenuView(view))
}

// @Summary Delete menu
// @Description Refused while reservations reference the menu
// @Tags menus
// @Security BearerAuth
// @Param id path string true "Menu ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /menus/{id} [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParamOrAbort(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
