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

type ReservationHandler struct {
	cmds    commands.ReservationCommands
	queries queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, queries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		cmds:    cmds,
		queries: queries,
	}
}

// @Summary Create reservation
// @Description Book a meal for a service day. Staff may book for another user with user_id.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response "validation, closed day, deadline passed, menu unavailable or invalid option"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response "a reservation already exists for this date"
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if !bindJSONOrAbort(c, &req) {
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), actor, req)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description Agents only see their own reservations. Ordered by date then creation.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param date query string false "Service day (YYYY-MM-DD)"
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Param user_id query string false "Owner filter (staff only)"
// @Param status query string false "BOOKED, SERVED or NO_SHOW"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var q reqdto.ListReservationsQuery
	if !bindQueryOrAbort(c, &q) {
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	views, next, err := h.queries.List(c.Request.Context(), actor, filter, q.ToCursor(), q.Limit)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views, next))
}

// @Summary Daily summary
// @Description Totals per status, consumption mode and main option for one day (staff)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param date query string true "Service day (YYYY-MM-DD)"
// @Success 200 {object} resdto.DailySummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations/summary [get]
func (h *ReservationHandler) Summary(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var q reqdto.DateQuery
	if !bindQueryOrAbort(c, &q) {
		return
	}
	date, err := q.ToDate()
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	summary, err := h.queries.DailySummary(c.Request.Context(), actor, date)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDailySummary(summary))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParamOrAbort(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Update reservation
// @Description Either record the service outcome (status, staff only) or change the meal choice.
// @Description starter_option_id and dessert_option_id accept null to drop the course.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Update request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) Update(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParamOrAbort(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateReservationRequest
	if !bindJSONOrAbort(c, &req) {
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Cancel reservation
// @Description Owners may cancel until the deadline; staff at any time.
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParamOrAbort(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), actor, id); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
