package api

import (
	"net/http"

	reqdto "canteen-reservation/internal/handler/dto/request"
	resdto "canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/internal/handler/httperr"
	"canteen-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	queries queries.CalendarQueries
}

func NewCalendarHandler(queries queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{queries: queries}
}

// @Summary Deadline status of a day
// @Description Whether reservations for the day can still be created or changed, and the time left
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param date query string true "Service day (YYYY-MM-DD)"
// @Success 200 {object} resdto.DeadlineStatusResponse
// @Failure 400 {object} httperr.Response
// @Router /calendar/deadline [get]
func (h *CalendarHandler) Deadline(c *gin.Context) {
	var q reqdto.DateQuery
	if !bindQueryOrAbort(c, &q) {
		return
	}
	date, err := q.ToDate()
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	status, err := h.queries.DeadlineStatus(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeadlineStatus(status))
}

// @Summary Reservable weeks
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.WeekResponse
// @Router /calendar/weeks [get]
func (h *CalendarHandler) Weeks(c *gin.Context) {
	weeks, err := h.queries.AvailableWeeks(c.Request.Context())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWeekViews(weeks))
}
