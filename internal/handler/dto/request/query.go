package request

import (
	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrDateQueryRequired = errs.Mark(errs.New("date query parameter is required"), errs.ErrValidation)

type PageQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q PageQuery) ToCursor() *queries.Cursor {
	if q.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: q.Cursor}
}

type ListReservationsQuery struct {
	PageQuery
	Date      string `form:"date"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	UserID    string `form:"user_id"`
	Status    string `form:"status"`
}

func (q ListReservationsQuery) ToFilter() (queries.ReservationFilter, error) {
	var f queries.ReservationFilter
	var err error
	if f.Date, err = optionalDate("date", q.Date); err != nil {
		return f, err
	}
	if f.From, err = optionalDate("start_date", q.StartDate); err != nil {
		return f, err
	}
	if f.To, err = optionalDate("end_date", q.EndDate); err != nil {
		return f, err
	}
	if f.UserID, err = optionalUUID("user_id", q.UserID); err != nil {
		return f, err
	}
	if q.Status != "" {
		status := q.Status
		f.Status = &status
	}
	return f, nil
}

type ListMenusQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
	Published bool   `form:"published"`
}

func (q ListMenusQuery) ToRange() (calendar.Date, calendar.Date, error) {
	from, err := ParseDateParam("start_date", q.StartDate)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	to, err := ParseDateParam("end_date", q.EndDate)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	return from, to, nil
}

type ListAuditLogsQuery struct {
	PageQuery
	EntityID string `form:"entity_id"`
	UserID   string `form:"user_id"`
}

func (q ListAuditLogsQuery) ToFilter() (queries.AuditFilter, error) {
	var f queries.AuditFilter
	if q.EntityID != "" {
		id := q.EntityID
		f.EntityID = &id
	}
	userID, err := optionalUUID("user_id", q.UserID)
	if err != nil {
		return f, err
	}
	f.UserID = userID
	return f, nil
}

type DateQuery struct {
	Date string `form:"date"`
}

func (q DateQuery) ToDate() (calendar.Date, error) {
	if q.Date == "" {
		return calendar.Date{}, ErrDateQueryRequired
	}
	return ParseDateParam("date", q.Date)
}

// ParseDateParam parses a YYYY-MM-DD path or query value.
func ParseDateParam(name, value string) (calendar.Date, error) {
	d, err := calendar.ParseDate(value)
	if err != nil {
		return calendar.Date{}, errs.WithDetailf(errs.Mark(err, errs.ErrValidation), "%s %q", name, value)
	}
	return d, nil
}

func optionalDate(name, value string) (*calendar.Date, error) {
	if value == "" {
		return nil, nil
	}
	d, err := ParseDateParam(name, value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalUUID(name, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, errs.WithDetailf(errs.Mark(err, errs.ErrValidation), "%s %q", name, value)
	}
	return &id, nil
}
