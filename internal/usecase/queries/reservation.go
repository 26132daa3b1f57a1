package queries

import (
	"context"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	ErrReservationAccess   = errs.Mark(errs.New("reservation access denied"), errs.ErrForbidden)
	ErrSummaryAccess       = errs.Mark(errs.New("daily summary is reserved to staff"), errs.ErrForbidden)
	ErrInvalidDateRange    = errs.Mark(errs.New("start date is after end date"), errs.ErrValidation)
	ErrInvalidStatusFilter = errs.Mark(errs.New("invalid status filter"), errs.ErrValidation)
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

// ReservationFilter narrows a listing. Date is shorthand for From = To = Date.
type ReservationFilter struct {
	Date   *calendar.Date
	From   *calendar.Date
	To     *calendar.Date
	UserID *uuid.UUID
	Status *string
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter, after *ReservationKey, limit int32) ([]*ReservationView, error)
	DailySummary(ctx context.Context, date calendar.Date) (*DailySummary, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor reservation.Actor, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, actor reservation.Actor, filter ReservationFilter, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error)
	DailySummary(ctx context.Context, actor reservation.Actor, date calendar.Date) (*DailySummary, error)
}

type reservationQueriesImpl struct {
	store    ReservationReadStore
	settings shared.SettingsProvider
}

func NewReservationQueries(store ReservationReadStore, settings shared.SettingsProvider) ReservationQueries {
	return &reservationQueriesImpl{store: store, settings: settings}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor reservation.Actor, id uuid.UUID) (*ReservationView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !reservation.CanActOn(actor, v.UserID, reservation.IntentView) {
		return nil, ErrReservationAccess
	}
	return v, nil
}

// List returns reservations ordered by date then creation time. Non-staff
// actors only ever see their own reservations, whatever the filter says.
func (q *reservationQueriesImpl) List(ctx context.Context, actor reservation.Actor, filter ReservationFilter, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	if filter.Date != nil {
		filter.From, filter.To = filter.Date, filter.Date
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, nil, errs.WithDetailf(ErrInvalidDateRange, "%s > %s", filter.From, filter.To)
	}
	if filter.Status != nil {
		if _, err := reservation.NewStatus(*filter.Status); err != nil {
			return nil, nil, errs.WithDetailf(ErrInvalidStatusFilter, "got %q", *filter.Status)
		}
	}
	if !actor.IsStaff() {
		own := actor.UserID
		filter.UserID = &own
	}

	limit = ValidateLimit(limit)
	var after *ReservationKey
	if !cursor.IsZero() {
		k, err := DecodeReservationCursor(cursor.After)
		if err != nil {
			return nil, nil, err
		}
		after = &k
	}

	rows, err := q.store.List(ctx, filter, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		next = &Cursor{After: EncodeReservationCursor(rows[limit-1].Key())}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reservationQueriesImpl) DailySummary(ctx context.Context, actor reservation.Actor, date calendar.Date) (*DailySummary, error) {
	if !actor.IsStaff() {
		return nil, ErrSummaryAccess
	}
	summary, err := q.store.DailySummary(ctx, date)
	if err != nil {
		return nil, err
	}
	s, err := q.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	for i := range summary.MainOptions {
		o := &summary.MainOptions[i]
		if o.MaxCapacity != nil {
			left := max(*o.MaxCapacity-o.Count, 0)
			o.Remaining = &left
		}
	}
	if c := s.MaxDailyCapacity(); c != nil {
		capacity := *c
		left := max(capacity-summary.Total, 0)
		summary.MaxDailyCapacity = &capacity
		summary.RemainingCapacity = &left
	}
	return summary, nil
}
