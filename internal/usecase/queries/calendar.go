package queries

import (
	"context"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=calendar.go -destination=../../../tests/mock/queries/calendar_mock.go -package=queriesmock

type CalendarQueries interface {
	DeadlineStatus(ctx context.Context, date calendar.Date) (*DeadlineStatus, error)
	AvailableWeeks(ctx context.Context) ([]WeekView, error)
}

type calendarQueriesImpl struct {
	window *shared.BookingWindow
}

func NewCalendarQueries(window *shared.BookingWindow) CalendarQueries {
	return &calendarQueriesImpl{window: window}
}

func (q *calendarQueriesImpl) DeadlineStatus(ctx context.Context, date calendar.Date) (*DeadlineStatus, error) {
	s, err := q.window.Settings(ctx)
	if err != nil {
		return nil, err
	}
	decision := q.window.Evaluate(s, date)
	return &DeadlineStatus{
		Date:      date,
		Weekday:   date.Weekday().String(),
		IsOpenDay: calendar.IsOpenDay(date, s.OpenDays()),
		CanModify: decision.CanModify,
		Reason:    decision.Reason,
		TimeLeft:  decision.TimeLeftLabel(),
		Deadline:  s.ReservationDeadline().String(),
	}, nil
}

func (q *calendarQueriesImpl) AvailableWeeks(ctx context.Context) ([]WeekView, error) {
	s, err := q.window.Settings(ctx)
	if err != nil {
		return nil, err
	}
	weeks := s.AvailableWeeks(q.window.Today())
	out := make([]WeekView, len(weeks))
	for i, w := range weeks {
		out[i] = WeekView{Start: w.Start, End: w.End, OpenDays: w.OpenDays}
	}
	return out, nil
}
