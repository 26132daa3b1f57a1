package shared

import (
	"context"
	"time"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/domain/settings"
	"canteen-reservation/internal/pkg/clock"
	"canteen-reservation/internal/pkg/errs"
)

var (
	ErrClosedDay      = errs.Mark(errs.New("the canteen is closed on this day"), errs.ErrClosedDay)
	ErrDeadlinePassed = errs.Mark(errs.New("reservations for this date can no longer be changed"), errs.ErrDeadlinePassed)
)

// BookingWindow answers "can this date still be booked or changed right now"
// from the current settings, the calendar policy and the clock.
type BookingWindow struct {
	provider SettingsProvider
	policy   calendar.Policy
	clock    clock.Clock
}

func NewBookingWindow(provider SettingsProvider, policy calendar.Policy, clk clock.Clock) *BookingWindow {
	return &BookingWindow{provider: provider, policy: policy, clock: clk}
}

func (w *BookingWindow) Settings(ctx context.Context) (*settings.Settings, error) {
	return w.provider.GetSettings(ctx)
}

func (w *BookingWindow) Now() time.Time {
	return w.clock.Now()
}

func (w *BookingWindow) Today() calendar.Date {
	return w.policy.Today(w.clock.Now())
}

func (w *BookingWindow) Evaluate(s *settings.Settings, date calendar.Date) calendar.Decision {
	return w.policy.Evaluate(date, s.ReservationDeadline(), w.clock.Now())
}

func (w *BookingWindow) CheckOpenDay(s *settings.Settings, date calendar.Date) error {
	if !calendar.IsOpenDay(date, s.OpenDays()) {
		return errs.WithDetailf(ErrClosedDay, "%s is a %s", date, date.Weekday())
	}
	return nil
}

func (w *BookingWindow) CheckDeadline(s *settings.Settings, date calendar.Date) error {
	decision := w.Evaluate(s, date)
	if !decision.CanModify {
		return errs.WithDetail(ErrDeadlinePassed, decision.Reason)
	}
	return nil
}
