package calendar

import (
	"fmt"
	"time"
)

const ReasonDatePassed = "date has passed"

// Decision is the outcome of evaluating a date against the cut-off.
// TimeLeft is set only when the date is today and the cut-off is ahead.
type Decision struct {
	CanModify bool
	Reason    string
	TimeLeft  *time.Duration
}

// TimeLeftLabel renders TimeLeft, or "" when there is none.
func (d Decision) TimeLeftLabel() string {
	if d.TimeLeft == nil {
		return ""
	}
	return FormatTimeLeft(*d.TimeLeft)
}

// Policy evaluates cut-offs in a single operational time zone. "Today" and the
// deadline instant are both taken in loc, whatever zone now carries.
type Policy struct {
	loc *time.Location
}

func NewPolicy(loc *time.Location) Policy {
	if loc == nil {
		loc = time.UTC
	}
	return Policy{loc: loc}
}

func (p Policy) Location() *time.Location { return p.loc }

func (p Policy) Today(now time.Time) Date {
	return DateOf(now, p.loc)
}

// Evaluate decides whether a reservation on target can still be created or
// changed at now. Past days are closed, future days are open, and today is
// open strictly before the cut-off.
func (p Policy) Evaluate(target Date, deadline DeadlineTime, now time.Time) Decision {
	today := p.Today(now)

	switch {
	case target.Before(today):
		return Decision{CanModify: false, Reason: ReasonDatePassed}
	case target.After(today):
		return Decision{CanModify: true}
	}

	cutoff := deadline.On(today, p.loc)
	if !now.Before(cutoff) {
		return Decision{
			CanModify: false,
			Reason:    fmt.Sprintf("deadline passed (%s)", deadline),
		}
	}

	left := cutoff.Sub(now)
	return Decision{CanModify: true, TimeLeft: &left}
}

// IsOpenDay reports whether the canteen serves on date.
func IsOpenDay(date Date, openDays OpenDays) bool {
	return openDays.Contains(date.Weekday())
}

// FormatTimeLeft renders whole minutes, floored: "1h05" from one hour up,
// "59 min" below.
func FormatTimeLeft(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	h, m := minutes/60, minutes%60
	if h > 0 {
		return fmt.Sprintf("%dh%02d", h, m)
	}
	return fmt.Sprintf("%d min", m)
}
