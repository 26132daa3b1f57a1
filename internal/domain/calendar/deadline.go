package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"time"
)

var (
	ErrInvalidDeadline = errors.New("invalid deadline, expected HH:MM (24h)")
	ErrInvalidWeekday  = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrNoOpenDays      = errors.New("at least one open day is required")
)

var deadlineRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// DeadlineTime is the daily cut-off, a wall-clock time in the operational zone.
type DeadlineTime struct {
	hour   int
	minute int
}

var DefaultDeadline = DeadlineTime{hour: 10, minute: 0}

func ParseDeadlineTime(s string) (DeadlineTime, error) {
	m := deadlineRegex.FindStringSubmatch(s)
	if m == nil {
		return DeadlineTime{}, ErrInvalidDeadline
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	return DeadlineTime{hour: h, minute: mm}, nil
}

func (t DeadlineTime) Hour() int   { return t.hour }
func (t DeadlineTime) Minute() int { return t.minute }

func (t DeadlineTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// On returns the cut-off instant for date d in loc.
func (t DeadlineTime) On(d Date, loc *time.Location) time.Time {
	return d.At(t.hour, t.minute, loc)
}

// Weekday follows time.Weekday numbering: 0 is Sunday.
type Weekday int

func (w Weekday) IsValid() bool { return w >= 0 && w <= 6 }

func (w Weekday) String() string { return time.Weekday(w).String() }

// OpenDays is the set of weekdays the canteen serves.
type OpenDays struct {
	days [7]bool
}

func NewOpenDays(days []int) (OpenDays, error) {
	var od OpenDays
	for _, d := range days {
		if !Weekday(d).IsValid() {
			return OpenDays{}, ErrInvalidWeekday
		}
		od.days[d] = true
	}
	if od.IsEmpty() {
		return OpenDays{}, ErrNoOpenDays
	}
	return od, nil
}

// DefaultOpenDays is Monday through Friday.
func DefaultOpenDays() OpenDays {
	od, _ := NewOpenDays([]int{1, 2, 3, 4, 5})
	return od
}

func (o OpenDays) Contains(w Weekday) bool {
	if !w.IsValid() {
		return false
	}
	return o.days[w]
}

func (o OpenDays) IsEmpty() bool {
	return !slices.Contains(o.days[:], true)
}

// Ints returns the open weekdays in ascending order.
func (o OpenDays) Ints() []int {
	out := make([]int, 0, 7)
	for i, open := range o.days {
		if open {
			out = append(out, i)
		}
	}
	return out
}
