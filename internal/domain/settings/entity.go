package settings

import (
	"time"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/pkg/patch"
)

const (
	SingletonID = "global"

	DefaultWeeksInAdvance = 2
	MinWeeksInAdvance     = 1
	MaxWeeksInAdvance     = 8
)

var (
	ErrInvalidDeadline       = errs.Mark(errs.New("reservationDeadline must be HH:MM"), errs.ErrValidation)
	ErrInvalidOpenDays       = errs.Mark(errs.New("openDays must be a non-empty list of weekdays 0-6"), errs.ErrValidation)
	ErrInvalidWeeksInAdvance = errs.Mark(errs.New("weeksInAdvance must be between 1 and 8"), errs.ErrValidation)
	ErrInvalidCapacity       = errs.Mark(errs.New("maxDailyCapacity must be at least 1"), errs.ErrValidation)
	ErrEmptyPatch            = errs.Mark(errs.New("settings patch is empty"), errs.ErrValidation)
)

// Settings is the single, global configuration of the canteen.
type Settings struct {
	reservationDeadline        calendar.DeadlineTime
	openDays                   calendar.OpenDays
	weeksInAdvance             int
	maxDailyCapacity           *int
	notificationsEnabled       bool
	operationalTrackingEnabled bool
	updatedAt                  time.Time
}

func Defaults() *Settings {
	return &Settings{
		reservationDeadline:        calendar.DefaultDeadline,
		openDays:                   calendar.DefaultOpenDays(),
		weeksInAdvance:             DefaultWeeksInAdvance,
		notificationsEnabled:       true,
		operationalTrackingEnabled: true,
	}
}

// Reconstruct rebuilds settings from storage. Values that would break the
// read contract (missing cut-off, no open day, out-of-range horizon) fall back
// to their defaults instead of failing the read.
func Reconstruct(
	reservationDeadline string,
	openDays []int,
	weeksInAdvance int,
	maxDailyCapacity *int,
	notificationsEnabled bool,
	operationalTrackingEnabled bool,
	updatedAt time.Time,
) *Settings {
	s := Defaults()
	if d, err := calendar.ParseDeadlineTime(reservationDeadline); err == nil {
		s.reservationDeadline = d
	}
	if od, err := calendar.NewOpenDays(openDays); err == nil {
		s.openDays = od
	}
	if validWeeks(weeksInAdvance) {
		s.weeksInAdvance = weeksInAdvance
	}
	if maxDailyCapacity != nil && *maxDailyCapacity >= 1 {
		c := *maxDailyCapacity
		s.maxDailyCapacity = &c
	}
	s.notificationsEnabled = notificationsEnabled
	s.operationalTrackingEnabled = operationalTrackingEnabled
	s.updatedAt = updatedAt
	return s
}

func (s *Settings) ReservationDeadline() calendar.DeadlineTime { return s.reservationDeadline }
func (s *Settings) OpenDays() calendar.OpenDays                { return s.openDays }
func (s *Settings) WeeksInAdvance() int                        { return s.weeksInAdvance }
func (s *Settings) MaxDailyCapacity() *int                     { return s.maxDailyCapacity }
func (s *Settings) NotificationsEnabled() bool                 { return s.notificationsEnabled }
func (s *Settings) OperationalTrackingEnabled() bool           { return s.operationalTrackingEnabled }
func (s *Settings) UpdatedAt() time.Time                       { return s.updatedAt }

// Patch is a partial update. Nil fields are left untouched; MaxDailyCapacity
// can be cleared with an explicit null.
type Patch struct {
	ReservationDeadline        *string
	OpenDays                   []int
	WeeksInAdvance             *int
	MaxDailyCapacity           patch.Nullable[int]
	NotificationsEnabled       *bool
	OperationalTrackingEnabled *bool
}

func (p Patch) IsEmpty() bool {
	return p.ReservationDeadline == nil &&
		p.OpenDays == nil &&
		p.WeeksInAdvance == nil &&
		!p.MaxDailyCapacity.Set &&
		p.NotificationsEnabled == nil &&
		p.OperationalTrackingEnabled == nil
}

// Apply returns a patched copy; s is never modified.
func (s *Settings) Apply(p Patch, now time.Time) (*Settings, error) {
	if p.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	next := *s
	if p.ReservationDeadline != nil {
		d, err := calendar.ParseDeadlineTime(*p.ReservationDeadline)
		if err != nil {
			return nil, errs.WithDetailf(ErrInvalidDeadline, "got %q", *p.ReservationDeadline)
		}
		next.reservationDeadline = d
	}
	if p.OpenDays != nil {
		od, err := calendar.NewOpenDays(p.OpenDays)
		if err != nil {
			return nil, errs.WithDetail(ErrInvalidOpenDays, err.Error())
		}
		next.openDays = od
	}
	if p.WeeksInAdvance != nil {
		if !validWeeks(*p.WeeksInAdvance) {
			return nil, errs.WithDetailf(ErrInvalidWeeksInAdvance, "got %d", *p.WeeksInAdvance)
		}
		next.weeksInAdvance = *p.WeeksInAdvance
	}
	if p.MaxDailyCapacity.Set {
		if v := p.MaxDailyCapacity.Value; v != nil && *v < 1 {
			return nil, errs.WithDetailf(ErrInvalidCapacity, "got %d", *v)
		}
		next.maxDailyCapacity = p.MaxDailyCapacity.Resolve(s.maxDailyCapacity)
	}
	if p.NotificationsEnabled != nil {
		next.notificationsEnabled = *p.NotificationsEnabled
	}
	if p.OperationalTrackingEnabled != nil {
		next.operationalTrackingEnabled = *p.OperationalTrackingEnabled
	}
	next.updatedAt = now
	return &next, nil
}

// AvailableWeeks lists the weeks open for booking starting with today's week.
func (s *Settings) AvailableWeeks(today calendar.Date) []calendar.Week {
	return calendar.AvailableWeeks(today, s.weeksInAdvance, s.openDays)
}

func validWeeks(n int) bool {
	return n >= MinWeeksInAdvance && n <= MaxWeeksInAdvance
}
