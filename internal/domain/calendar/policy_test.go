//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen-reservation/internal/domain/calendar"
)

var cet = time.FixedZone("CET", 3600)

func mustDeadline(t *testing.T, s string) calendar.DeadlineTime {
	t.Helper()
	d, err := calendar.ParseDeadlineTime(s)
	require.NoError(t, err)
	return d
}

func TestPolicy_Evaluate(t *testing.T) {
	t.Parallel()

	policy := calendar.NewPolicy(cet)
	monday := calendar.NewDate(2025, time.March, 10)

	tests := []struct {
		name          string
		target        calendar.Date
		deadline      string
		now           time.Time
		wantCanModify bool
		wantReason    string
		wantTimeLeft  string
	}{
		{
			name:          "one minute before the cut-off",
			target:        monday,
			deadline:      "10:00",
			now:           time.Date(2025, 3, 10, 9, 59, 0, 0, cet),
			wantCanModify: true,
			wantTimeLeft:  "1 min",
		},
		{
			name:          "exactly at the cut-off is closed",
			target:        monday,
			deadline:      "10:00",
			now:           time.Date(2025, 3, 10, 10, 0, 0, 0, cet),
			wantCanModify: false,
			wantReason:    "deadline passed (10:00)",
		},
		{
			name:          "after the cut-off",
			target:        monday,
			deadline:      "10:00",
			now:           time.Date(2025, 3, 10, 14, 30, 0, 0, cet),
			wantCanModify: false,
			wantReason:    "deadline passed (10:00)",
		},
		{
			name:          "early morning shows hours and minutes",
			target:        monday,
			deadline:      "10:00",
			now:           time.Date(2025, 3, 10, 7, 55, 0, 0, cet),
			wantCanModify: true,
			wantTimeLeft:  "2h05",
		},
		{
			name:          "exactly one hour left",
			target:        monday,
			deadline:      "10:00",
			now:           time.Date(2025, 3, 10, 9, 0, 0, 0, cet),
			wantCanModify: true,
			wantTimeLeft:  "1h00",
		},
		{
			name:          "seconds are floored",
			target:        monday,
			deadline:      "10:00",
			now:           time.Date(2025, 3, 10, 9, 58, 30, 0, cet),
			wantCanModify: true,
			wantTimeLeft:  "1 min",
		},
		{
			name:          "midnight cut-off closes the whole day",
			target:        monday,
			deadline:      "00:00",
			now:           time.Date(2025, 3, 10, 0, 0, 0, 0, cet),
			wantCanModify: false,
			wantReason:    "deadline passed (00:00)",
		},
		{
			name:          "past date is closed",
			target:        monday.AddDays(-1),
			deadline:      "10:00",
			now:           time.Date(2025, 3, 10, 8, 0, 0, 0, cet),
			wantCanModify: false,
			wantReason:    calendar.ReasonDatePassed,
		},
		{
			name:          "future date is open after today's cut-off",
			target:        monday.AddDays(1),
			deadline:      "10:00",
			now:           time.Date(2025, 3, 10, 23, 59, 0, 0, cet),
			wantCanModify: true,
		},
		{
			name:          "last millisecond of the day keeps today closed",
			target:        monday,
			deadline:      "10:00",
			now:           time.Date(2025, 3, 10, 23, 59, 59, 999_000_000, cet),
			wantCanModify: false,
			wantReason:    "deadline passed (10:00)",
		},
		{
			name:          "last millisecond of the day leaves tomorrow open",
			target:        monday.AddDays(1),
			deadline:      "10:00",
			now:           time.Date(2025, 3, 10, 23, 59, 59, 999_000_000, cet),
			wantCanModify: true,
		},
		{
			name:          "first instant of the next day makes yesterday past",
			target:        monday,
			deadline:      "10:00",
			now:           time.Date(2025, 3, 11, 0, 0, 0, 0, cet),
			wantCanModify: false,
			wantReason:    calendar.ReasonDatePassed,
		},
		{
			name:          "first instant of the next day opens that day",
			target:        monday.AddDays(1),
			deadline:      "10:00",
			now:           time.Date(2025, 3, 11, 0, 0, 0, 0, cet),
			wantCanModify: true,
			wantTimeLeft:  "10h00",
		},
		{
			name:          "now in another zone is converted first",
			target:        monday,
			deadline:      "10:00",
			now:           time.Date(2025, 3, 10, 8, 59, 0, 0, time.UTC),
			wantCanModify: true,
			wantTimeLeft:  "1 min",
		},
		{
			name:          "late UTC evening is already tomorrow locally",
			target:        monday,
			deadline:      "10:00",
			now:           time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC),
			wantCanModify: true,
			wantTimeLeft:  "9h30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := policy.Evaluate(tt.target, mustDeadline(t, tt.deadline), tt.now)

			assert.Equal(t, tt.wantCanModify, got.CanModify)
			assert.Equal(t, tt.wantReason, got.Reason)
			assert.Equal(t, tt.wantTimeLeft, got.TimeLeftLabel())
			if !got.CanModify {
				assert.Nil(t, got.TimeLeft)
			}
		})
	}
}

func TestPolicy_Evaluate_IsPure(t *testing.T) {
	t.Parallel()

	policy := calendar.NewPolicy(cet)
	target := calendar.NewDate(2025, time.March, 10)
	deadline := mustDeadline(t, "11:30")
	now := time.Date(2025, 3, 10, 11, 0, 0, 0, cet)

	assert.Equal(t, policy.Evaluate(target, deadline, now), policy.Evaluate(target, deadline, now))
}

func TestFormatTimeLeft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "0 min"},
		{in: -time.Minute, want: "0 min"},
		{in: 59 * time.Second, want: "0 min"},
		{in: 59*time.Minute + 59*time.Second, want: "59 min"},
		{in: time.Hour, want: "1h00"},
		{in: time.Hour + 5*time.Minute, want: "1h05"},
		{in: 10*time.Hour + 45*time.Minute, want: "10h45"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, calendar.FormatTimeLeft(tt.in))
		})
	}
}

func TestIsOpenDay(t *testing.T) {
	t.Parallel()

	weekdays := calendar.DefaultOpenDays()
	assert.True(t, calendar.IsOpenDay(calendar.NewDate(2025, time.March, 10), weekdays))  // Monday
	assert.True(t, calendar.IsOpenDay(calendar.NewDate(2025, time.March, 14), weekdays))  // Friday
	assert.False(t, calendar.IsOpenDay(calendar.NewDate(2025, time.March, 15), weekdays)) // Saturday
	assert.False(t, calendar.IsOpenDay(calendar.NewDate(2025, time.March, 16), weekdays)) // Sunday

	saturdayOnly, err := calendar.NewOpenDays([]int{6})
	require.NoError(t, err)
	assert.True(t, calendar.IsOpenDay(calendar.NewDate(2025, time.March, 15), saturdayOnly))
	assert.False(t, calendar.IsOpenDay(calendar.NewDate(2025, time.March, 10), saturdayOnly))
}
