//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/domain/settings"
	"canteen-reservation/internal/pkg/clock"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/internal/usecase/shared"
	sharedmock "canteen-reservation/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func calendarQueries(t *testing.T, now time.Time) queries.CalendarQueries {
	t.Helper()
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	provider := sharedmock.NewMockSettingsProvider(ctrl)
	provider.EXPECT().GetSettings(gomock.Any()).Return(settings.Defaults(), nil).AnyTimes()

	window := shared.NewBookingWindow(provider, calendar.NewPolicy(paris), clock.NewMockClock(now.In(paris)))
	return queries.NewCalendarQueries(window)
}

// parisClock builds 2024-12-10 hh:mm in Paris (UTC+1 in winter).
func parisClock(hour, minute int) time.Time {
	return time.Date(2024, time.December, 10, hour-1, minute, 0, 0, time.UTC)
}

func TestCalendarQueries_DeadlineStatus(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		date      calendar.Date
		canModify bool
		openDay   bool
		reason    string
		timeLeft  string
	}{
		{name: "an hour before the cut-off", now: parisClock(9, 0), date: day, canModify: true, openDay: true, timeLeft: "1h00"},
		{name: "minutes before the cut-off", now: parisClock(9, 45), date: day, canModify: true, openDay: true, timeLeft: "15 min"},
		{name: "at the cut-off", now: parisClock(10, 0), date: day, openDay: true, reason: "deadline passed (10:00)"},
		{name: "past date", now: parisClock(9, 0), date: day.AddDays(-1), openDay: true, reason: calendar.ReasonDatePassed},
		{name: "future saturday", now: parisClock(9, 0), date: day.AddDays(4), canModify: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := calendarQueries(t, tt.now)

			got, err := q.DeadlineStatus(context.Background(), tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.date, got.Date)
			assert.Equal(t, tt.canModify, got.CanModify)
			assert.Equal(t, tt.openDay, got.IsOpenDay)
			assert.Equal(t, tt.reason, got.Reason)
			assert.Equal(t, tt.timeLeft, got.TimeLeft)
			assert.Equal(t, "10:00", got.Deadline)
		})
	}
}

func TestCalendarQueries_AvailableWeeks(t *testing.T) {
	q := calendarQueries(t, parisClock(12, 0))

	weeks, err := q.AvailableWeeks(context.Background())
	require.NoError(t, err)
	require.Len(t, weeks, settings.DefaultWeeksInAdvance)

	assert.Equal(t, calendar.NewDate(2024, time.December, 9), weeks[0].Start)
	assert.Equal(t, calendar.NewDate(2024, time.December, 15), weeks[0].End)
	assert.Len(t, weeks[0].OpenDays, 5)
	assert.Equal(t, calendar.NewDate(2024, time.December, 16), weeks[1].Start)
}
