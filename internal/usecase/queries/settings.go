package queries

import (
	"context"

	"canteen-reservation/internal/domain/settings"
	"canteen-reservation/internal/domain/user"
	"canteen-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=settings.go -destination=../../../tests/mock/queries/settings_mock.go -package=queriesmock

type SettingsQueries interface {
	Get(ctx context.Context, role user.Role) (*SettingsView, error)
}

type settingsQueriesImpl struct {
	provider shared.SettingsProvider
}

func NewSettingsQueries(provider shared.SettingsProvider) SettingsQueries {
	return &settingsQueriesImpl{provider: provider}
}

// Get returns the booking rules to everyone and the operational fields to staff only.
func (q *settingsQueriesImpl) Get(ctx context.Context, role user.Role) (*SettingsView, error) {
	s, err := q.provider.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return ToSettingsView(s, role.IsStaff()), nil
}

func ToSettingsView(s *settings.Settings, full bool) *SettingsView {
	v := &SettingsView{
		ReservationDeadline: s.ReservationDeadline().String(),
		OpenDays:            s.OpenDays().Ints(),
		WeeksInAdvance:      s.WeeksInAdvance(),
	}
	if !full {
		return v
	}
	notifications := s.NotificationsEnabled()
	tracking := s.OperationalTrackingEnabled()
	v.MaxDailyCapacity = s.MaxDailyCapacity()
	v.NotificationsEnabled = &notifications
	v.OperationalTrackingEnabled = &tracking
	if updated := s.UpdatedAt(); !updated.IsZero() {
		v.UpdatedAt = &updated
	}
	return v
}
