package converter

import (
	"canteen-reservation/internal/domain/settings"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/pgconv"
)

func SettingsFromRow(row sqlc.Settings) *settings.Settings {
	openDays := make([]int, len(row.OpenDays))
	for i, d := range row.OpenDays {
		openDays[i] = int(d)
	}
	return settings.Reconstruct(
		row.ReservationDeadline,
		openDays,
		int(row.WeeksInAdvance),
		pgconv.IntPtrFromPgtype(row.MaxDailyCapacity),
		row.NotificationsEnabled,
		row.OperationalTrackingEnabled,
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func SettingsToUpdateParams(s *settings.Settings) sqlc.UpdateSettingsParams {
	days := s.OpenDays().Ints()
	openDays := make([]int32, len(days))
	for i, d := range days {
		openDays[i] = int32(d) // #nosec G115 -- weekday is 0..6
	}
	return sqlc.UpdateSettingsParams{
		ReservationDeadline:        s.ReservationDeadline().String(),
		OpenDays:                   openDays,
		WeeksInAdvance:             int32(s.WeeksInAdvance()), // #nosec G115 -- bounded 1..8
		MaxDailyCapacity:           pgconv.IntPtrToPgtype(s.MaxDailyCapacity()),
		NotificationsEnabled:       s.NotificationsEnabled(),
		OperationalTrackingEnabled: s.OperationalTrackingEnabled(),
		UpdatedAt:                  pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}
