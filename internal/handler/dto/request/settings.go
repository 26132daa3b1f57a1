package request

import (
	"canteen-reservation/internal/domain/settings"
	"canteen-reservation/internal/pkg/patch"
)

// UpdateSettingsRequest is a partial update; max_daily_capacity accepts null
// to remove the limit.
type UpdateSettingsRequest struct {
	ReservationDeadline        *string             `json:"reservation_deadline,omitempty" binding:"omitempty,hhmm"`
	OpenDays                   []int               `json:"open_days,omitempty" binding:"omitempty,dive,weekday"`
	WeeksInAdvance             *int                `json:"weeks_in_advance,omitempty" binding:"omitempty,min=1,max=8"`
	MaxDailyCapacity           patch.Nullable[int] `json:"max_daily_capacity"`
	NotificationsEnabled       *bool               `json:"notifications_enabled,omitempty"`
	OperationalTrackingEnabled *bool               `json:"operational_tracking_enabled,omitempty"`
}

func (r UpdateSettingsRequest) ToPatch() settings.Patch {
	return settings.Patch{
		ReservationDeadline:        r.ReservationDeadline,
		OpenDays:                   r.OpenDays,
		WeeksInAdvance:             r.WeeksInAdvance,
		MaxDailyCapacity:           r.MaxDailyCapacity,
		NotificationsEnabled:       r.NotificationsEnabled,
		OperationalTrackingEnabled: r.OperationalTrackingEnabled,
	}
}
