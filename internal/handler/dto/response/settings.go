package response

import (
	"time"

	"canteen-reservation/internal/usecase/queries"
)

type SettingsResponse struct {
	ReservationDeadline        string     `json:"reservation_deadline" example:"10:00"`
	OpenDays                   []int      `json:"open_days" example:"1,2,3,4,5"`
	WeeksInAdvance             int        `json:"weeks_in_advance" example:"2"`
	MaxDailyCapacity           *int       `json:"max_daily_capacity,omitempty"`
	NotificationsEnabled       *bool      `json:"notifications_enabled,omitempty"`
	OperationalTrackingEnabled *bool      `json:"operational_tracking_enabled,omitempty"`
	UpdatedAt                  *time.Time `json:"updated_at,omitempty"`
}

func FromSettingsView(v *queries.SettingsView) *SettingsResponse {
	var res SettingsResponse
	mustCopy(&res, v)
	return &res
}
