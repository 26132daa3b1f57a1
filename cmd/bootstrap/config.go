package bootstrap

import (
	"time"

	"canteen-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewCalendarLocation,
	),
)

// NewCalendarLocation resolves CALENDAR_TIMEZONE once so a typo fails startup
// instead of the first booking.
func NewCalendarLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Calendar.Location()
}
