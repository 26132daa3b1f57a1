package components

import (
	"time"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/pkg/clock"
	"canteen-reservation/internal/usecase"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCalendarPolicy,
	shared.NewBookingWindow,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewMenuCommands,
		commands.NewSettingsCommands,
		commands.NewLogNotificationSender,
		commands.NewNotificationDispatcher,
		commands.NewAdminSeeder,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewMenuQueries,
		queries.NewSettingsQueries,
		queries.NewCalendarQueries,
		queries.NewAuditQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCalendarPolicy(loc *time.Location) calendar.Policy {
	return calendar.NewPolicy(loc)
}
