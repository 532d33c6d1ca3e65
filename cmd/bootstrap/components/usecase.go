package components

import (
	"time"

	"campsite-booking/internal/pkg/clock"
	"campsite-booking/internal/pkg/config"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	newClock,
)

// newClock runs in the database's zone; booking dates are compared against that calendar day.
func newClock(cfg config.Config) (clock.Clock, error) {
	loc, err := time.LoadLocation(cfg.DB.TimeZone)
	if err != nil {
		return nil, errs.Wrapf(err, "unknown DB_TIMEZONE %q", cfg.DB.TimeZone)
	}
	return clock.NewRealClock(loc), nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCampingCommands,
		commands.NewSpotCommands,
		commands.NewReservationCommands,
		commands.NewCommentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCampingQueries,
		queries.NewSpotQueries,
		queries.NewReservationQueries,
		queries.NewCommentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
