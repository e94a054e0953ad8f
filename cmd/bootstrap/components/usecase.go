package components

import (
	"experience-booking/internal/usecase/commands"
	"experience-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		queries.NewExperienceQueries,
		queries.NewPromoQueries,
		commands.NewBookingCommands,
	),
)
