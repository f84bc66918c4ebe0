package components

import (
	"carhaul-portal/internal/pkg/clock"
	"carhaul-portal/internal/usecase/commands"
	"carhaul-portal/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewWizardCommands,
		commands.NewPaymentCommands,
		commands.NewProfileCommands,
		commands.NewContactCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewWizardQueries,
		queries.NewLookupQueries,
		queries.NewSuggestQueries,
		queries.NewTrackingQueries,
		queries.NewProfileQueries,
	),
)
